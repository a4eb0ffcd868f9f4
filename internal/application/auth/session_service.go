// Package auth gestiona la sesión: login contra el API externo, restauración
// desde el token de este servicio y cierre.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/obra-admin/internal/application/dto"
	"github.com/jhoicas/obra-admin/internal/domain"
	"github.com/jhoicas/obra-admin/internal/domain/access"
	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/internal/domain/repository"
	"github.com/jhoicas/obra-admin/pkg/jwt"
	"github.com/jhoicas/obra-admin/pkg/logger"
)

// Gateway autenticación contra el API externo.
type Gateway interface {
	Login(ctx context.Context, email, password string) (*dto.UpstreamLogin, error)
}

// ViewDropper descarta las vistas CRUD de una sesión.
type ViewDropper interface {
	Drop(sessionID string)
}

// SessionConfig configuración del token de sesión.
type SessionConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// LoginResult sesión creada y su token firmado.
type LoginResult struct {
	Session *entity.Session
	Token   string
}

// SessionService es el único que crea y borra sesiones. Mantiene una caché en
// proceso delante del repositorio persistente.
type SessionService struct {
	gateway Gateway
	repo    repository.SessionRepository
	views   ViewDropper
	nav     []access.NavItem
	cfg     SessionConfig
	log     *logger.Logger
	now     func() time.Time

	mu    sync.RWMutex
	cache map[string]*entity.Session
}

// NewSessionService construye el servicio. views puede ser nil.
func NewSessionService(
	gateway Gateway,
	repo repository.SessionRepository,
	views ViewDropper,
	nav []access.NavItem,
	cfg SessionConfig,
	log *logger.Logger,
) *SessionService {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 8 * time.Hour
	}
	return &SessionService{
		gateway: gateway,
		repo:    repo,
		views:   views,
		nav:     nav,
		cfg:     cfg,
		log:     log.Component("auth"),
		now:     time.Now,
		cache:   make(map[string]*entity.Session),
	}
}

// Login autentica contra el API, valida el rol y crea la sesión.
// ErrInvalidCredentials y ErrUnknownRole se muestran como error del formulario.
func (s *SessionService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	up, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("login rechazado")
		return nil, err
	}
	role, err := access.ParseRole(up.User.Role)
	if err != nil {
		s.log.Warn().Str("email", email).Str("role", up.User.Role).Msg("login con rol desconocido")
		return nil, err
	}

	now := s.now().UTC()
	sess := &entity.Session{
		ID: uuid.NewString(),
		User: entity.SessionUser{
			ID:        up.User.ID,
			Name:      up.User.Name,
			Email:     nonEmpty(up.User.Email, email),
			Role:      up.User.Role,
			ProjectID: up.User.ProjectID,
		},
		Token:     up.BearerToken(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TTL),
	}
	if err := s.repo.Save(ctx, sess); err != nil {
		s.log.Error().Err(err).Msg("no se pudo guardar la sesión")
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	s.put(sess)

	token, err := jwt.Generate(s.cfg.Secret, sess.ID, sess.User.ID, string(role), s.cfg.Issuer, s.cfg.TTL)
	if err != nil {
		return nil, fmt.Errorf("firmar sesión: %w", err)
	}
	s.log.Info().Str("user_id", sess.User.ID).Str("role", string(role)).Msg("login exitoso")
	return &LoginResult{Session: sess, Token: token}, nil
}

// Restore recupera la sesión de un token emitido por Login, también tras un reinicio.
func (s *SessionService) Restore(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := jwt.Parse(s.cfg.Secret, token)
	if err != nil {
		if errors.Is(err, gojwt.ErrTokenExpired) {
			return nil, domain.ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	sess, ok := s.cached(claims.SessionID)
	if !ok {
		sess, err = s.repo.Get(ctx, claims.SessionID)
		if err != nil {
			s.log.Error().Err(err).Msg("no se pudo leer la sesión")
			return nil, fmt.Errorf("leer sesión: %w", err)
		}
		if sess == nil {
			return nil, domain.ErrSessionNotFound
		}
	}
	if sess.Expired(s.now()) {
		s.forget(ctx, sess.ID)
		return nil, domain.ErrSessionExpired
	}
	if _, err := access.ParseRole(sess.User.Role); err != nil {
		s.forget(ctx, sess.ID)
		return nil, err
	}
	if !ok {
		s.put(sess)
	}
	return sess, nil
}

// Logout borra la sesión persistida, la caché y las vistas.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	s.evict(sessionID)
	if s.views != nil {
		s.views.Drop(sessionID)
	}
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("no se pudo borrar la sesión")
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}

// Purge elimina las sesiones vencidas del repositorio y de la caché.
func (s *SessionService) Purge(ctx context.Context) (int64, error) {
	now := s.now()
	s.mu.Lock()
	for id, sess := range s.cache {
		if sess.Expired(now) {
			delete(s.cache, id)
			if s.views != nil {
				s.views.Drop(id)
			}
		}
	}
	s.mu.Unlock()
	return s.repo.DeleteExpired(ctx, now)
}

// View arma la respuesta de sesión con la navegación filtrada por rol.
func (s *SessionService) View(sess *entity.Session) dto.SessionResponse {
	role, _ := access.ParseRole(sess.User.Role)
	items := access.FilterNavigation(s.nav, &sess.User)
	nav := make([]dto.NavItemResponse, 0, len(items))
	for _, it := range items {
		nav = append(nav, dto.NavItemResponse{Label: it.Label, Path: it.Path, Icon: it.Icon, Module: string(it.Module)})
	}
	home := "/no-encontrado"
	if len(nav) > 0 {
		home = nav[0].Path
	}
	return dto.SessionResponse{
		User: dto.SessionUserResponse{
			ID:        sess.User.ID,
			Name:      sess.User.Name,
			Email:     sess.User.Email,
			Role:      role.Label(),
			RoleKey:   string(role),
			ProjectID: sess.User.ProjectID,
		},
		Navigation: nav,
		Home:       home,
		ExpiresAt:  sess.ExpiresAt,
	}
}

func (s *SessionService) cached(id string) (*entity.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.cache[id]
	return sess, ok
}

func (s *SessionService) put(sess *entity.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[sess.ID] = sess
}

func (s *SessionService) evict(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, id)
}

func (s *SessionService) forget(ctx context.Context, id string) {
	s.evict(id)
	if s.views != nil {
		s.views.Drop(id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("session_id", id).Msg("no se pudo borrar la sesión vencida")
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
