package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obra-admin/internal/application/auth"
	"github.com/jhoicas/obra-admin/internal/application/crud"
	"github.com/jhoicas/obra-admin/internal/application/dashboard"
	"github.com/jhoicas/obra-admin/internal/application/inventory"
	"github.com/jhoicas/obra-admin/internal/domain/access"
	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/internal/infrastructure/api"
	"github.com/jhoicas/obra-admin/internal/infrastructure/memory"
	"github.com/jhoicas/obra-admin/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/obra-admin/internal/interfaces/http"
)

const testSecret = "test-secret-key-for-unit-tests"

// upstream API externo falso: registra cada petición y permite forzar fallos.
type upstream struct {
	srv *httptest.Server

	mu         sync.Mutex
	requests   []string
	failDelete bool
}

var upstreamUsers = map[string]string{
	"ceo@obra.co":    "CEO",
	"bodega@obra.co": "Bodeguero",
	"conta@obra.co":  "Contador",
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&in)
		role, ok := upstreamUsers[in.Email]
		if !ok || in.Password != "clave" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"credenciales inválidas"}`))
			return
		}
		writeJSON(w, map[string]any{
			"token": "up-" + in.Email,
			"user":  map[string]any{"id": "u-" + in.Email, "name": in.Email, "email": in.Email, "role": role},
		})
	})
	mux.HandleFunc("GET /inventory", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"items": []map[string]any{
			{"id": "c1", "name": "Cemento gris", "quantity": "40", "min_stock": "10"},
			{"id": "v1", "name": "Varilla corrugada", "quantity": "200", "min_stock": "50"},
		}})
	})
	mux.HandleFunc("POST /inventory", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)
		in["id"] = "n1"
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, in)
	})
	mux.HandleFunc("DELETE /inventory/{id}", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		fail := u.failDelete
		u.mu.Unlock()
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	// El resto de colecciones responden vacías.
	mux.HandleFunc("GET /{resource}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []any{})
	})
	u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.requests = append(u.requests, r.Method+" "+r.URL.Path)
		u.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func (u *upstream) seen(call string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, r := range u.requests {
		if r == call {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// buildApp arma la aplicación completa sobre el API falso, con almacenes en memoria.
func buildApp(t *testing.T, up *upstream) *fiber.App {
	t.Helper()
	client := api.NewClient(up.srv.URL, 5*time.Second)
	views := crud.NewViewStore()
	validator := crud.NewValidator()
	decider := access.NewDecider(access.DefaultPermissions())

	sessions := auth.NewSessionService(client, memory.NewSessionRepository(), views, access.DefaultNavigation(),
		auth.SessionConfig{Secret: testSecret, Issuer: "obra-admin-test", TTL: time.Hour}, nil)

	projRes := api.NewResource[entity.Project](client, api.ResourceProjects)
	invRes := api.NewResource[entity.InventoryItem](client, api.ResourceInventory)
	finRes := api.NewResource[entity.FinanceEntry](client, api.ResourceFinances)
	empRes := api.NewResource[entity.Employee](client, api.ResourceEmployees)
	tenRes := api.NewResource[entity.Tender](client, api.ResourceTenders)
	matRes := api.NewResource[entity.MaterialRequest](client, api.ResourceMaterialRequests)
	monRes := api.NewResource[entity.MoneyRequest](client, api.ResourceMoneyRequests)
	invPage := crud.NewPage[entity.InventoryItem](invRes, views, validator, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Sessions: sessions,
		Decider:  decider,
		Pages: apphttp.Pages{
			Projects:         crud.NewPage[entity.Project](projRes, views, validator, nil),
			Inventory:        invPage,
			Finances:         crud.NewPage[entity.FinanceEntry](finRes, views, validator, nil),
			Employees:        crud.NewPage[entity.Employee](empRes, views, validator, nil),
			Tenders:          crud.NewPage[entity.Tender](tenRes, views, validator, nil),
			Drawings:         crud.NewPage[entity.Drawing](api.NewResource[entity.Drawing](client, api.ResourceDrawings), views, validator, nil),
			DailyReports:     crud.NewPage[entity.DailyReport](api.NewResource[entity.DailyReport](client, api.ResourceDailyReports), views, validator, nil),
			MaterialRequests: crud.NewPage[entity.MaterialRequest](matRes, views, validator, nil),
			MoneyRequests:    crud.NewPage[entity.MoneyRequest](monRes, views, validator, nil),
			Users:            crud.NewPage[entity.User](api.NewResource[entity.User](client, api.ResourceUsers), views, validator, nil),
		},
		Stock: inventory.NewStockUseCase(invPage, memory.NewStockAdjustmentRepository(), nil),
		Dashboard: dashboard.NewDashboardUseCase(dashboard.Sources{
			Projects:         projRes,
			Inventory:        invRes,
			Finances:         finRes,
			Employees:        empRes,
			Tenders:          tenRes,
			MaterialRequests: matRes,
			MoneyRequests:    monRes,
		}, decider, nil),
		Metrics: metrics.New(),
		Cookie:  apphttp.CookieConfig{Name: "obra_session"},
	})
	return app
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/login", "", map[string]string{"email": email, "password": "clave"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func do(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), strings.TrimSpace(string(raw)))
}
