package access

import (
	"strings"

	"github.com/jhoicas/obra-admin/internal/domain/entity"
)

// AppPrefix prefijo de las rutas protegidas por el guard.
const AppPrefix = "/app/"

// GuardState estado del guard de rutas para un intento de navegación.
type GuardState int

const (
	GuardLoading         GuardState = iota // la sesión aún no se resolvió
	GuardUnauthenticated                   // no hay sesión válida
	GuardAllowed                           // se renderiza la página
	GuardDenied                            // se redirige al fallback
)

func (s GuardState) String() string {
	switch s {
	case GuardLoading:
		return "loading"
	case GuardUnauthenticated:
		return "unauthenticated"
	case GuardAllowed:
		return "allowed"
	case GuardDenied:
		return "denied"
	}
	return "unknown"
}

// ModuleFromPath deriva el módulo del primer segmento tras /app/.
// "/app/solicitudes/dinero/7" -> "solicitudes". Fuera de /app/ devuelve "".
func ModuleFromPath(path string) Module {
	if !strings.HasPrefix(path, AppPrefix) {
		return ""
	}
	rest := strings.TrimPrefix(path, AppPrefix)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return NormalizeModule(rest)
}

// Evaluate resuelve el estado del guard. Un Denied es terminal para ese intento.
func (d *Decider) Evaluate(resolved bool, user *entity.SessionUser, token, path string) GuardState {
	if !resolved {
		return GuardLoading
	}
	if user == nil || token == "" {
		return GuardUnauthenticated
	}
	if d.Allowed(user, token, string(ModuleFromPath(path))) {
		return GuardAllowed
	}
	return GuardDenied
}
