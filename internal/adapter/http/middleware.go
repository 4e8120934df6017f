package adapthttp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"inhome/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// resolveSession restores the signed-in account from the session before any
// guard runs. Requests proceed anonymously when no account can be resolved;
// the guards downstream decide what that means for the route.
func (s *Server) resolveSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := s.auth.Resolve(r.Context())
		if err != nil {
			slog.Error("session resolve failed", "error", err)
		}
		if user != nil {
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// requireUser rejects anonymous API requests.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userFromContext(r.Context()) == nil {
			writeError(w, http.StatusUnauthorized, errors.New("authentication required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireSuperAdmin rejects requests from accounts below the superadmin role.
func (s *Server) requireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, errors.New("authentication required"))
			return
		}
		if domain.ParseRole(user.Role) != domain.RoleSuperAdmin {
			writeError(w, http.StatusForbidden, errors.New("superadmin role required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// pageGuard applies the navigation rules for the dashboard pages. It runs
// only after resolveSession has settled the account, so a slow session
// lookup can never bounce a legitimately signed-in visitor to the login
// page. Static assets pass through untouched.
func (s *Server) pageGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqPath := r.URL.Path
		if strings.Contains(path.Base(reqPath), ".") {
			next.ServeHTTP(w, r)
			return
		}

		user := userFromContext(r.Context())
		switch {
		case user == nil && reqPath != "/login":
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		case user != nil && reqPath == "/login":
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		case user != nil && reqPath == "/create-user" && domain.ParseRole(user.Role) != domain.RoleSuperAdmin:
			// Under-privileged, not unauthenticated: back to the
			// dashboard rather than the login page.
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware records one line per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
