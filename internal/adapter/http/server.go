package adapthttp

import (
	"net/http"

	"github.com/alexedwards/scs/v2"

	"inhome/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth     *app.AuthService
	products *app.ProductService
	sessions *scs.SessionManager
	webDir   string
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, products *app.ProductService, sessions *scs.SessionManager, webDir string) *Server {
	return &Server{auth: auth, products: products, sessions: sessions, webDir: webDir}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("POST /auth/login", s.handleLogin)
	api.HandleFunc("POST /auth/logout", s.handleLogout)
	api.HandleFunc("GET /auth/me", s.handleMe)

	api.Handle("PATCH /profile", s.requireUser(http.HandlerFunc(s.handleUpdateProfile)))
	api.Handle("PATCH /users/{id}/password", s.requireUser(http.HandlerFunc(s.handleUpdatePassword)))
	api.Handle("POST /users", s.requireSuperAdmin(http.HandlerFunc(s.handleCreateUser)))
	api.Handle("DELETE /users/{id}", s.requireSuperAdmin(http.HandlerFunc(s.handleFreezeUser)))

	api.Handle("GET /products", s.requireUser(http.HandlerFunc(s.handleListProducts)))
	api.Handle("POST /products", s.requireUser(http.HandlerFunc(s.handleAddProduct)))
	api.Handle("DELETE /products/{id}", s.requireUser(http.HandlerFunc(s.handleDeleteProduct)))
	api.Handle("GET /dashboard/stats", s.requireUser(http.HandlerFunc(s.handleStats)))
	api.Handle("GET /products/export", s.requireUser(http.HandlerFunc(s.handleExport)))
	api.Handle("GET /products/export/upstream", s.requireUser(http.HandlerFunc(s.handleExportUpstream)))

	root := http.NewServeMux()
	root.Handle("/api/", s.resolveSession(http.StripPrefix("/api", api)))
	root.Handle("/", s.resolveSession(s.pageGuard(spaFromDisk(s.webDir))))

	return s.sessions.LoadAndSave(s.loggingMiddleware(withNoCache(root)))
}
