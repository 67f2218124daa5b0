package gateway

import (
	"net/http"

	"github.com/saransh1220/framesync/internal/gateway/middleware"
)

// Router wraps http.ServeMux and provides route registration
type Router struct {
	mux *http.ServeMux
}

// NewRouter creates a new router
func NewRouter() *Router {
	return &Router{
		mux: http.NewServeMux(),
	}
}

// Mux returns the underlying http.ServeMux
func (r *Router) Mux() *http.ServeMux {
	return r.mux
}

// Handle registers a handler for the given pattern
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

// HandleFunc registers a handler function for the given pattern
func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Handler returns the mux wrapped in the middleware chain, outermost first:
// recovery, request logging, metrics, CORS
func (r *Router) Handler(allowedOrigins string) http.Handler {
	var h http.Handler = r.mux
	h = middleware.CORSMiddleware(h, allowedOrigins)
	h = middleware.PrometheusMiddleware(h)
	h = middleware.LoggingMiddleware(h)
	return middleware.RecoveryMiddleware(h)
}
