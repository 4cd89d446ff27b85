package routes

import (
	"net/http"

	"github.com/pitchflow-app/pitchflow/backend/internal/api/handlers"
	"github.com/pitchflow-app/pitchflow/backend/internal/api/middleware"
	"github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	analysisHandler *handlers.AnalysisHandler
	sessionHandler  *handlers.SessionHandler
	sseHandler      *handlers.SSEHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	analysisHandler *handlers.AnalysisHandler,
	sessionHandler *handlers.SessionHandler,
	sseHandler *handlers.SSEHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		analysisHandler: analysisHandler,
		sessionHandler:  sessionHandler,
		sseHandler:      sseHandler,

		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Session endpoints
	r.mux.HandleFunc("POST /api/sessions", r.sessionHandler.CreateSession)
	r.mux.HandleFunc("GET /api/sessions", r.sessionHandler.ListSessions)
	r.mux.HandleFunc("GET /api/sessions/{id}", r.sessionHandler.GetSession)
	r.mux.HandleFunc("DELETE /api/sessions/{id}", r.sessionHandler.DeleteSession)

	// Analysis endpoints
	r.mux.HandleFunc("POST /api/sessions/{id}/analysis", r.analysisHandler.AnalyzeSession)
	r.mux.HandleFunc("GET /api/sessions/{id}/analysis", r.analysisHandler.GetAnalysis)
	r.mux.HandleFunc("GET /api/analyses", r.analysisHandler.ListAnalyses)
	r.mux.HandleFunc("GET /api/analyses/search", r.analysisHandler.SearchAnalyses)

	// Live update streams
	if r.sseHandler != nil {
		r.mux.HandleFunc("GET /api/sessions/{id}/events", r.sseHandler.StreamSessionUpdates)
		r.mux.HandleFunc("GET /api/stream/analyses", r.sseHandler.StreamAnalysisUpdates)
	}

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
