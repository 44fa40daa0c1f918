package http

import (
	"net/http"

	"diet-recommender/internal/delivery/http/handler"
	"diet-recommender/internal/delivery/http/middleware"
	"diet-recommender/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	recommendationHandler *handler.RecommendationHandler
	requestMiddleware     *middleware.RequestMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	recommendationHandler *handler.RecommendationHandler,
	requestMiddleware *middleware.RequestMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		recommendationHandler: recommendationHandler,
		requestMiddleware:     requestMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

// Setup registers the routes. CORS wraps the whole router so preflight
// requests are answered before route matching.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Form and model metadata
	api.HandleFunc("/form", r.recommendationHandler.GetForm).Methods(http.MethodGet)
	api.HandleFunc("/model", r.recommendationHandler.GetModelInfo).Methods(http.MethodGet)

	// Pipeline
	api.HandleFunc("/metrics", r.recommendationHandler.DeriveMetrics).Methods(http.MethodPost)
	api.HandleFunc("/recommendations", r.recommendationHandler.Recommend).Methods(http.MethodPost)
	api.HandleFunc("/recommendations/features", r.recommendationHandler.EncodeFeatures).Methods(http.MethodPost)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "")
	})

	r.router.Use(r.requestMiddleware.Trace)

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
