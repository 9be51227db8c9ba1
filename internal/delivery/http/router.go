package http

import (
	"net/http"

	"student-recommendation-platform/internal/delivery/http/handler"
	"student-recommendation-platform/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	studentHandler   *handler.StudentHandler
	dashboardHandler *handler.DashboardHandler
	corsMiddleware   *middleware.CORSMiddleware
	requestLogger    *middleware.RequestLoggerMiddleware
}

func NewRouter(
	studentHandler *handler.StudentHandler,
	dashboardHandler *handler.DashboardHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestLogger *middleware.RequestLoggerMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		studentHandler:   studentHandler,
		dashboardHandler: dashboardHandler,
		corsMiddleware:   corsMiddleware,
		requestLogger:    requestLogger,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Intake surface
	api.HandleFunc("/students", r.studentHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/students", r.studentHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/catalog", r.studentHandler.GetCatalog).Methods(http.MethodGet)

	// Dashboard surface (read-only, no parameters)
	api.HandleFunc("/dashboard", r.dashboardHandler.Get).Methods(http.MethodGet)

	r.router.Use(r.requestLogger.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
