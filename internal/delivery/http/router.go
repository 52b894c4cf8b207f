package http

import (
	"net/http"

	"benihealth/internal/delivery/http/handler"
	"benihealth/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	enrolleeHandler    *handler.EnrolleeHandler
	eligibilityHandler *handler.EligibilityHandler
	planHandler        *handler.PlanHandler
	dashboardHandler   *handler.DashboardHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	enrolleeHandler *handler.EnrolleeHandler,
	eligibilityHandler *handler.EligibilityHandler,
	planHandler *handler.PlanHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		enrolleeHandler:    enrolleeHandler,
		eligibilityHandler: eligibilityHandler,
		planHandler:        planHandler,
		dashboardHandler:   dashboardHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Enrollee management (employer only)
	enrollees := api.PathPrefix("/enrollees").Subrouter()
	enrollees.Use(r.authMiddleware.Authenticate)
	enrollees.Use(middleware.RequireEmployer)
	enrollees.HandleFunc("", r.enrolleeHandler.ListEnrollees).Methods(http.MethodGet)
	enrollees.HandleFunc("", r.enrolleeHandler.CreateEnrollee).Methods(http.MethodPost)
	enrollees.HandleFunc("/bulk", r.enrolleeHandler.BulkImportEnrollees).Methods(http.MethodPost)
	enrollees.HandleFunc("/{enrollee_id}", r.enrolleeHandler.GetEnrollee).Methods(http.MethodGet)
	enrollees.HandleFunc("/{enrollee_id}", r.enrolleeHandler.UpdateEnrollee).Methods(http.MethodPut)
	enrollees.HandleFunc("/{enrollee_id}", r.enrolleeHandler.TerminateEnrollee).Methods(http.MethodDelete)

	// Eligibility verification (provider only)
	providers := api.PathPrefix("/providers").Subrouter()
	providers.Use(r.authMiddleware.Authenticate)
	providers.Use(middleware.RequireProvider)
	providers.HandleFunc("/verify-enrollee", r.eligibilityHandler.VerifyEnrollee).Methods(http.MethodPost)

	// Plan catalog (any authenticated user can read, admin/HMO manage)
	plans := api.PathPrefix("/plans").Subrouter()
	plans.Use(r.authMiddleware.Authenticate)
	plans.HandleFunc("", r.planHandler.GetAllPlans).Methods(http.MethodGet)
	plans.HandleFunc("/{id}", r.planHandler.GetPlan).Methods(http.MethodGet)

	planAdmin := api.PathPrefix("/plans").Subrouter()
	planAdmin.Use(r.authMiddleware.Authenticate)
	planAdmin.Use(middleware.RequireAdminOrHMO)
	planAdmin.HandleFunc("", r.planHandler.CreatePlan).Methods(http.MethodPost)
	planAdmin.HandleFunc("/{id}", r.planHandler.UpdatePlan).Methods(http.MethodPut)

	// Role dashboards
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(r.authMiddleware.Authenticate)
	dashboard.Handle("/employer", middleware.RequireEmployer(http.HandlerFunc(r.dashboardHandler.EmployerDashboard))).Methods(http.MethodGet)
	dashboard.Handle("/employee", middleware.RequireEmployee(http.HandlerFunc(r.dashboardHandler.EmployeeDashboard))).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
