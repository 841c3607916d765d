package http

import (
	"net/http"

	"go-booking-platform/internal/delivery/http/handler"
	"go-booking-platform/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	businessHandler    *handler.BusinessHandler
	staffHandler       *handler.StaffHandler
	serviceHandler     *handler.ServiceHandler
	workingHourHandler *handler.WorkingHourHandler
	appointmentHandler *handler.AppointmentHandler
	packageHandler     *handler.PackageHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	businessHandler *handler.BusinessHandler,
	staffHandler *handler.StaffHandler,
	serviceHandler *handler.ServiceHandler,
	workingHourHandler *handler.WorkingHourHandler,
	appointmentHandler *handler.AppointmentHandler,
	packageHandler *handler.PackageHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		businessHandler:    businessHandler,
		staffHandler:       staffHandler,
		serviceHandler:     serviceHandler,
		workingHourHandler: workingHourHandler,
		appointmentHandler: appointmentHandler,
		packageHandler:     packageHandler,
		auditLogHandler:    auditLogHandler,
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
	auth.HandleFunc("/verification-code", r.authHandler.SendVerificationCode).Methods(http.MethodPost)
	auth.HandleFunc("/register/customer", r.authHandler.RegisterCustomer).Methods(http.MethodPost)
	auth.HandleFunc("/register/owner", r.authHandler.RegisterOwner).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Public discovery routes
	api.HandleFunc("/businesses", r.businessHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{slug}", r.businessHandler.GetBySlug).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{slug}/services", r.businessHandler.ListServices).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{slug}/packages", r.businessHandler.ListPackages).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{slug}/slots", r.appointmentHandler.GetAvailableSlots).Methods(http.MethodGet)

	// Customer routes
	customer := api.PathPrefix("").Subrouter()
	customer.Use(r.authMiddleware.Authenticate)
	customer.Use(middleware.RequireCustomer)
	customer.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	customer.HandleFunc("/appointments", r.appointmentHandler.ListMine).Methods(http.MethodGet)
	customer.HandleFunc("/purchases", r.packageHandler.Purchase).Methods(http.MethodPost)
	customer.HandleFunc("/purchases", r.packageHandler.ListMyPurchases).Methods(http.MethodGet)
	customer.HandleFunc("/purchases/consume", r.packageHandler.ConsumeSession).Methods(http.MethodPost)
	customer.HandleFunc("/purchases/restore", r.packageHandler.RestoreSession).Methods(http.MethodPost)

	// Routes shared by customers and owners
	authed := api.PathPrefix("").Subrouter()
	authed.Use(r.authMiddleware.Authenticate)
	authed.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/purchases/{id}", r.packageHandler.GetPurchase).Methods(http.MethodGet)
	authed.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)

	// Owner routes
	owner := api.PathPrefix("/owner").Subrouter()
	owner.Use(r.authMiddleware.Authenticate)
	owner.Use(middleware.RequireOwner)
	owner.HandleFunc("/business", r.businessHandler.Create).Methods(http.MethodPost)
	owner.HandleFunc("/business", r.businessHandler.GetMine).Methods(http.MethodGet)
	owner.HandleFunc("/business", r.businessHandler.Update).Methods(http.MethodPut)
	owner.HandleFunc("/staff", r.staffHandler.Create).Methods(http.MethodPost)
	owner.HandleFunc("/staff", r.staffHandler.List).Methods(http.MethodGet)
	owner.HandleFunc("/staff/{id}", r.staffHandler.Update).Methods(http.MethodPut)
	owner.HandleFunc("/staff/{id}", r.staffHandler.Delete).Methods(http.MethodDelete)
	owner.HandleFunc("/services", r.serviceHandler.Create).Methods(http.MethodPost)
	owner.HandleFunc("/services", r.serviceHandler.List).Methods(http.MethodGet)
	owner.HandleFunc("/services/{id}", r.serviceHandler.Update).Methods(http.MethodPut)
	owner.HandleFunc("/services/{id}", r.serviceHandler.Delete).Methods(http.MethodDelete)
	owner.HandleFunc("/working-hours", r.workingHourHandler.Upsert).Methods(http.MethodPut)
	owner.HandleFunc("/working-hours", r.workingHourHandler.List).Methods(http.MethodGet)
	owner.HandleFunc("/working-hours/{id}", r.workingHourHandler.Delete).Methods(http.MethodDelete)
	owner.HandleFunc("/appointments", r.appointmentHandler.ListForBusiness).Methods(http.MethodGet)
	owner.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	owner.HandleFunc("/packages", r.packageHandler.Create).Methods(http.MethodPost)
	owner.HandleFunc("/packages", r.packageHandler.List).Methods(http.MethodGet)
	owner.HandleFunc("/packages/{id}", r.packageHandler.Update).Methods(http.MethodPut)
	owner.HandleFunc("/packages/{id}", r.packageHandler.Delete).Methods(http.MethodDelete)
	owner.HandleFunc("/purchases", r.packageHandler.ListBusinessPurchases).Methods(http.MethodGet)
	owner.HandleFunc("/purchases/{id}/confirm-payment", r.packageHandler.ConfirmPayment).Methods(http.MethodPost)
	owner.HandleFunc("/reports/appointments", r.appointmentHandler.Report).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/businesses/{id}/active", r.businessHandler.SetActive).Methods(http.MethodPatch)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.Get).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
