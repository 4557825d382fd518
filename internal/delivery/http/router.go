package http

import (
	"net/http"

	"github.com/fleettrack/fleettrack/internal/delivery/http/middleware"
	"github.com/fleettrack/fleettrack/internal/pkg/config"
	"github.com/fleettrack/fleettrack/internal/pkg/jwt"
	"github.com/fleettrack/fleettrack/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Router содержит все зависимости для HTTP роутера
type Router struct {
	authHandler      *AuthHandler
	vehicleHandler   *VehicleHandler
	driverHandler    *DriverHandler
	repairHandler    *RepairHandler
	signatureHandler *SignatureHandler
	uploadHandler    *UploadHandler
	tokenService     *jwt.TokenService
	config           *config.Config
	logger           logger.Logger
}

// NewRouter создает новый HTTP router
func NewRouter(
	authHandler *AuthHandler,
	vehicleHandler *VehicleHandler,
	driverHandler *DriverHandler,
	repairHandler *RepairHandler,
	signatureHandler *SignatureHandler,
	uploadHandler *UploadHandler,
	tokenService *jwt.TokenService,
	config *config.Config,
	logger logger.Logger,
) *Router {
	return &Router{
		authHandler:      authHandler,
		vehicleHandler:   vehicleHandler,
		driverHandler:    driverHandler,
		repairHandler:    repairHandler,
		signatureHandler: signatureHandler,
		uploadHandler:    uploadHandler,
		tokenService:     tokenService,
		config:           config,
		logger:           logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: rt.config.CORS.AllowedOrigins,
		AllowedMethods: rt.config.CORS.AllowedMethods,
		AllowedHeaders: rt.config.CORS.AllowedHeaders,
	}))

	// Health check endpoint (публичный)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (без аутентификации)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", rt.authHandler.Register)
			r.Post("/login", rt.authHandler.Login)
			r.Post("/refresh", rt.authHandler.Refresh)
		})

		// Protected routes (требуют аутентификации)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(rt.tokenService))

			r.Post("/auth/logout", rt.authHandler.Logout)
			r.Get("/auth/me", rt.authHandler.GetMe)
			r.Get("/auth/check", rt.authHandler.Check)

			// Vehicle endpoints (включая встроенные документы)
			r.Route("/vehicles", func(r chi.Router) {
				r.Get("/", rt.vehicleHandler.GetMyVehicles)
				r.Post("/", rt.vehicleHandler.CreateVehicle)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", rt.vehicleHandler.GetVehicleByID)
					r.Put("/", rt.vehicleHandler.UpdateVehicle)
					r.Patch("/", rt.vehicleHandler.UpdateVehicle)
					r.Delete("/", rt.vehicleHandler.DeleteVehicle)

					// Водитель машины
					r.Route("/driver", func(r chi.Router) {
						r.Put("/", rt.driverHandler.AssignDriver)
						r.Patch("/", rt.driverHandler.UpdateDriverProfile)
						r.Delete("/", rt.driverHandler.RemoveDriver)

						r.Post("/items", rt.driverHandler.AddDriverItem)
						r.Put("/items/{itemId}", rt.driverHandler.UpdateDriverItem)
						r.Delete("/items/{itemId}", rt.driverHandler.RemoveDriverItem)
					})

					// Колеса
					r.Route("/tyres", func(r chi.Router) {
						r.Post("/", rt.vehicleHandler.AddTyre)
						r.Put("/{tyreId}", rt.vehicleHandler.UpdateTyre)
						r.Delete("/{tyreId}", rt.vehicleHandler.RemoveTyre)
					})

					// Ремонты машины
					r.Get("/repairs", rt.repairHandler.GetVehicleRepairs)
				})
			})

			// Repair endpoints
			r.Route("/repairs", func(r chi.Router) {
				r.Get("/", rt.repairHandler.GetMyRepairs)
				r.Post("/", rt.repairHandler.CreateRepair)
				r.Get("/{id}", rt.repairHandler.GetRepairByID)
				r.Put("/{id}", rt.repairHandler.UpdateRepair)
				r.Patch("/{id}", rt.repairHandler.UpdateRepair)
				r.Delete("/{id}", rt.repairHandler.DeleteRepair)
			})

			// Signature endpoints (подпись текущего пользователя)
			r.Route("/signature", func(r chi.Router) {
				r.Get("/", rt.signatureHandler.GetSignature)
				r.Put("/", rt.signatureHandler.SaveSignature)
				r.Delete("/", rt.signatureHandler.DeleteSignature)
			})

			// Image uploads
			r.Post("/uploads", rt.uploadHandler.Upload)
		})
	})

	return r
}
