package http

import (
	"context"
	"net/http"

	"github.com/fleettrack/fleettrack/internal/delivery/http/middleware"
	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/pkg/jwt"
	"github.com/fleettrack/fleettrack/internal/pkg/logger"
	"github.com/fleettrack/fleettrack/internal/usecase/vehicle"
	"github.com/google/uuid"
)

// VehicleService определяет интерфейс для сервиса машин
type VehicleService interface {
	CreateVehicle(ctx context.Context, callerID uuid.UUID, req *vehicle.CreateVehicleRequest) (*domain.Vehicle, error)
	GetVehicle(ctx context.Context, callerID, vehicleID uuid.UUID) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, callerID uuid.UUID) ([]*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, callerID, vehicleID uuid.UUID, req *vehicle.UpdateVehicleRequest) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, callerID, vehicleID uuid.UUID) error

	AddTyre(ctx context.Context, callerID, vehicleID uuid.UUID, req *vehicle.TyreRequest) (*domain.Vehicle, error)
	UpdateTyre(ctx context.Context, callerID, vehicleID uuid.UUID, tyreID string, req *vehicle.TyreRequest) (*domain.Vehicle, error)
	RemoveTyre(ctx context.Context, callerID, vehicleID uuid.UUID, tyreID string) (*domain.Vehicle, error)
}

// VehicleHandler обрабатывает запросы связанные с машинами и их колесами
type VehicleHandler struct {
	vehicleService VehicleService
	logger         logger.Logger
}

// NewVehicleHandler создает новый handler
func NewVehicleHandler(vehicleService VehicleService, logger logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         logger,
	}
}

// CreateVehicle создает новую машину текущего пользователя
// POST /api/v1/vehicles
func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req vehicle.CreateVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.vehicleService.CreateVehicle(r.Context(), claims.UserID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create vehicle")
		return
	}

	respondData(w, http.StatusCreated, v)
}

// GetMyVehicles возвращает все машины текущего пользователя
// GET /api/v1/vehicles
func (h *VehicleHandler) GetMyVehicles(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vehicles, err := h.vehicleService.ListVehicles(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get vehicles")
		return
	}

	respondData(w, http.StatusOK, vehicles)
}

// GetVehicleByID возвращает машину по ID
// GET /api/v1/vehicles/{id}
func (h *VehicleHandler) GetVehicleByID(w http.ResponseWriter, r *http.Request) {
	claims, vehicleID, ok := h.callerAndVehicleID(w, r)
	if !ok {
		return
	}

	v, err := h.vehicleService.GetVehicle(r.Context(), claims.UserID, vehicleID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get vehicle")
		return
	}

	respondData(w, http.StatusOK, v)
}

// UpdateVehicle частично обновляет машину
// PATCH /api/v1/vehicles/{id}
func (h *VehicleHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	claims, vehicleID, ok := h.callerAndVehicleID(w, r)
	if !ok {
		return
	}

	var req vehicle.UpdateVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.vehicleService.UpdateVehicle(r.Context(), claims.UserID, vehicleID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update vehicle")
		return
	}

	respondData(w, http.StatusOK, v)
}

// DeleteVehicle удаляет машину вместе с её ремонтами
// DELETE /api/v1/vehicles/{id}
func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	claims, vehicleID, ok := h.callerAndVehicleID(w, r)
	if !ok {
		return
	}

	if err := h.vehicleService.DeleteVehicle(r.Context(), claims.UserID, vehicleID); err != nil {
		respondServiceError(w, h.logger, err, "delete vehicle")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Vehicle deleted",
	})
}

// AddTyre добавляет колесо машине
// POST /api/v1/vehicles/{id}/tyres
func (h *VehicleHandler) AddTyre(w http.ResponseWriter, r *http.Request) {
	claims, vehicleID, ok := h.callerAndVehicleID(w, r)
	if !ok {
		return
	}

	var req vehicle.TyreRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.vehicleService.AddTyre(r.Context(), claims.UserID, vehicleID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "add tyre")
		return
	}

	respondData(w, http.StatusCreated, v)
}

// UpdateTyre заменяет колесо с данным локальным id
// PUT /api/v1/vehicles/{id}/tyres/{tyreId}
func (h *VehicleHandler) UpdateTyre(w http.ResponseWriter, r *http.Request) {
	claims, vehicleID, ok := h.callerAndVehicleID(w, r)
	if !ok {
		return
	}

	tyreID := getPathParam(r, "tyreId")
	if tyreID == "" {
		respondError(w, http.StatusBadRequest, "Invalid tyre ID")
		return
	}

	var req vehicle.TyreRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.vehicleService.UpdateTyre(r.Context(), claims.UserID, vehicleID, tyreID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update tyre")
		return
	}

	respondData(w, http.StatusOK, v)
}

// RemoveTyre удаляет колесо с данным локальным id
// DELETE /api/v1/vehicles/{id}/tyres/{tyreId}
func (h *VehicleHandler) RemoveTyre(w http.ResponseWriter, r *http.Request) {
	claims, vehicleID, ok := h.callerAndVehicleID(w, r)
	if !ok {
		return
	}

	tyreID := getPathParam(r, "tyreId")
	if tyreID == "" {
		respondError(w, http.StatusBadRequest, "Invalid tyre ID")
		return
	}

	v, err := h.vehicleService.RemoveTyre(r.Context(), claims.UserID, vehicleID, tyreID)
	if err != nil {
		respondServiceError(w, h.logger, err, "remove tyre")
		return
	}

	respondData(w, http.StatusOK, v)
}

// callerAndVehicleID извлекает claims вызывающего и id машины из запроса.
// При ошибке ответ уже записан, возвращается ok=false.
func (h *VehicleHandler) callerAndVehicleID(w http.ResponseWriter, r *http.Request) (*jwt.Claims, uuid.UUID, bool) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, uuid.Nil, false
	}

	vehicleID, err := uuid.Parse(getPathParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid vehicle ID")
		return nil, uuid.Nil, false
	}

	return claims, vehicleID, true
}
