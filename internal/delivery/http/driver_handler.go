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

// DriverService определяет интерфейс для операций над водителем машины
// и выданными ему вещами
type DriverService interface {
	AssignDriver(ctx context.Context, callerID, vehicleID uuid.UUID, req *vehicle.DriverRequest) (*domain.Vehicle, error)
	UpdateDriverProfile(ctx context.Context, callerID, vehicleID uuid.UUID, req *vehicle.DriverRequest) (*domain.Vehicle, error)
	RemoveDriver(ctx context.Context, callerID, vehicleID uuid.UUID) error

	AddDriverItem(ctx context.Context, callerID, vehicleID uuid.UUID, req *vehicle.DriverItemRequest) (*domain.Vehicle, error)
	UpdateDriverItem(ctx context.Context, callerID, vehicleID uuid.UUID, itemID string, req *vehicle.DriverItemRequest) (*domain.Vehicle, error)
	RemoveDriverItem(ctx context.Context, callerID, vehicleID uuid.UUID, itemID string) (*domain.Vehicle, error)
}

// DriverHandler обрабатывает запросы связанные с водителем машины
type DriverHandler struct {
	driverService DriverService
	logger        logger.Logger
}

// NewDriverHandler создает новый handler
func NewDriverHandler(driverService DriverService, logger logger.Logger) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
		logger:        logger,
	}
}

// AssignDriver закрепляет водителя за машиной
// PUT /api/v1/vehicles/{id}/driver
func (h *DriverHandler) AssignDriver(w http.ResponseWriter, r *http.Request) {
	claims, vehicleID, ok := h.callerAndVehicleID(w, r)
	if !ok {
		return
	}

	var req vehicle.DriverRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.driverService.AssignDriver(r.Context(), claims.UserID, vehicleID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "assign driver")
		return
	}

	respondData(w, http.StatusOK, v)
}

// UpdateDriverProfile обновляет анкету водителя, не трогая выданные вещи
// PATCH /api/v1/vehicles/{id}/driver
func (h *DriverHandler) UpdateDriverProfile(w http.ResponseWriter, r *http.Request) {
	claims, vehicleID, ok := h.callerAndVehicleID(w, r)
	if !ok {
		return
	}

	var req vehicle.DriverRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.driverService.UpdateDriverProfile(r.Context(), claims.UserID, vehicleID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update driver")
		return
	}

	respondData(w, http.StatusOK, v)
}

// RemoveDriver открепляет водителя от машины
// DELETE /api/v1/vehicles/{id}/driver
func (h *DriverHandler) RemoveDriver(w http.ResponseWriter, r *http.Request) {
	claims, vehicleID, ok := h.callerAndVehicleID(w, r)
	if !ok {
		return
	}

	if err := h.driverService.RemoveDriver(r.Context(), claims.UserID, vehicleID); err != nil {
		respondServiceError(w, h.logger, err, "remove driver")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Driver removed",
	})
}

// AddDriverItem добавляет выданную водителю вещь
// POST /api/v1/vehicles/{id}/driver/items
func (h *DriverHandler) AddDriverItem(w http.ResponseWriter, r *http.Request) {
	claims, vehicleID, ok := h.callerAndVehicleID(w, r)
	if !ok {
		return
	}

	var req vehicle.DriverItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.driverService.AddDriverItem(r.Context(), claims.UserID, vehicleID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "add driver item")
		return
	}

	respondData(w, http.StatusCreated, v)
}

// UpdateDriverItem заменяет выданную вещь с данным локальным id
// PUT /api/v1/vehicles/{id}/driver/items/{itemId}
func (h *DriverHandler) UpdateDriverItem(w http.ResponseWriter, r *http.Request) {
	claims, vehicleID, ok := h.callerAndVehicleID(w, r)
	if !ok {
		return
	}

	itemID := getPathParam(r, "itemId")
	if itemID == "" {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req vehicle.DriverItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.driverService.UpdateDriverItem(r.Context(), claims.UserID, vehicleID, itemID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update driver item")
		return
	}

	respondData(w, http.StatusOK, v)
}

// RemoveDriverItem удаляет выданную вещь с данным локальным id
// DELETE /api/v1/vehicles/{id}/driver/items/{itemId}
func (h *DriverHandler) RemoveDriverItem(w http.ResponseWriter, r *http.Request) {
	claims, vehicleID, ok := h.callerAndVehicleID(w, r)
	if !ok {
		return
	}

	itemID := getPathParam(r, "itemId")
	if itemID == "" {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	v, err := h.driverService.RemoveDriverItem(r.Context(), claims.UserID, vehicleID, itemID)
	if err != nil {
		respondServiceError(w, h.logger, err, "remove driver item")
		return
	}

	respondData(w, http.StatusOK, v)
}

func (h *DriverHandler) callerAndVehicleID(w http.ResponseWriter, r *http.Request) (*jwt.Claims, uuid.UUID, bool) {
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
