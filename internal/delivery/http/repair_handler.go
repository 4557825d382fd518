package http

import (
	"context"
	"net/http"

	"github.com/fleettrack/fleettrack/internal/delivery/http/middleware"
	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/pkg/jwt"
	"github.com/fleettrack/fleettrack/internal/pkg/logger"
	"github.com/fleettrack/fleettrack/internal/usecase/repair"
	"github.com/google/uuid"
)

// RepairService определяет интерфейс для сервиса ремонтов
type RepairService interface {
	CreateRepair(ctx context.Context, callerID uuid.UUID, req *repair.CreateRepairRequest) (*domain.Repair, error)
	GetRepair(ctx context.Context, callerID, repairID uuid.UUID) (*domain.Repair, error)
	ListByVehicle(ctx context.Context, callerID, vehicleID uuid.UUID) ([]*domain.Repair, error)
	ListByOwner(ctx context.Context, callerID uuid.UUID) ([]*domain.Repair, error)
	UpdateRepair(ctx context.Context, callerID, repairID uuid.UUID, req *repair.UpdateRepairRequest) (*domain.Repair, error)
	DeleteRepair(ctx context.Context, callerID, repairID uuid.UUID) error
}

// RepairHandler обрабатывает запросы связанные с ремонтами
type RepairHandler struct {
	repairService RepairService
	logger        logger.Logger
}

// NewRepairHandler создает новый handler
func NewRepairHandler(repairService RepairService, logger logger.Logger) *RepairHandler {
	return &RepairHandler{
		repairService: repairService,
		logger:        logger,
	}
}

// CreateRepair создает запись о ремонте
// POST /api/v1/repairs
func (h *RepairHandler) CreateRepair(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req repair.CreateRepairRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rep, err := h.repairService.CreateRepair(r.Context(), claims.UserID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create repair")
		return
	}

	respondData(w, http.StatusCreated, rep)
}

// GetMyRepairs возвращает ремонты текущего пользователя.
// Необязательный query-параметр vehicleId сужает выборку до одной машины
// GET /api/v1/repairs[?vehicleId=...]
func (h *RepairHandler) GetMyRepairs(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var (
		repairs []*domain.Repair
		err     error
	)

	if raw := r.URL.Query().Get("vehicleId"); raw != "" {
		vehicleID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			respondError(w, http.StatusBadRequest, "Invalid vehicle ID")
			return
		}
		repairs, err = h.repairService.ListByVehicle(r.Context(), claims.UserID, vehicleID)
	} else {
		repairs, err = h.repairService.ListByOwner(r.Context(), claims.UserID)
	}

	if err != nil {
		respondServiceError(w, h.logger, err, "get repairs")
		return
	}

	respondData(w, http.StatusOK, repairs)
}

// GetRepairByID возвращает ремонт по ID
// GET /api/v1/repairs/{id}
func (h *RepairHandler) GetRepairByID(w http.ResponseWriter, r *http.Request) {
	claims, repairID, ok := h.callerAndRepairID(w, r)
	if !ok {
		return
	}

	rep, err := h.repairService.GetRepair(r.Context(), claims.UserID, repairID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get repair")
		return
	}

	respondData(w, http.StatusOK, rep)
}

// GetVehicleRepairs возвращает все ремонты машины
// GET /api/v1/vehicles/{id}/repairs
func (h *RepairHandler) GetVehicleRepairs(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vehicleID, err := uuid.Parse(getPathParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	repairs, err := h.repairService.ListByVehicle(r.Context(), claims.UserID, vehicleID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get vehicle repairs")
		return
	}

	respondData(w, http.StatusOK, repairs)
}

// UpdateRepair частично обновляет ремонт
// PATCH /api/v1/repairs/{id}
func (h *RepairHandler) UpdateRepair(w http.ResponseWriter, r *http.Request) {
	claims, repairID, ok := h.callerAndRepairID(w, r)
	if !ok {
		return
	}

	var req repair.UpdateRepairRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rep, err := h.repairService.UpdateRepair(r.Context(), claims.UserID, repairID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update repair")
		return
	}

	respondData(w, http.StatusOK, rep)
}

// DeleteRepair удаляет ремонт
// DELETE /api/v1/repairs/{id}
func (h *RepairHandler) DeleteRepair(w http.ResponseWriter, r *http.Request) {
	claims, repairID, ok := h.callerAndRepairID(w, r)
	if !ok {
		return
	}

	if err := h.repairService.DeleteRepair(r.Context(), claims.UserID, repairID); err != nil {
		respondServiceError(w, h.logger, err, "delete repair")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Repair deleted",
	})
}

func (h *RepairHandler) callerAndRepairID(w http.ResponseWriter, r *http.Request) (*jwt.Claims, uuid.UUID, bool) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, uuid.Nil, false
	}

	repairID, err := uuid.Parse(getPathParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid repair ID")
		return nil, uuid.Nil, false
	}

	return claims, repairID, true
}
