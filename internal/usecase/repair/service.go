package repair

import (
	"context"
	"fmt"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/pkg/logger"
	"github.com/fleettrack/fleettrack/internal/repository"
	"github.com/google/uuid"
)

// CreateRepairRequest - запрос на создание записи о ремонте
type CreateRepairRequest struct {
	VehicleID    uuid.UUID `json:"vehicle_id" validate:"required"`
	RepairDate   string    `json:"repair_date" validate:"required"`
	Amount       float64   `json:"amount" validate:"gte=0"`
	ToolName     string    `json:"tool_name" validate:"required"`
	ToolImageURL string    `json:"tool_image_url,omitempty"`
}

// UpdateRepairRequest - запрос на частичное обновление ремонта
type UpdateRepairRequest struct {
	RepairDate   *string  `json:"repair_date,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
	ToolName     *string  `json:"tool_name,omitempty"`
	ToolImageURL *string  `json:"tool_image_url,omitempty"`
}

// Service содержит бизнес-логику работы с ремонтами.
//
// Владелец ремонта фиксируется при создании из владеющей машины.
// Все дальнейшие проверки владения сверяют callerID с сохраненным
// owner_id записи, а не с текущим состоянием машины.
type Service struct {
	repairRepo  repository.RepairRepository
	vehicleRepo repository.VehicleRepository
	logger      logger.Logger
}

// NewService создает новый экземпляр RepairService
func NewService(
	repairRepo repository.RepairRepository,
	vehicleRepo repository.VehicleRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		repairRepo:  repairRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// CreateRepair создает запись о ремонте машины callerID
func (s *Service) CreateRepair(ctx context.Context, callerID uuid.UUID, req *CreateRepairRequest) (*domain.Repair, error) {
	// Ремонт можно завести только на свою машину
	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}

	repair := &domain.Repair{
		VehicleID:    req.VehicleID,
		OwnerID:      callerID,
		RepairDate:   req.RepairDate,
		Amount:       req.Amount,
		ToolName:     req.ToolName,
		ToolImageURL: req.ToolImageURL,
	}

	if err := repair.Validate(); err != nil {
		return nil, err
	}

	if err := s.repairRepo.Create(ctx, repair); err != nil {
		s.logger.Error("Failed to create repair", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create repair: %w", err)
	}

	s.logger.Info("Repair created", map[string]interface{}{
		"repair_id":  repair.ID,
		"vehicle_id": repair.VehicleID,
	})

	return repair, nil
}

// GetRepair возвращает ремонт callerID по ID
func (s *Service) GetRepair(ctx context.Context, callerID, repairID uuid.UUID) (*domain.Repair, error) {
	return s.getOwnedRepair(ctx, callerID, repairID)
}

// ListByVehicle возвращает все ремонты машины callerID
func (s *Service) ListByVehicle(ctx context.Context, callerID, vehicleID uuid.UUID) ([]*domain.Repair, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}

	return s.repairRepo.GetByVehicleID(ctx, vehicleID)
}

// ListByOwner возвращает все ремонты callerID по всем его машинам
func (s *Service) ListByOwner(ctx context.Context, callerID uuid.UUID) ([]*domain.Repair, error) {
	return s.repairRepo.GetByOwnerID(ctx, callerID)
}

// UpdateRepair частично обновляет ремонт callerID
func (s *Service) UpdateRepair(ctx context.Context, callerID, repairID uuid.UUID, req *UpdateRepairRequest) (*domain.Repair, error) {
	repair, err := s.getOwnedRepair(ctx, callerID, repairID)
	if err != nil {
		return nil, err
	}

	if req.RepairDate != nil {
		repair.RepairDate = *req.RepairDate
	}
	if req.Amount != nil {
		repair.Amount = *req.Amount
	}
	if req.ToolName != nil {
		repair.ToolName = *req.ToolName
	}
	if req.ToolImageURL != nil {
		repair.ToolImageURL = *req.ToolImageURL
	}

	if err := repair.Validate(); err != nil {
		return nil, err
	}

	if err := s.repairRepo.Update(ctx, repair); err != nil {
		return nil, err
	}

	return repair, nil
}

// DeleteRepair удаляет ремонт callerID
func (s *Service) DeleteRepair(ctx context.Context, callerID, repairID uuid.UUID) error {
	if _, err := s.getOwnedRepair(ctx, callerID, repairID); err != nil {
		return err
	}

	if err := s.repairRepo.Delete(ctx, repairID); err != nil {
		return err
	}

	s.logger.Info("Repair deleted", map[string]interface{}{
		"repair_id": repairID,
	})

	return nil
}

// getOwnedRepair возвращает ремонт, убедившись что он принадлежит
// callerID. Сначала существование (ErrRepairNotFound), потом
// владение (ErrForbidden).
func (s *Service) getOwnedRepair(ctx context.Context, callerID, repairID uuid.UUID) (*domain.Repair, error) {
	repair, err := s.repairRepo.GetByID(ctx, repairID)
	if err != nil {
		return nil, err
	}

	if repair.OwnerID != callerID {
		s.logger.Warn("Repair access denied", map[string]interface{}{
			"repair_id": repairID,
			"caller_id": callerID,
		})
		return nil, domain.ErrForbidden
	}

	return repair, nil
}
