package repair

import (
	"context"
	"testing"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/pkg/logger"
	"github.com/fleettrack/fleettrack/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestService(repairRepo *mocks.RepairRepository, vehicleRepo *mocks.VehicleRepository) *Service {
	return NewService(repairRepo, vehicleRepo, logger.NewNoop())
}

// TestService_CreateRepair тестирует создание ремонта с фиксацией владельца
func TestService_CreateRepair(t *testing.T) {
	callerID := uuid.New()
	otherID := uuid.New()
	vehicleID := uuid.New()

	req := &CreateRepairRequest{
		VehicleID:  vehicleID,
		RepairDate: "2026-03-10",
		Amount:     1500,
		ToolName:   "Brake pads",
	}

	tests := []struct {
		name        string
		mockSetup   func(*mocks.RepairRepository, *mocks.VehicleRepository)
		expectedErr error
	}{
		{
			name: "успешное создание: owner_id берется из машины вызывающего",
			mockSetup: func(rr *mocks.RepairRepository, vr *mocks.VehicleRepository) {
				vr.On("GetByID", mock.Anything, vehicleID).
					Return(&domain.Vehicle{ID: vehicleID, OwnerID: callerID}, nil)
				rr.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Repair) bool {
					return r.OwnerID == callerID && r.VehicleID == vehicleID
				})).Return(nil)
			},
			expectedErr: nil,
		},
		{
			name: "на чужую машину ремонт не завести",
			mockSetup: func(rr *mocks.RepairRepository, vr *mocks.VehicleRepository) {
				vr.On("GetByID", mock.Anything, vehicleID).
					Return(&domain.Vehicle{ID: vehicleID, OwnerID: otherID}, nil)
			},
			expectedErr: domain.ErrForbidden,
		},
		{
			name: "машина не существует",
			mockSetup: func(rr *mocks.RepairRepository, vr *mocks.VehicleRepository) {
				vr.On("GetByID", mock.Anything, vehicleID).
					Return(nil, domain.ErrVehicleNotFound)
			},
			expectedErr: domain.ErrVehicleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repairRepo := new(mocks.RepairRepository)
			vehicleRepo := new(mocks.VehicleRepository)
			tt.mockSetup(repairRepo, vehicleRepo)

			svc := newTestService(repairRepo, vehicleRepo)
			rep, err := svc.CreateRepair(context.Background(), callerID, req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, rep)
				repairRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, callerID, rep.OwnerID)
			}

			repairRepo.AssertExpectations(t)
			vehicleRepo.AssertExpectations(t)
		})
	}
}

// TestService_GetRepair тестирует проверку владения по сохраненному owner_id
func TestService_GetRepair(t *testing.T) {
	callerID := uuid.New()
	otherID := uuid.New()
	repairID := uuid.New()

	t.Run("чужой ремонт", func(t *testing.T) {
		repairRepo := new(mocks.RepairRepository)
		repairRepo.On("GetByID", mock.Anything, repairID).
			Return(&domain.Repair{ID: repairID, OwnerID: otherID}, nil)

		svc := newTestService(repairRepo, new(mocks.VehicleRepository))
		_, err := svc.GetRepair(context.Background(), callerID, repairID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("ремонт не найден", func(t *testing.T) {
		repairRepo := new(mocks.RepairRepository)
		repairRepo.On("GetByID", mock.Anything, repairID).
			Return(nil, domain.ErrRepairNotFound)

		svc := newTestService(repairRepo, new(mocks.VehicleRepository))
		_, err := svc.GetRepair(context.Background(), callerID, repairID)

		assert.ErrorIs(t, err, domain.ErrRepairNotFound)
	})
}

// TestService_UpdateRepair тестирует частичное обновление ремонта
func TestService_UpdateRepair(t *testing.T) {
	callerID := uuid.New()
	repairID := uuid.New()
	newAmount := 2500.0

	existing := &domain.Repair{
		ID:         repairID,
		VehicleID:  uuid.New(),
		OwnerID:    callerID,
		RepairDate: "2026-03-10",
		Amount:     1500,
		ToolName:   "Brake pads",
	}

	repairRepo := new(mocks.RepairRepository)
	repairRepo.On("GetByID", mock.Anything, repairID).Return(existing, nil)
	repairRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Repair) bool {
		return r.Amount == newAmount && r.ToolName == "Brake pads"
	})).Return(nil)

	svc := newTestService(repairRepo, new(mocks.VehicleRepository))
	rep, err := svc.UpdateRepair(context.Background(), callerID, repairID, &UpdateRepairRequest{
		Amount: &newAmount,
	})

	assert.NoError(t, err)
	assert.Equal(t, newAmount, rep.Amount)
	repairRepo.AssertExpectations(t)
}

// TestService_ListByVehicle тестирует, что чужие списки недоступны
func TestService_ListByVehicle(t *testing.T) {
	callerID := uuid.New()
	otherID := uuid.New()
	vehicleID := uuid.New()

	vehicleRepo := new(mocks.VehicleRepository)
	vehicleRepo.On("GetByID", mock.Anything, vehicleID).
		Return(&domain.Vehicle{ID: vehicleID, OwnerID: otherID}, nil)

	repairRepo := new(mocks.RepairRepository)

	svc := newTestService(repairRepo, vehicleRepo)
	_, err := svc.ListByVehicle(context.Background(), callerID, vehicleID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repairRepo.AssertNotCalled(t, "GetByVehicleID", mock.Anything, mock.Anything)
}

// TestService_DeleteRepair тестирует удаление ремонта
func TestService_DeleteRepair(t *testing.T) {
	callerID := uuid.New()
	repairID := uuid.New()

	repairRepo := new(mocks.RepairRepository)
	repairRepo.On("GetByID", mock.Anything, repairID).
		Return(&domain.Repair{ID: repairID, OwnerID: callerID}, nil)
	repairRepo.On("Delete", mock.Anything, repairID).Return(nil)

	svc := newTestService(repairRepo, new(mocks.VehicleRepository))
	err := svc.DeleteRepair(context.Background(), callerID, repairID)

	assert.NoError(t, err)
	repairRepo.AssertExpectations(t)
}
