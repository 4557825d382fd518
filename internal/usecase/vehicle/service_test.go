package vehicle

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

func newTestService(repo *mocks.VehicleRepository) *Service {
	return NewService(repo, logger.NewNoop())
}

// TestService_CreateVehicle тестирует создание машины
func TestService_CreateVehicle(t *testing.T) {
	callerID := uuid.New()

	tests := []struct {
		name        string
		req         *CreateVehicleRequest
		mockSetup   func(*mocks.VehicleRepository)
		expectedErr error
	}{
		{
			name: "успешное создание с нормализацией номера",
			req: &CreateVehicleRequest{
				Name:          "Delivery Truck",
				OwnerName:     "Ivan",
				VehicleNumber: "ka 01 ab 1234",
			},
			mockSetup: func(m *mocks.VehicleRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool {
					return v.OwnerID == callerID && v.VehicleNumber == "KA01AB1234"
				})).Return(nil)
			},
			expectedErr: nil,
		},
		{
			name: "пустое имя",
			req: &CreateVehicleRequest{
				Name:          "",
				OwnerName:     "Ivan",
				VehicleNumber: "KA01AB1234",
			},
			mockSetup:   func(m *mocks.VehicleRepository) {},
			expectedErr: domain.ErrInvalidVehicleData,
		},
		{
			name: "слишком короткий номер",
			req: &CreateVehicleRequest{
				Name:          "Truck",
				OwnerName:     "Ivan",
				VehicleNumber: "A1",
			},
			mockSetup:   func(m *mocks.VehicleRepository) {},
			expectedErr: domain.ErrInvalidVehicleNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.VehicleRepository)
			tt.mockSetup(repo)

			svc := newTestService(repo)
			v, err := svc.CreateVehicle(context.Background(), callerID, tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, v)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, callerID, v.OwnerID)
			}

			repo.AssertExpectations(t)
		})
	}
}

// TestService_GetVehicle тестирует проверку владения при чтении машины
func TestService_GetVehicle(t *testing.T) {
	callerID := uuid.New()
	otherID := uuid.New()
	vehicleID := uuid.New()

	tests := []struct {
		name        string
		mockSetup   func(*mocks.VehicleRepository)
		expectedErr error
	}{
		{
			name: "своя машина",
			mockSetup: func(m *mocks.VehicleRepository) {
				m.On("GetByID", mock.Anything, vehicleID).
					Return(&domain.Vehicle{ID: vehicleID, OwnerID: callerID}, nil)
			},
			expectedErr: nil,
		},
		{
			name: "машина не найдена",
			mockSetup: func(m *mocks.VehicleRepository) {
				m.On("GetByID", mock.Anything, vehicleID).
					Return(nil, domain.ErrVehicleNotFound)
			},
			expectedErr: domain.ErrVehicleNotFound,
		},
		{
			name: "чужая машина",
			mockSetup: func(m *mocks.VehicleRepository) {
				m.On("GetByID", mock.Anything, vehicleID).
					Return(&domain.Vehicle{ID: vehicleID, OwnerID: otherID}, nil)
			},
			expectedErr: domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.VehicleRepository)
			tt.mockSetup(repo)

			svc := newTestService(repo)
			v, err := svc.GetVehicle(context.Background(), callerID, vehicleID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, v)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, vehicleID, v.ID)
			}

			repo.AssertExpectations(t)
		})
	}
}

// TestService_UpdateVehicle тестирует частичное обновление:
// не присланные поля не меняются
func TestService_UpdateVehicle(t *testing.T) {
	callerID := uuid.New()
	vehicleID := uuid.New()
	newName := "Renamed Truck"

	existing := &domain.Vehicle{
		ID:            vehicleID,
		OwnerID:       callerID,
		Name:          "Old Truck",
		OwnerName:     "Ivan",
		VehicleNumber: "KA01AB1234",
		ImageURL:      "https://img.example.com/truck.jpg",
	}

	repo := new(mocks.VehicleRepository)
	repo.On("GetByID", mock.Anything, vehicleID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool {
		return v.Name == newName &&
			v.OwnerName == "Ivan" &&
			v.VehicleNumber == "KA01AB1234" &&
			v.ImageURL == "https://img.example.com/truck.jpg"
	})).Return(nil)

	svc := newTestService(repo)
	v, err := svc.UpdateVehicle(context.Background(), callerID, vehicleID, &UpdateVehicleRequest{
		Name: &newName,
	})

	assert.NoError(t, err)
	assert.Equal(t, newName, v.Name)
	repo.AssertExpectations(t)
}

// TestService_DeleteVehicle тестирует, что чужую машину удалить нельзя
func TestService_DeleteVehicle(t *testing.T) {
	callerID := uuid.New()
	otherID := uuid.New()
	vehicleID := uuid.New()

	t.Run("чужая машина не удаляется", func(t *testing.T) {
		repo := new(mocks.VehicleRepository)
		repo.On("GetByID", mock.Anything, vehicleID).
			Return(&domain.Vehicle{ID: vehicleID, OwnerID: otherID}, nil)

		svc := newTestService(repo)
		err := svc.DeleteVehicle(context.Background(), callerID, vehicleID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("своя машина удаляется", func(t *testing.T) {
		repo := new(mocks.VehicleRepository)
		repo.On("GetByID", mock.Anything, vehicleID).
			Return(&domain.Vehicle{ID: vehicleID, OwnerID: callerID}, nil)
		repo.On("Delete", mock.Anything, vehicleID).Return(nil)

		svc := newTestService(repo)
		err := svc.DeleteVehicle(context.Background(), callerID, vehicleID)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

// TestService_UpdateDriverProfile тестирует обновление анкеты водителя
func TestService_UpdateDriverProfile(t *testing.T) {
	callerID := uuid.New()
	vehicleID := uuid.New()

	req := &DriverRequest{
		Name:        "Suresh",
		PhoneNumber: "9876543210",
	}

	t.Run("без водителя анкету не обновить", func(t *testing.T) {
		repo := new(mocks.VehicleRepository)
		repo.On("GetByID", mock.Anything, vehicleID).
			Return(&domain.Vehicle{ID: vehicleID, OwnerID: callerID}, nil)

		svc := newTestService(repo)
		_, err := svc.UpdateDriverProfile(context.Background(), callerID, vehicleID, req)

		assert.ErrorIs(t, err, domain.ErrNoDriverAssigned)
		repo.AssertNotCalled(t, "UpdateDriverProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("успешное обновление", func(t *testing.T) {
		withDriver := &domain.Vehicle{
			ID:      vehicleID,
			OwnerID: callerID,
			Driver:  &domain.Driver{Name: "Old Name", PhoneNumber: "1234567890"},
		}

		repo := new(mocks.VehicleRepository)
		repo.On("GetByID", mock.Anything, vehicleID).Return(withDriver, nil)
		repo.On("UpdateDriverProfile", mock.Anything, vehicleID, mock.MatchedBy(func(d *domain.Driver) bool {
			return d.Name == "Suresh"
		})).Return(nil)

		svc := newTestService(repo)
		_, err := svc.UpdateDriverProfile(context.Background(), callerID, vehicleID, req)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

// TestService_AddDriverItem тестирует выдачу вещи водителю
func TestService_AddDriverItem(t *testing.T) {
	callerID := uuid.New()
	vehicleID := uuid.New()

	owned := &domain.Vehicle{
		ID:      vehicleID,
		OwnerID: callerID,
		Driver:  &domain.Driver{Name: "Suresh", PhoneNumber: "9876543210"},
	}

	tests := []struct {
		name        string
		req         *DriverItemRequest
		mockSetup   func(*mocks.VehicleRepository)
		expectedErr error
	}{
		{
			name: "успешное добавление с числовым количеством",
			req: &DriverItemRequest{
				ItemName:  "Helmet",
				Quantity:  "2",
				GivenDate: "2026-01-15",
			},
			mockSetup: func(m *mocks.VehicleRepository) {
				m.On("GetByID", mock.Anything, vehicleID).Return(owned, nil).Twice()
				m.On("AddDriverItem", mock.Anything, vehicleID, mock.MatchedBy(func(it domain.DriverItem) bool {
					return it.ID != "" && it.ItemName == "Helmet"
				})).Return(nil)
			},
			expectedErr: nil,
		},
		{
			name: "количество OK допустимо",
			req: &DriverItemRequest{
				ItemName:  "Vest",
				Quantity:  domain.QuantityOK,
				GivenDate: "2026-01-15",
			},
			mockSetup: func(m *mocks.VehicleRepository) {
				m.On("GetByID", mock.Anything, vehicleID).Return(owned, nil).Twice()
				m.On("AddDriverItem", mock.Anything, vehicleID, mock.Anything).Return(nil)
			},
			expectedErr: nil,
		},
		{
			name: "недопустимое количество",
			req: &DriverItemRequest{
				ItemName:  "Vest",
				Quantity:  "maybe",
				GivenDate: "2026-01-15",
			},
			mockSetup: func(m *mocks.VehicleRepository) {
				m.On("GetByID", mock.Anything, vehicleID).Return(owned, nil)
			},
			expectedErr: domain.ErrInvalidQuantity,
		},
		{
			name: "без водителя вещь не выдать",
			req: &DriverItemRequest{
				ItemName:  "Helmet",
				Quantity:  "1",
				GivenDate: "2026-01-15",
			},
			mockSetup: func(m *mocks.VehicleRepository) {
				m.On("GetByID", mock.Anything, vehicleID).
					Return(&domain.Vehicle{ID: vehicleID, OwnerID: callerID}, nil)
				m.On("AddDriverItem", mock.Anything, vehicleID, mock.Anything).
					Return(domain.ErrNoDriverAssigned)
			},
			expectedErr: domain.ErrNoDriverAssigned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.VehicleRepository)
			tt.mockSetup(repo)

			svc := newTestService(repo)
			_, err := svc.AddDriverItem(context.Background(), callerID, vehicleID, tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			repo.AssertExpectations(t)
		})
	}
}

// TestService_AddTyre тестирует добавление колеса
func TestService_AddTyre(t *testing.T) {
	callerID := uuid.New()
	vehicleID := uuid.New()
	owned := &domain.Vehicle{ID: vehicleID, OwnerID: callerID}

	t.Run("успешное добавление с генерацией id", func(t *testing.T) {
		repo := new(mocks.VehicleRepository)
		repo.On("GetByID", mock.Anything, vehicleID).Return(owned, nil).Twice()
		repo.On("AddTyre", mock.Anything, vehicleID, mock.MatchedBy(func(tyre domain.Tyre) bool {
			return tyre.ID != "" && tyre.TyreNumber == "TY-042"
		})).Return(nil)

		svc := newTestService(repo)
		_, err := svc.AddTyre(context.Background(), callerID, vehicleID, &TyreRequest{
			TyreNumber:    "TY-042",
			Description:   "Front left",
			InstalledDate: "2026-02-01",
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("невалидное колесо", func(t *testing.T) {
		repo := new(mocks.VehicleRepository)
		repo.On("GetByID", mock.Anything, vehicleID).Return(owned, nil)

		svc := newTestService(repo)
		_, err := svc.AddTyre(context.Background(), callerID, vehicleID, &TyreRequest{
			TyreNumber:    "T",
			Description:   "Front left",
			InstalledDate: "2026-02-01",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidTyreData)
		repo.AssertNotCalled(t, "AddTyre", mock.Anything, mock.Anything, mock.Anything)
	})
}
