package http

import (
	"context"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/usecase/auth"
	"github.com/fleettrack/fleettrack/internal/usecase/repair"
	"github.com/fleettrack/fleettrack/internal/usecase/signature"
	"github.com/fleettrack/fleettrack/internal/usecase/vehicle"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthService мок для AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *auth.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*auth.LoginResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, req *auth.RefreshRequest) (*auth.TokenResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*auth.TokenResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockVehicleService мок для VehicleService и DriverService
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) vehicleResult(args mock.Arguments) (*domain.Vehicle, error) {
	if v := args.Get(0); v != nil {
		return v.(*domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleService) CreateVehicle(ctx context.Context, callerID uuid.UUID, req *vehicle.CreateVehicleRequest) (*domain.Vehicle, error) {
	return m.vehicleResult(m.Called(ctx, callerID, req))
}

func (m *MockVehicleService) GetVehicle(ctx context.Context, callerID, vehicleID uuid.UUID) (*domain.Vehicle, error) {
	return m.vehicleResult(m.Called(ctx, callerID, vehicleID))
}

func (m *MockVehicleService) ListVehicles(ctx context.Context, callerID uuid.UUID) ([]*domain.Vehicle, error) {
	args := m.Called(ctx, callerID)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleService) UpdateVehicle(ctx context.Context, callerID, vehicleID uuid.UUID, req *vehicle.UpdateVehicleRequest) (*domain.Vehicle, error) {
	return m.vehicleResult(m.Called(ctx, callerID, vehicleID, req))
}

func (m *MockVehicleService) DeleteVehicle(ctx context.Context, callerID, vehicleID uuid.UUID) error {
	args := m.Called(ctx, callerID, vehicleID)
	return args.Error(0)
}

func (m *MockVehicleService) AssignDriver(ctx context.Context, callerID, vehicleID uuid.UUID, req *vehicle.DriverRequest) (*domain.Vehicle, error) {
	return m.vehicleResult(m.Called(ctx, callerID, vehicleID, req))
}

func (m *MockVehicleService) UpdateDriverProfile(ctx context.Context, callerID, vehicleID uuid.UUID, req *vehicle.DriverRequest) (*domain.Vehicle, error) {
	return m.vehicleResult(m.Called(ctx, callerID, vehicleID, req))
}

func (m *MockVehicleService) RemoveDriver(ctx context.Context, callerID, vehicleID uuid.UUID) error {
	args := m.Called(ctx, callerID, vehicleID)
	return args.Error(0)
}

func (m *MockVehicleService) AddDriverItem(ctx context.Context, callerID, vehicleID uuid.UUID, req *vehicle.DriverItemRequest) (*domain.Vehicle, error) {
	return m.vehicleResult(m.Called(ctx, callerID, vehicleID, req))
}

func (m *MockVehicleService) UpdateDriverItem(ctx context.Context, callerID, vehicleID uuid.UUID, itemID string, req *vehicle.DriverItemRequest) (*domain.Vehicle, error) {
	return m.vehicleResult(m.Called(ctx, callerID, vehicleID, itemID, req))
}

func (m *MockVehicleService) RemoveDriverItem(ctx context.Context, callerID, vehicleID uuid.UUID, itemID string) (*domain.Vehicle, error) {
	return m.vehicleResult(m.Called(ctx, callerID, vehicleID, itemID))
}

func (m *MockVehicleService) AddTyre(ctx context.Context, callerID, vehicleID uuid.UUID, req *vehicle.TyreRequest) (*domain.Vehicle, error) {
	return m.vehicleResult(m.Called(ctx, callerID, vehicleID, req))
}

func (m *MockVehicleService) UpdateTyre(ctx context.Context, callerID, vehicleID uuid.UUID, tyreID string, req *vehicle.TyreRequest) (*domain.Vehicle, error) {
	return m.vehicleResult(m.Called(ctx, callerID, vehicleID, tyreID, req))
}

func (m *MockVehicleService) RemoveTyre(ctx context.Context, callerID, vehicleID uuid.UUID, tyreID string) (*domain.Vehicle, error) {
	return m.vehicleResult(m.Called(ctx, callerID, vehicleID, tyreID))
}

// MockRepairService мок для RepairService
type MockRepairService struct {
	mock.Mock
}

func (m *MockRepairService) repairResult(args mock.Arguments) (*domain.Repair, error) {
	if v := args.Get(0); v != nil {
		return v.(*domain.Repair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepairService) CreateRepair(ctx context.Context, callerID uuid.UUID, req *repair.CreateRepairRequest) (*domain.Repair, error) {
	return m.repairResult(m.Called(ctx, callerID, req))
}

func (m *MockRepairService) GetRepair(ctx context.Context, callerID, repairID uuid.UUID) (*domain.Repair, error) {
	return m.repairResult(m.Called(ctx, callerID, repairID))
}

func (m *MockRepairService) ListByVehicle(ctx context.Context, callerID, vehicleID uuid.UUID) ([]*domain.Repair, error) {
	args := m.Called(ctx, callerID, vehicleID)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Repair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepairService) ListByOwner(ctx context.Context, callerID uuid.UUID) ([]*domain.Repair, error) {
	args := m.Called(ctx, callerID)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Repair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepairService) UpdateRepair(ctx context.Context, callerID, repairID uuid.UUID, req *repair.UpdateRepairRequest) (*domain.Repair, error) {
	return m.repairResult(m.Called(ctx, callerID, repairID, req))
}

func (m *MockRepairService) DeleteRepair(ctx context.Context, callerID, repairID uuid.UUID) error {
	args := m.Called(ctx, callerID, repairID)
	return args.Error(0)
}

// MockSignatureService мок для SignatureService
type MockSignatureService struct {
	mock.Mock
}

func (m *MockSignatureService) GetSignature(ctx context.Context, callerID uuid.UUID) (*domain.Signature, error) {
	args := m.Called(ctx, callerID)
	if v := args.Get(0); v != nil {
		return v.(*domain.Signature), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSignatureService) SaveSignature(ctx context.Context, callerID uuid.UUID, req *signature.SaveSignatureRequest) (*domain.Signature, error) {
	args := m.Called(ctx, callerID, req)
	if v := args.Get(0); v != nil {
		return v.(*domain.Signature), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSignatureService) DeleteSignature(ctx context.Context, callerID uuid.UUID) error {
	args := m.Called(ctx, callerID)
	return args.Error(0)
}
