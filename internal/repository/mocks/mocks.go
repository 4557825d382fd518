// Package mocks содержит testify-моки репозиториев для юнит-тестов
// usecase слоя.
package mocks

import (
	"context"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UserRepository мок для repository.UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// VehicleRepository мок для repository.VehicleRepository
type VehicleRepository struct {
	mock.Mock
}

func (m *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VehicleRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Vehicle, error) {
	args := m.Called(ctx, ownerID)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *VehicleRepository) AssignDriver(ctx context.Context, vehicleID uuid.UUID, driver *domain.Driver) error {
	args := m.Called(ctx, vehicleID, driver)
	return args.Error(0)
}

func (m *VehicleRepository) UpdateDriverProfile(ctx context.Context, vehicleID uuid.UUID, driver *domain.Driver) error {
	args := m.Called(ctx, vehicleID, driver)
	return args.Error(0)
}

func (m *VehicleRepository) RemoveDriver(ctx context.Context, vehicleID uuid.UUID) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

func (m *VehicleRepository) AddDriverItem(ctx context.Context, vehicleID uuid.UUID, item domain.DriverItem) error {
	args := m.Called(ctx, vehicleID, item)
	return args.Error(0)
}

func (m *VehicleRepository) UpdateDriverItem(ctx context.Context, vehicleID uuid.UUID, itemID string, item domain.DriverItem) error {
	args := m.Called(ctx, vehicleID, itemID, item)
	return args.Error(0)
}

func (m *VehicleRepository) RemoveDriverItem(ctx context.Context, vehicleID uuid.UUID, itemID string) error {
	args := m.Called(ctx, vehicleID, itemID)
	return args.Error(0)
}

func (m *VehicleRepository) AddTyre(ctx context.Context, vehicleID uuid.UUID, tyre domain.Tyre) error {
	args := m.Called(ctx, vehicleID, tyre)
	return args.Error(0)
}

func (m *VehicleRepository) UpdateTyre(ctx context.Context, vehicleID uuid.UUID, tyreID string, tyre domain.Tyre) error {
	args := m.Called(ctx, vehicleID, tyreID, tyre)
	return args.Error(0)
}

func (m *VehicleRepository) RemoveTyre(ctx context.Context, vehicleID uuid.UUID, tyreID string) error {
	args := m.Called(ctx, vehicleID, tyreID)
	return args.Error(0)
}

// RepairRepository мок для repository.RepairRepository
type RepairRepository struct {
	mock.Mock
}

func (m *RepairRepository) Create(ctx context.Context, repair *domain.Repair) error {
	args := m.Called(ctx, repair)
	return args.Error(0)
}

func (m *RepairRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Repair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepairRepository) GetByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.Repair, error) {
	args := m.Called(ctx, vehicleID)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Repair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepairRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Repair, error) {
	args := m.Called(ctx, ownerID)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Repair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepairRepository) Update(ctx context.Context, repair *domain.Repair) error {
	args := m.Called(ctx, repair)
	return args.Error(0)
}

func (m *RepairRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// SignatureRepository мок для repository.SignatureRepository
type SignatureRepository struct {
	mock.Mock
}

func (m *SignatureRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Signature, error) {
	args := m.Called(ctx, ownerID)
	if v := args.Get(0); v != nil {
		return v.(*domain.Signature), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SignatureRepository) Upsert(ctx context.Context, signature *domain.Signature) error {
	args := m.Called(ctx, signature)
	return args.Error(0)
}

func (m *SignatureRepository) DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// RefreshTokenRepository мок для repository.RefreshTokenRepository
type RefreshTokenRepository struct {
	mock.Mock
}

func (m *RefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *RefreshTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if v := args.Get(0); v != nil {
		return v.(*domain.RefreshToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RefreshTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *RefreshTokenRepository) RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *RefreshTokenRepository) DeleteExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
