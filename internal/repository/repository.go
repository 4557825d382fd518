package repository

import (
	"context"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/google/uuid"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// Create создает нового пользователя
	Create(ctx context.Context, user *domain.User) error

	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail возвращает пользователя по email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateLastLogin обновляет время последнего входа
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// VehicleRepository определяет методы для работы с машинами.
// Driver, DriverItem и Tyre - встроенные документы машины и не имеют
// собственного хранилища: все операции над ними переписывают документ
// родителя. Операции над встроенными списками сериализуются по строке
// машины (SELECT ... FOR UPDATE), так что одновременные изменения разных
// элементов не теряются.
type VehicleRepository interface {
	// Create создает новую машину
	Create(ctx context.Context, vehicle *domain.Vehicle) error

	// GetByID возвращает машину по ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)

	// GetByOwnerID возвращает все машины пользователя
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Vehicle, error)

	// Update обновляет данные машины (документ целиком)
	Update(ctx context.Context, vehicle *domain.Vehicle) error

	// Delete удаляет машину и каскадно все её ремонты (одна транзакция)
	Delete(ctx context.Context, id uuid.UUID) error

	// AssignDriver закрепляет водителя за машиной; список выданных
	// вещей начинается пустым
	AssignDriver(ctx context.Context, vehicleID uuid.UUID, driver *domain.Driver) error

	// UpdateDriverProfile заменяет анкетные поля водителя, СОХРАНЯЯ
	// существующий список выданных вещей
	UpdateDriverProfile(ctx context.Context, vehicleID uuid.UUID, driver *domain.Driver) error

	// RemoveDriver открепляет водителя от машины
	RemoveDriver(ctx context.Context, vehicleID uuid.UUID) error

	// AddDriverItem добавляет выданную вещь; без закрепленного водителя
	// возвращает ErrNoDriverAssigned
	AddDriverItem(ctx context.Context, vehicleID uuid.UUID, item domain.DriverItem) error

	// UpdateDriverItem заменяет элемент списка с данным локальным id
	UpdateDriverItem(ctx context.Context, vehicleID uuid.UUID, itemID string, item domain.DriverItem) error

	// RemoveDriverItem удаляет элемент списка с данным локальным id
	RemoveDriverItem(ctx context.Context, vehicleID uuid.UUID, itemID string) error

	// AddTyre добавляет колесо в список tyres
	AddTyre(ctx context.Context, vehicleID uuid.UUID, tyre domain.Tyre) error

	// UpdateTyre заменяет колесо с данным локальным id
	UpdateTyre(ctx context.Context, vehicleID uuid.UUID, tyreID string, tyre domain.Tyre) error

	// RemoveTyre удаляет колесо с данным локальным id
	RemoveTyre(ctx context.Context, vehicleID uuid.UUID, tyreID string) error
}

// RepairRepository определяет методы для работы с ремонтами
type RepairRepository interface {
	// Create создает новую запись о ремонте
	Create(ctx context.Context, repair *domain.Repair) error

	// GetByID возвращает ремонт по ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error)

	// GetByVehicleID возвращает все ремонты машины
	GetByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.Repair, error)

	// GetByOwnerID возвращает все ремонты пользователя
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Repair, error)

	// Update обновляет данные ремонта
	Update(ctx context.Context, repair *domain.Repair) error

	// Delete удаляет ремонт
	Delete(ctx context.Context, id uuid.UUID) error
}

// SignatureRepository определяет методы для работы с подписями
type SignatureRepository interface {
	// GetByOwnerID возвращает подпись пользователя
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Signature, error)

	// Upsert создает подпись либо обновляет существующую
	// (не больше одной на пользователя)
	Upsert(ctx context.Context, signature *domain.Signature) error

	// DeleteByOwnerID удаляет подпись пользователя
	DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error
}

// RefreshTokenRepository определяет методы для работы с refresh токенами
type RefreshTokenRepository interface {
	// Create сохраняет новый refresh token
	Create(ctx context.Context, token *domain.RefreshToken) error

	// GetByTokenHash возвращает refresh token по хешу
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)

	// Revoke отзывает refresh token
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeAllUserTokens отзывает все токены пользователя
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired удаляет истекшие токены
	DeleteExpired(ctx context.Context) error
}
