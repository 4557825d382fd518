package vehicle

import (
	"context"
	"fmt"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/pkg/logger"
	"github.com/fleettrack/fleettrack/internal/repository"
	"github.com/google/uuid"
)

// CreateVehicleRequest - запрос на создание машины
type CreateVehicleRequest struct {
	Name                string `json:"name" validate:"required"`
	OwnerName           string `json:"owner_name" validate:"required"`
	VehicleNumber       string `json:"vehicle_number" validate:"required"`
	ImageURL            string `json:"image_url,omitempty"`
	PollutionCertURL    string `json:"pollution_cert_url,omitempty"`
	RegistrationCertURL string `json:"registration_cert_url,omitempty"`
}

// UpdateVehicleRequest - запрос на частичное обновление машины.
// nil-поля не трогаются, присланные - перезаписываются.
type UpdateVehicleRequest struct {
	Name                *string `json:"name,omitempty"`
	OwnerName           *string `json:"owner_name,omitempty"`
	VehicleNumber       *string `json:"vehicle_number,omitempty"`
	ImageURL            *string `json:"image_url,omitempty"`
	PollutionCertURL    *string `json:"pollution_cert_url,omitempty"`
	RegistrationCertURL *string `json:"registration_cert_url,omitempty"`
}

// DriverRequest - анкета водителя (закрепление и обновление)
type DriverRequest struct {
	Name          string `json:"name" validate:"required"`
	PhoneNumber   string `json:"phone_number" validate:"required,min=10"`
	AadharNumber  string `json:"aadhar_number,omitempty"`
	PanNumber     string `json:"pan_number,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	AadharImage   string `json:"aadhar_image,omitempty"`
	PanCardImage  string `json:"pan_card_image,omitempty"`
	LicenseImage  string `json:"license_image,omitempty"`
	PhotoImage    string `json:"photo_image,omitempty"`
}

// DriverItemRequest - выданная водителю вещь
type DriverItemRequest struct {
	ItemName  string          `json:"item_name" validate:"required"`
	Quantity  domain.Quantity `json:"quantity" validate:"required"`
	GivenDate string          `json:"given_date" validate:"required"`
	ItemImage string          `json:"item_image,omitempty"`
}

// TyreRequest - установленное колесо
type TyreRequest struct {
	TyreNumber    string `json:"tyre_number" validate:"required,min=2"`
	Description   string `json:"description" validate:"required"`
	InstalledDate string `json:"installed_date" validate:"required"`
}

// Service содержит бизнес-логику работы с машинами и их встроенными
// документами (водитель, выданные вещи, колеса).
//
// Каждая операция принимает callerID - идентификатор аутентифицированного
// пользователя. Идентификатор нигде не подменяется и сверяется с
// владельцем машины: чужая машина дает ErrForbidden независимо от того,
// существует она или нет.
type Service struct {
	vehicleRepo repository.VehicleRepository
	logger      logger.Logger
}

// NewService создает новый экземпляр VehicleService
func NewService(vehicleRepo repository.VehicleRepository, logger logger.Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// CreateVehicle создает новую машину, принадлежащую callerID
func (s *Service) CreateVehicle(ctx context.Context, callerID uuid.UUID, req *CreateVehicleRequest) (*domain.Vehicle, error) {
	s.logger.Info("Creating new vehicle", map[string]interface{}{
		"owner_id":       callerID,
		"vehicle_number": req.VehicleNumber,
	})

	vehicle := &domain.Vehicle{
		OwnerID:             callerID,
		Name:                req.Name,
		OwnerName:           req.OwnerName,
		VehicleNumber:       req.VehicleNumber,
		ImageURL:            req.ImageURL,
		PollutionCertURL:    req.PollutionCertURL,
		RegistrationCertURL: req.RegistrationCertURL,
		Tyres:               []domain.Tyre{},
	}

	if err := vehicle.Validate(); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		s.logger.Error("Failed to create vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.logger.Info("Vehicle created successfully", map[string]interface{}{
		"vehicle_id": vehicle.ID,
	})

	return vehicle, nil
}

// GetVehicle возвращает машину callerID по ID
func (s *Service) GetVehicle(ctx context.Context, callerID, vehicleID uuid.UUID) (*domain.Vehicle, error) {
	return s.getOwnedVehicle(ctx, callerID, vehicleID)
}

// ListVehicles возвращает все машины callerID
func (s *Service) ListVehicles(ctx context.Context, callerID uuid.UUID) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.GetByOwnerID(ctx, callerID)
}

// UpdateVehicle частично обновляет машину callerID
func (s *Service) UpdateVehicle(ctx context.Context, callerID, vehicleID uuid.UUID, req *UpdateVehicleRequest) (*domain.Vehicle, error) {
	vehicle, err := s.getOwnedVehicle(ctx, callerID, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vehicle.Name = *req.Name
	}
	if req.OwnerName != nil {
		vehicle.OwnerName = *req.OwnerName
	}
	if req.VehicleNumber != nil {
		vehicle.VehicleNumber = *req.VehicleNumber
	}
	if req.ImageURL != nil {
		vehicle.ImageURL = *req.ImageURL
	}
	if req.PollutionCertURL != nil {
		vehicle.PollutionCertURL = *req.PollutionCertURL
	}
	if req.RegistrationCertURL != nil {
		vehicle.RegistrationCertURL = *req.RegistrationCertURL
	}

	if err := vehicle.Validate(); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// DeleteVehicle удаляет машину callerID вместе со всеми её ремонтами
func (s *Service) DeleteVehicle(ctx context.Context, callerID, vehicleID uuid.UUID) error {
	if _, err := s.getOwnedVehicle(ctx, callerID, vehicleID); err != nil {
		return err
	}

	if err := s.vehicleRepo.Delete(ctx, vehicleID); err != nil {
		return err
	}

	s.logger.Info("Vehicle deleted", map[string]interface{}{
		"vehicle_id": vehicleID,
		"owner_id":   callerID,
	})

	return nil
}

// AssignDriver закрепляет водителя за машиной callerID.
// Прежний водитель (если был) замещается, список выданных вещей
// начинается пустым.
func (s *Service) AssignDriver(ctx context.Context, callerID, vehicleID uuid.UUID, req *DriverRequest) (*domain.Vehicle, error) {
	if _, err := s.getOwnedVehicle(ctx, callerID, vehicleID); err != nil {
		return nil, err
	}

	driver := driverFromRequest(req)
	if err := driver.Validate(); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.AssignDriver(ctx, vehicleID, driver); err != nil {
		return nil, err
	}

	s.logger.Info("Driver assigned", map[string]interface{}{
		"vehicle_id": vehicleID,
	})

	return s.vehicleRepo.GetByID(ctx, vehicleID)
}

// UpdateDriverProfile обновляет анкету водителя, не трогая выданные вещи
func (s *Service) UpdateDriverProfile(ctx context.Context, callerID, vehicleID uuid.UUID, req *DriverRequest) (*domain.Vehicle, error) {
	vehicle, err := s.getOwnedVehicle(ctx, callerID, vehicleID)
	if err != nil {
		return nil, err
	}

	if vehicle.Driver == nil {
		return nil, domain.ErrNoDriverAssigned
	}

	driver := driverFromRequest(req)
	if err := driver.Validate(); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.UpdateDriverProfile(ctx, vehicleID, driver); err != nil {
		return nil, err
	}

	return s.vehicleRepo.GetByID(ctx, vehicleID)
}

// RemoveDriver открепляет водителя от машины callerID
func (s *Service) RemoveDriver(ctx context.Context, callerID, vehicleID uuid.UUID) error {
	vehicle, err := s.getOwnedVehicle(ctx, callerID, vehicleID)
	if err != nil {
		return err
	}

	if vehicle.Driver == nil {
		return domain.ErrNoDriverAssigned
	}

	return s.vehicleRepo.RemoveDriver(ctx, vehicleID)
}

// AddDriverItem добавляет выданную вещь водителю машины callerID
func (s *Service) AddDriverItem(ctx context.Context, callerID, vehicleID uuid.UUID, req *DriverItemRequest) (*domain.Vehicle, error) {
	if _, err := s.getOwnedVehicle(ctx, callerID, vehicleID); err != nil {
		return nil, err
	}

	item := domain.DriverItem{
		ID:        uuid.New().String(),
		ItemName:  req.ItemName,
		Quantity:  req.Quantity,
		GivenDate: req.GivenDate,
		ItemImage: req.ItemImage,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.AddDriverItem(ctx, vehicleID, item); err != nil {
		return nil, err
	}

	return s.vehicleRepo.GetByID(ctx, vehicleID)
}

// UpdateDriverItem заменяет выданную вещь с данным локальным id
func (s *Service) UpdateDriverItem(ctx context.Context, callerID, vehicleID uuid.UUID, itemID string, req *DriverItemRequest) (*domain.Vehicle, error) {
	if _, err := s.getOwnedVehicle(ctx, callerID, vehicleID); err != nil {
		return nil, err
	}

	item := domain.DriverItem{
		ID:        itemID,
		ItemName:  req.ItemName,
		Quantity:  req.Quantity,
		GivenDate: req.GivenDate,
		ItemImage: req.ItemImage,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.UpdateDriverItem(ctx, vehicleID, itemID, item); err != nil {
		return nil, err
	}

	return s.vehicleRepo.GetByID(ctx, vehicleID)
}

// RemoveDriverItem удаляет выданную вещь с данным локальным id
func (s *Service) RemoveDriverItem(ctx context.Context, callerID, vehicleID uuid.UUID, itemID string) (*domain.Vehicle, error) {
	if _, err := s.getOwnedVehicle(ctx, callerID, vehicleID); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.RemoveDriverItem(ctx, vehicleID, itemID); err != nil {
		return nil, err
	}

	return s.vehicleRepo.GetByID(ctx, vehicleID)
}

// AddTyre добавляет колесо машине callerID
func (s *Service) AddTyre(ctx context.Context, callerID, vehicleID uuid.UUID, req *TyreRequest) (*domain.Vehicle, error) {
	if _, err := s.getOwnedVehicle(ctx, callerID, vehicleID); err != nil {
		return nil, err
	}

	tyre := domain.Tyre{
		ID:            uuid.New().String(),
		TyreNumber:    req.TyreNumber,
		Description:   req.Description,
		InstalledDate: req.InstalledDate,
	}
	if err := tyre.Validate(); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.AddTyre(ctx, vehicleID, tyre); err != nil {
		return nil, err
	}

	return s.vehicleRepo.GetByID(ctx, vehicleID)
}

// UpdateTyre заменяет колесо с данным локальным id
func (s *Service) UpdateTyre(ctx context.Context, callerID, vehicleID uuid.UUID, tyreID string, req *TyreRequest) (*domain.Vehicle, error) {
	if _, err := s.getOwnedVehicle(ctx, callerID, vehicleID); err != nil {
		return nil, err
	}

	tyre := domain.Tyre{
		ID:            tyreID,
		TyreNumber:    req.TyreNumber,
		Description:   req.Description,
		InstalledDate: req.InstalledDate,
	}
	if err := tyre.Validate(); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.UpdateTyre(ctx, vehicleID, tyreID, tyre); err != nil {
		return nil, err
	}

	return s.vehicleRepo.GetByID(ctx, vehicleID)
}

// RemoveTyre удаляет колесо с данным локальным id
func (s *Service) RemoveTyre(ctx context.Context, callerID, vehicleID uuid.UUID, tyreID string) (*domain.Vehicle, error) {
	if _, err := s.getOwnedVehicle(ctx, callerID, vehicleID); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.RemoveTyre(ctx, vehicleID, tyreID); err != nil {
		return nil, err
	}

	return s.vehicleRepo.GetByID(ctx, vehicleID)
}

// getOwnedVehicle возвращает машину, убедившись что она принадлежит
// callerID. Порядок проверок фиксированный: сначала существование
// (ErrVehicleNotFound), потом владение (ErrForbidden).
func (s *Service) getOwnedVehicle(ctx context.Context, callerID, vehicleID uuid.UUID) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if vehicle.OwnerID != callerID {
		s.logger.Warn("Vehicle access denied", map[string]interface{}{
			"vehicle_id": vehicleID,
			"caller_id":  callerID,
		})
		return nil, domain.ErrForbidden
	}

	return vehicle, nil
}

func driverFromRequest(req *DriverRequest) *domain.Driver {
	return &domain.Driver{
		Name:          req.Name,
		PhoneNumber:   req.PhoneNumber,
		AadharNumber:  req.AadharNumber,
		PanNumber:     req.PanNumber,
		LicenseNumber: req.LicenseNumber,
		AadharImage:   req.AadharImage,
		PanCardImage:  req.PanCardImage,
		LicenseImage:  req.LicenseImage,
		PhotoImage:    req.PhotoImage,
	}
}
