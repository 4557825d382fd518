package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vehicle - транспортное средство автопарка.
// ВАЖНО: машина ОБЯЗАТЕЛЬНО привязана к владельцу (OwnerID NOT NULL);
// видеть и менять её может только владелец.
type Vehicle struct {
	ID                  uuid.UUID `json:"id"`
	OwnerID             uuid.UUID `json:"owner_id"` // ОБЯЗАТЕЛЬНАЯ связь с User
	Name                string    `json:"name"`
	OwnerName           string    `json:"owner_name"`     // Отображаемое имя владельца
	VehicleNumber       string    `json:"vehicle_number"` // Гос. номер
	ImageURL            string    `json:"image_url,omitempty"`
	PollutionCertURL    string    `json:"pollution_cert_url,omitempty"`
	RegistrationCertURL string    `json:"registration_cert_url,omitempty"`
	Driver              *Driver   `json:"driver,omitempty"` // Встроенный документ, 1:1
	Tyres               []Tyre    `json:"tyres"`            // Встроенный список
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NormalizeVehicleNumber нормализует гос. номер (убирает пробелы, приводит к верхнему регистру)
func NormalizeVehicleNumber(number string) string {
	return strings.ToUpper(strings.ReplaceAll(number, " ", ""))
}

// Validate проверяет корректность данных машины
func (v *Vehicle) Validate() error {
	if v.OwnerID == uuid.Nil {
		return ErrInvalidVehicleData
	}
	if v.Name == "" {
		return ErrInvalidVehicleData
	}
	if v.VehicleNumber == "" {
		return ErrInvalidVehicleNumber
	}
	// Нормализуем номер
	v.VehicleNumber = NormalizeVehicleNumber(v.VehicleNumber)

	if len(v.VehicleNumber) < 5 || len(v.VehicleNumber) > 20 {
		return ErrInvalidVehicleNumber
	}
	return nil
}

// FindTyre возвращает индекс колеса с данным локальным id, либо -1
func (v *Vehicle) FindTyre(tyreID string) int {
	for i := range v.Tyres {
		if v.Tyres[i].ID == tyreID {
			return i
		}
	}
	return -1
}
