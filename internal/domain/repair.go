package domain

import (
	"time"

	"github.com/google/uuid"
)

// Repair - запись о ремонте. Самостоятельная сущность, ссылается на
// машину по VehicleID. OwnerID проставляется при создании из владеющей
// машины, чтобы проверка владения сверялась с сохраненным владельцем.
type Repair struct {
	ID           uuid.UUID `json:"id"`
	VehicleID    uuid.UUID `json:"vehicle_id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	RepairDate   string    `json:"repair_date"`
	Amount       float64   `json:"amount"`
	ToolName     string    `json:"tool_name"`
	ToolImageURL string    `json:"tool_image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate проверяет корректность данных ремонта
func (r *Repair) Validate() error {
	if r.VehicleID == uuid.Nil || r.OwnerID == uuid.Nil {
		return ErrInvalidRepairData
	}
	if r.RepairDate == "" {
		return ErrInvalidRepairData
	}
	if r.Amount < 0 {
		return ErrInvalidRepairData
	}
	if r.ToolName == "" {
		return ErrInvalidRepairData
	}
	return nil
}
