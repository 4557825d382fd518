package domain

import (
	"time"

	"github.com/google/uuid"
)

// Signature - подпись владельца для печатных форм.
// У пользователя не больше одной подписи (UNIQUE по owner_id):
// повторное сохранение обновляет существующую запись.
type Signature struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"`
	SignatureURL string    `json:"signature_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate проверяет корректность данных подписи
func (s *Signature) Validate() error {
	if s.OwnerID == uuid.Nil {
		return ErrInvalidSignatureData
	}
	if s.Name == "" || s.SignatureURL == "" {
		return ErrInvalidSignatureData
	}
	return nil
}
