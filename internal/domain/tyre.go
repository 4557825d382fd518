package domain

// Tyre - установленное колесо, встроенное в список tyres машины.
// ID генерируется локально при добавлении.
type Tyre struct {
	ID            string `json:"id"`
	TyreNumber    string `json:"tyre_number"`
	Description   string `json:"description"`
	InstalledDate string `json:"installed_date"`
}

// Validate проверяет корректность данных колеса
func (t *Tyre) Validate() error {
	if len(t.TyreNumber) < 2 {
		return ErrInvalidTyreData
	}
	if t.Description == "" {
		return ErrInvalidTyreData
	}
	if t.InstalledDate == "" {
		return ErrInvalidTyreData
	}
	return nil
}
