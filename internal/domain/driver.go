package domain

import (
	"encoding/json"
	"strconv"
)

// Driver - водитель, встроенный в документ машины (1:1, без собственного id).
// Удаляется вместе с машиной либо явной операцией открепления.
type Driver struct {
	Name          string       `json:"name"`
	PhoneNumber   string       `json:"phone_number"`
	AadharNumber  string       `json:"aadhar_number,omitempty"`
	PanNumber     string       `json:"pan_number,omitempty"`
	LicenseNumber string       `json:"license_number,omitempty"`
	AadharImage   string       `json:"aadhar_image,omitempty"`
	PanCardImage  string       `json:"pan_card_image,omitempty"`
	LicenseImage  string       `json:"license_image,omitempty"`
	PhotoImage    string       `json:"photo_image,omitempty"`
	ItemsGiven    []DriverItem `json:"items_given"`
}

// Validate проверяет корректность данных водителя
func (d *Driver) Validate() error {
	if d.Name == "" {
		return ErrInvalidDriverData
	}
	if len(d.PhoneNumber) < 10 {
		return ErrInvalidDriverData
	}
	return nil
}

// FindItem возвращает индекс выданной вещи с данным локальным id, либо -1
func (d *Driver) FindItem(itemID string) int {
	for i := range d.ItemsGiven {
		if d.ItemsGiven[i].ID == itemID {
			return i
		}
	}
	return -1
}

// DriverItem - вещь, выданная водителю (каска, жилет и т.п.).
// Живет внутри списка items_given; ID генерируется локально и
// уникален в пределах списка.
type DriverItem struct {
	ID        string   `json:"id"`
	ItemName  string   `json:"item_name"`
	Quantity  Quantity `json:"quantity"`
	GivenDate string   `json:"given_date"`
	ItemImage string   `json:"item_image,omitempty"`
}

// Validate проверяет корректность данных выданной вещи
func (it *DriverItem) Validate() error {
	if it.ItemName == "" {
		return ErrInvalidItemData
	}
	if it.GivenDate == "" {
		return ErrInvalidItemData
	}
	if !it.Quantity.Valid() {
		return ErrInvalidQuantity
	}
	return nil
}

// QuantityOK - состояние "выдано/в порядке" для вещей,
// у которых нет числового количества.
const QuantityOK Quantity = "OK"

// Quantity - количество выданной вещи. Исторически хранится в двух
// кодировках: неотрицательное число либо двухпозиционное "OK"/"0".
// Принимаем из JSON и число, и строку.
type Quantity string

func (q *Quantity) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*q = Quantity(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*q = Quantity(n.String())
		return nil
	}
	return ErrInvalidQuantity
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	// Числовые значения отдаем числом в канонической форме:
	// "007" и "+1" - валидные для Atoi, но не валидный JSON
	if n, err := strconv.Atoi(string(q)); err == nil && q != "" {
		return []byte(strconv.Itoa(n)), nil
	}
	return json.Marshal(string(q))
}

// Valid сообщает, является ли значение допустимым:
// "OK" либо неотрицательное целое.
func (q Quantity) Valid() bool {
	if q == QuantityOK {
		return true
	}
	n, err := strconv.Atoi(string(q))
	return err == nil && n >= 0
}

// IsOK сообщает, что вещь выдана в двухпозиционной кодировке
func (q Quantity) IsOK() bool {
	return q == QuantityOK
}
