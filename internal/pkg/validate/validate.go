package validate

import (
	"github.com/go-playground/validator/v10"
)

// Один экземпляр валидатора на процесс - он кэширует метаданные структур
var v = validator.New(validator.WithRequiredStructEnabled())

// Struct валидирует структуру по `validate` тегам
func Struct(s interface{}) error {
	return v.Struct(s)
}
