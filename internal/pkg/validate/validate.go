package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Единый модуль валидации запросов
// Ограничения полей описаны тегами на request-структурах usecase-слоя,
// хранилище доверяет уже провалидированной записи

var v = newValidator()

func newValidator() *validator.Validate {
	vd := validator.New(validator.WithRequiredStructEnabled())

	// В сообщениях используем имя поля из json-тега
	vd.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return vd
}

// Struct валидирует request-структуру
// Возвращает *domain.ValidationError с сообщением по первому нарушенному полю
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return domain.NewValidationError("", "invalid request body")
	}

	first := errs[0]
	return domain.NewValidationError(first.Field(), message(first))
}

// message строит человекочитаемое сообщение об ошибке для поля
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%q length must be %s characters long", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", fe.Field())
	case "gte":
		return fmt.Sprintf("%q must be larger than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%q is invalid", fe.Field())
	}
}
