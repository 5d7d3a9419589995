package http

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/timeentry"
)

var (
	reYearMonth = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	reSlug      = regexp.MustCompile(`^[a-z_]+$`)
	rePhone     = regexp.MustCompile(`^[0-9\s()+\-]+$`)
)

// Validator envuelve validator/v10 con las reglas propias de la API.
type Validator struct {
	v *validator.Validate
}

// NewValidator registra tags personalizados y usa el nombre JSON (o query) del campo en los errores.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	// Montos: decimal.Decimal se valida como número.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		return reYearMonth.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ledger.ParseDate(fl.Field().String(), nil)
		return err == nil
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return timeentry.ValidClock(fl.Field().String())
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return reSlug.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return rePhone.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return validPersonName(fl.Field().String())
	})

	return &Validator{v: v}
}

// Struct valida s y devuelve *domain.ValidationError con los problemas por campo.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Invalid("body", "estructura inválida")
	}
	out := domain.NewValidationError()
	for _, fe := range verrs {
		out.Add(fieldPath(fe.Namespace()), issue(fe))
	}
	return out
}

// fieldPath quita el nombre del struct raíz y los structs embebidos (nombres Go en mayúscula).
// "CreateEmployeeRequest.ShiftSettingsInput.lunchValue" → "lunchValue";
// "UpdateShiftConfigRequest.configs[0].value" → "configs[0].value".
func fieldPath(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	kept := parts[:0]
	for _, p := range parts {
		if p != "" && unicode.IsUpper(rune(p[0])) && len(parts) > 1 {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return ns
	}
	return strings.Join(kept, ".")
}

func issue(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "min":
		if fe.Kind() == reflect.String {
			return "debe tener al menos " + fe.Param() + " caracteres"
		}
		return "debe ser mayor o igual a " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "debe tener como máximo " + fe.Param() + " caracteres"
		}
		return "debe ser menor o igual a " + fe.Param()
	case "gte":
		return "debe ser mayor o igual a " + fe.Param()
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "email":
		return "email inválido"
	case "url":
		return "URL inválida"
	case "yearmonth":
		return "formato esperado YYYY-MM"
	case "isodate":
		return "fecha inválida"
	case "clock":
		return "formato esperado HH:MM"
	case "slug":
		return "solo letras minúsculas y guion bajo"
	case "phone":
		return "teléfono inválido"
	case "personname":
		return "solo letras, espacios, apóstrofos y guiones"
	default:
		return "valor inválido (" + fe.Tag() + ")"
	}
}

func validPersonName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '\'' || r == '-' || r == '.' {
			continue
		}
		return false
	}
	return true
}
