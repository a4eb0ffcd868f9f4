package crud

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/obra-admin/internal/domain"
	"github.com/jhoicas/obra-admin/internal/domain/access"
)

// Validator valida formularios antes de cualquier petición al API.
type Validator struct {
	v *validator.Validate
}

// NewValidator registra los tipos y tags propios: decimal se compara como número
// y "role" exige un rol de la lista cerrada.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, err := access.ParseRole(fl.Field().String())
		return err == nil
	})
	return &Validator{v: v}
}

// Struct valida s. Devuelve *ValidationError si algún campo falla.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return newValidationError(verrs)
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}

// ValidationError errores de formulario por campo.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError(errs validator.ValidationErrors) *ValidationError {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", f)
	case "email":
		return fmt.Sprintf("%s debe ser un correo válido", f)
	case "min", "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", f, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s debe ser menor o igual a %s", f, fe.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", f, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", f, fe.Param())
	case "role":
		return fmt.Sprintf("%s no es un rol conocido", f)
	default:
		return fmt.Sprintf("%s no es válido", f)
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", domain.ErrValidation, strings.Join(e.sorted(), "; "))
}

// Is permite errors.Is(err, domain.ErrValidation).
func (e *ValidationError) Is(target error) bool {
	return target == domain.ErrValidation
}

// UserMessage primer mensaje de campo en orden alfabético.
func (e *ValidationError) UserMessage() string {
	msgs := e.sorted()
	if len(msgs) == 0 {
		return "Revise los datos del formulario"
	}
	return msgs[0]
}

func (e *ValidationError) sorted() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, e.Fields[k])
	}
	return out
}

// FieldErrors extrae los errores por campo, o nil si err no es de validación de formulario.
func FieldErrors(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
