package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-system/internal/application/dto"
)

// Validator valida DTOs con las etiquetas `validate` y produce mensajes por campo.
type Validator struct {
	v *validator.Validate
}

// NewValidator usa el nombre JSON del campo en los mensajes y compara decimal.Decimal como float64.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return &Validator{v: v}
}

// Struct devuelve nil o un mapa campo → mensaje.
func (val *Validator) Struct(s interface{}) map[string]string {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "min":
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("no puede superar %s caracteres", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual que %s", fe.Param())
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	}
	return "valor inválido"
}

// parseAndValidate BodyParser + validación; si falla ya escribió la respuesta 400 y devuelve false.
func (val *Validator) parseAndValidate(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, badBody(c)
	}
	if errs := val.Struct(out); errs != nil {
		env := dto.Fail("VALIDATION", "Datos inválidos")
		env.Errors = errs
		return false, c.Status(fiber.StatusBadRequest).JSON(env)
	}
	return true, nil
}
