package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Violation — нарушение ограничения поля сущности.
type Violation = e.Violation

var (
	emailPattern = regexp.MustCompile(`^.+@.+\..+$`)

	// Глобальный валидатор, переиспользуется всеми сущностями
	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В нарушениях используем имена полей из JSON, как их видит клиент API
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if m, ok := field.Interface().(Money); ok {
			return m.Decimal
		}
		return nil
	}, Money{})

	mustRegister(v, "email_pattern", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "money_positive", func(fl validator.FieldLevel) bool {
		m, ok := moneyField(fl)
		return ok && m.IsPositive()
	})
	mustRegister(v, "money_digits", func(fl validator.FieldLevel) bool {
		m, ok := moneyField(fl)
		return ok && m.HasValidDigits()
	})

	return v
}

func moneyField(fl validator.FieldLevel) (Money, bool) {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return NewMoney(d), ok
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// violationsOf прогоняет структурную валидацию и возвращает список нарушений.
func violationsOf(entity any) []e.Violation {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []e.Violation{{Message: err.Error()}}
	}

	violations := make([]e.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, e.Violation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}

	return violations
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be null"
	case "min", "max":
		return fmt.Sprintf("size must be between %d and %s", 1, fe.Param())
	case "email_pattern":
		return "Invalid email"
	case "money_positive":
		return "The value must be greater than 0(zero)"
	case "money_digits":
		return fmt.Sprintf("The value must have a maximum of %d integer digits and %d decimals",
			moneyMaxIntegerDigits, moneyMaxFractionDigits)
	default:
		return fmt.Sprintf("failed on the '%s' constraint", fe.Tag())
	}
}

func validationError(violations []e.Violation) error {
	if len(violations) == 0 {
		return nil
	}

	return e.NewValidationError(violations)
}
