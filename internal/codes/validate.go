package codes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "numeric" also accepts signs and decimals, codes are plain digit strings.
	if err := v.RegisterValidation("digits", isDigits); err != nil {
		panic(fmt.Sprintf("register digits validation: %v", err))
	}
	return v
}

func isDigits(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s != "" && strings.IndexFunc(s, func(r rune) bool { return !isDigit(r) }) == -1
}

// LengthError reports a code outside the accepted length window.
// It matches ErrCodeLength with errors.Is.
type LengthError struct {
	Min, Max int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("code must have between %d and %d digits", e.Min, e.Max)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrCodeLength
}

// validateCode checks code against the digit and length rules.
func validateCode(code string, min, max int) error {
	err := validate.Var(code, fmt.Sprintf("required,digits,min=%d,max=%d", min, max))
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate code: %w", err)
	}

	switch verrs[0].Tag() {
	case "required":
		return ErrEmptyCode
	case "digits":
		return ErrNonNumeric
	case "min", "max":
		return &LengthError{Min: min, Max: max}
	default:
		return fmt.Errorf("code %s", verrs[0].Tag())
	}
}

// ValidateListParams checks paging bounds and the status filter.
func ValidateListParams(p ListParams) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate list params: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, strings.ToLower(fe.Field())+" "+fe.Tag())
	}
	return fmt.Errorf("invalid list params: %s", strings.Join(msgs, "; "))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
