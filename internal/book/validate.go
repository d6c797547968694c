package book

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := ParseDate(fl.Field().String())
			return err == nil
		})
		_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			_, err := ParseClock(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field string
	Rule  string
	Param string
}

func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("book: %s fails %s=%s", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("book: %s fails %s", e.Field, e.Rule)
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Message renders the failure for an end user.
func (e *ValidationError) Message() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field)
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", e.Field)
	case "isodate":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD form", e.Field)
	case "clock":
		return fmt.Sprintf("%s must be a time in HH:MM form", e.Field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field, e.Param)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field, e.Param)
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range", e.Field)
	case "alphanum":
		return fmt.Sprintf("%s must be alphanumeric", e.Field)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

// Validate checks the struct tags of an entity.
func Validate(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return &ValidationError{Field: first.Field(), Rule: first.Tag(), Param: first.Param()}
	}
	return fmt.Errorf("book: validate: %w", err)
}

// maxUnits keeps units*100 + 99 within int64.
const maxUnits = (math.MaxInt64 - 99) / 100

// ParseMoney converts a decimal amount such as "12.5" to cents.
func ParseMoney(raw string) (int64, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "$")
	if raw == "" {
		return 0, fmt.Errorf("book: empty amount: %w", ErrInvalid)
	}
	whole, frac, hasFrac := strings.Cut(raw, ".")
	if whole == "" {
		whole = "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 || units > maxUnits {
		return 0, fmt.Errorf("book: amount %q: %w", raw, ErrInvalid)
	}
	var cents int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("book: amount %q: %w", raw, ErrInvalid)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, fmt.Errorf("book: amount %q: %w", raw, ErrInvalid)
		}
	}
	return units*100 + cents, nil
}

// FormatMoney renders cents as a decimal amount.
func FormatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
