package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"aradamart/internal/domain"
)

var (
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 _'\\.-]{1,50}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reSlug  = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)
)

// MinPassword is the shortest accepted password.
const MinPassword = 6

// MaxQuery is the longest accepted search query after trimming.
const MaxQuery = 50

var v = newValidator()

func newValidator() *validator.Validate {
	vd := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so messages match the request body.
	vd.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	// Lets numeric tags such as gte=0 apply to prices.
	vd.RegisterCustomTypeFunc(func(f reflect.Value) any {
		d, ok := f.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		fl, _ := d.Float64()
		return fl
	}, decimal.Decimal{})
	_ = vd.RegisterValidation("mail", func(fl validator.FieldLevel) bool {
		return reEmail.MatchString(fl.Field().String())
	})
	_ = vd.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return domain.ValidRole(fl.Field().String())
	})
	return vd
}

// Error is a request validation failure on one field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Struct validates a request DTO and returns the first failure as *Error.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	return &Error{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return f + " is required"
	case "mail":
		return "Please enter a valid email"
	case "role":
		return "role must be admin or user"
	case "min":
		if f == "password" {
			return fmt.Sprintf("Password must be at least %d characters", MinPassword)
		}
		return fmt.Sprintf("%s must be at least %s characters", f, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", f, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be a number not less than %s", f, fe.Param())
	case "eqfield":
		return "Passwords do not match"
	case "ne":
		return fmt.Sprintf("%s must not be %s", f, fe.Param())
	}
	return f + " is invalid"
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Q validates a search query: trims, enforces allowed characters and max
// length. An empty query is valid and clears the search; an overlong one is
// rejected, never cut down.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	if len(s) > MaxQuery {
		return "", false
	}
	return s, reQ.MatchString(s)
}

// ID validates a simple resource identifier (record or account ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Category validates a category slug; empty clears the selection.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s == "" || reSlug.MatchString(s)
}
