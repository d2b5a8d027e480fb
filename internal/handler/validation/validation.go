package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var decimalPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// FieldError is one rejected request field, reported in the error detail.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Register adds the custom rules to gin's validator. Call once at startup.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("rfc3339", validateRFC3339); err != nil {
		return fmt.Errorf("register rfc3339: %w", err)
	}
	if err := v.RegisterValidation("decimal2", validateDecimal2); err != nil {
		return fmt.Errorf("register decimal2: %w", err)
	}
	return nil
}

// rfc3339 requires an explicit offset; naive timestamps are ambiguous.
func validateRFC3339(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.RFC3339, fl.Field().String())
	return err == nil
}

func validateDecimal2(fl validator.FieldLevel) bool {
	return decimalPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// Describe flattens binding errors into per-field messages. Non-validation
// errors (malformed JSON) yield nil.
func Describe(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: jsonName(fe), Message: message(fe)})
	}
	return out
}

func jsonName(fe validator.FieldError) string {
	return toSnake(fe.Field())
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "rfc3339":
		return "must be an RFC 3339 timestamp with an explicit offset"
	case "decimal2":
		return "must be a decimal with at most two fractional digits"
	case "uuid":
		return "must be a UUID"
	default:
		return "is invalid"
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
