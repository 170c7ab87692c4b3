package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/ether/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used by the
// config package. Field names are reported using their yaml keys.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("relpath", func(fl validator.FieldLevel) bool {
			return isProjectPath(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// isProjectPath accepts paths that stay inside the project once cleaned.
// Absolute paths are allowed so output can be sent elsewhere explicitly.
func isProjectPath(path string) bool {
	if strings.TrimSpace(path) == "" || strings.ContainsRune(path, '\x00') {
		return false
	}
	if filepath.IsAbs(path) {
		return true
	}
	cleaned := filepath.Clean(path)
	return cleaned != ".." && !strings.HasPrefix(cleaned, ".."+string(filepath.Separator))
}

// ValidateConfig checks cfg against its struct tags.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into ValidationErrors
// naming the first offending key.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return apperrors.NewValidationError(fe.Field(), describe(fe), err)
	}
	return apperrors.NewValidationError("config", err.Error(), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "relpath":
		return fmt.Sprintf("%q must not escape the project directory", fe.Value())
	case "nefield":
		return "must differ from base_dir"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min", "max":
		return fmt.Sprintf("%v is out of range (%s %s)", fe.Value(), fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
