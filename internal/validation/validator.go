package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/ether/internal/color"
	"github.com/alexisbeaulieu97/ether/internal/tokens"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator. Field names
// in errors are the document keys rather than Go field names.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("themecolor", func(fl validator.FieldLevel) bool {
			return color.IsValid(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateBaseTokens checks that every required token is present, that the
// theme type is dark or light, and that every color token parses. All
// problems are collected: missing fields first, then the type, then colors.
func ValidateBaseTokens(t tokens.BaseTokens) Report {
	err := validatorInstance().Struct(t)
	if err == nil {
		return newReport(nil)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return newReport([]Issue{{Code: CodeStructural, Message: err.Error()}})
	}

	var missing, kind, colors []Issue
	for _, fe := range fieldErrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			missing = append(missing, Issue{
				Code:    CodeMissingField,
				Field:   field,
				Message: fmt.Sprintf("Missing required field: %s", field),
			})
		case "oneof":
			kind = append(kind, Issue{
				Code:    CodeInvalidThemeKind,
				Field:   field,
				Message: fmt.Sprintf("Invalid type: %v. Must be '%s' or '%s'", fe.Value(), tokens.KindDark, tokens.KindLight),
			})
		case "themecolor":
			colors = append(colors, Issue{
				Code:    CodeInvalidColor,
				Field:   field,
				Message: fmt.Sprintf("Invalid color for %s: %v", field, fe.Value()),
			})
		default:
			colors = append(colors, Issue{
				Code:    CodeStructural,
				Field:   field,
				Message: fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()),
			})
		}
	}

	issues := make([]Issue, 0, len(fieldErrs))
	issues = append(issues, missing...)
	issues = append(issues, kind...)
	issues = append(issues, colors...)
	return newReport(issues)
}
