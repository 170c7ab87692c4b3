package validation

import (
	"strings"

	apperrors "github.com/alexisbeaulieu97/ether/pkg/errors"
)

// Code classifies a validation issue.
type Code string

const (
	CodeMissingField     Code = "MISSING_FIELD"
	CodeInvalidColor     Code = "INVALID_COLOR"
	CodeInvalidThemeKind Code = "INVALID_THEME_KIND"
	CodeStructural       Code = "STRUCTURAL_ERROR"
)

// Issue is a single problem found by a validator.
type Issue struct {
	Code    Code
	Field   string
	Message string
}

// Report is the outcome of a validation pass. Validators always return a
// Report and never fail; the caller decides how severe the issues are.
type Report struct {
	Valid  bool
	Issues []Issue
}

func newReport(issues []Issue) Report {
	return Report{Valid: len(issues) == 0, Issues: issues}
}

// Messages returns the human-readable issue messages in order.
func (r Report) Messages() []string {
	messages := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		messages = append(messages, issue.Message)
	}
	return messages
}

// Count returns how many issues carry code.
func (r Report) Count(code Code) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Code == code {
			n++
		}
	}
	return n
}

// Err converts an invalid report into a *errors.ValidationError labelled
// with subject. A valid report yields nil.
func (r Report) Err(subject string) error {
	if r.Valid {
		return nil
	}
	return apperrors.NewValidationError(subject, strings.Join(r.Messages(), "\n"), nil)
}
