package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldViolation is one failed validation rule.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func formatFieldName(s string) string {
	// department_id -> Department Id
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a binding error into a 400. The message names the
// first offending field, details list every violation.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		appErr := New(CodeValidation, "Invalid input", 400)
		if err != nil {
			return appErr.WithDetails(err.Error())
		}
		return appErr
	}

	violations := make([]FieldViolation, 0, len(errs))
	for _, fe := range errs {
		violations = append(violations, FieldViolation{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	first := errs[0]
	humanReadableField := formatFieldName(first.Field())

	var base *AppError
	switch first.Tag() {
	case "required":
		base = RequiredField(humanReadableField)
	default:
		base = InvalidField(humanReadableField)
	}

	return base.WithDetails(violations)
}
