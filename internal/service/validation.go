package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"fourdx-backend/internal/database/models"
	apperrors "fourdx-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validate runs struct validation and converts the first failure into an
// apperrors.ValidationError naming the offending JSON field.
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	return apperrors.NewValidationError(jsonFieldName(req, fe), describe(fe))
}

// jsonFieldName returns the json tag of the failing field.
func jsonFieldName(req interface{}, fe validator.FieldError) string {
	t := reflect.TypeOf(req)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(fe.StructField()); ok {
		if name := strings.Split(f.Tag.Get("json"), ",")[0]; name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(fe.Field())
}

// validateFrequency rejects values outside models.Frequencies.
func validateFrequency(f models.Frequency) error {
	if f.IsValid() {
		return nil
	}
	names := make([]string, 0, len(models.Frequencies()))
	for _, v := range models.Frequencies() {
		names = append(names, string(v))
	}
	return apperrors.NewValidationError("frequency", "must be one of: "+strings.Join(names, " "))
}

// validateCompletion rejects anything but YES, NO or the empty answer.
func validateCompletion(c models.Completion) error {
	if c.IsValid() {
		return nil
	}
	return apperrors.NewValidationError("completed", fmt.Sprintf("must be one of: %s %s", models.CompletionYes, models.CompletionNo))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
