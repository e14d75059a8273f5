package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError carries field-level messages for a malformed record. Unlike
// transport failures it is surfaced to the caller as-is: the local cache would
// accept the same invalid data, so there is nothing to fall back to.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

func runValidation(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s: failed on %q", fe.Field(), fe.Tag()))
	}
	return &ValidationError{Fields: fields}
}

// Validate checks the record against its field constraints and returns a
// *ValidationError describing every violation.
func (v *VehicleRecord) Validate() error {
	return runValidation(v)
}

// Validate checks a registration payload.
func (r *Registration) Validate() error {
	return runValidation(r)
}
