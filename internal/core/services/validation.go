package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

const (
	msgFieldRequired = "This field is required"
	msgCorrectFields = "Please correct the highlighted fields"
)

// NewValidator returns a validator that reports JSON field names and knows
// the notblank, phone10 and partstatus tags. It panics if a tag cannot be registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	tags := map[string]validator.Func{
		"notblank": validators.NotBlank,
		"phone10": func(fl validator.FieldLevel) bool {
			_, ok := NormalizeContact(fl.Field().String())
			return ok
		},
		"partstatus": func(fl validator.FieldLevel) bool {
			return domain.PartStatus(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
	return v
}

// summarize picks the top-level message of a failed form. Any missing value
// reports the required-fields message; a lone failure reports its own.
func summarize(verr *domain.ValidationError) {
	for _, msg := range verr.Fields {
		if msg == msgFieldRequired {
			verr.Message = msgRequiredFields
			return
		}
	}
	if len(verr.Fields) == 1 {
		for _, msg := range verr.Fields {
			verr.Message = msg
		}
		return
	}
	verr.Message = msgCorrectFields
}

// toValidationError converts validator output into field messages.
// Errors of any other kind are returned unchanged.
func toValidationError(err error, message string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := domain.NewValidationError(message)
	for _, fe := range verrs {
		out.Add(fieldPath(fe.Namespace()), fieldMessage(fe))
	}
	return out
}

// fieldPath drops the struct name from a namespace: MaintenanceForm.parts[0].status -> parts[0].status.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return msgFieldRequired
	case "phone10":
		return "Contact number must be exactly 10 digits"
	case "partstatus":
		return "Status must be one of: " + strings.Join(domain.PartStatusOptions, ", ")
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "Must not be negative"
	case "email":
		return "Please enter a valid email address"
	}
	return "Invalid value"
}
