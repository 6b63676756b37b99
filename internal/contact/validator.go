package contact

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9 ()\-]{6,}$`)

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// newValidator builds a validator whose "project" rule accepts only the
// given project names.
func newValidator(projects []string) *validator.Validate {
	validate := validator.New()

	validate.RegisterValidation("phone", validatePhone)
	validate.RegisterValidation("project", func(fl validator.FieldLevel) bool {
		return slices.Contains(projects, fl.Field().String())
	})
	return validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned by Submit when an inquiry fails validation.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	fields := make([]string, len(v))
	for i, e := range v {
		fields[i] = e.Field
	}
	return "invalid inquiry: " + strings.Join(fields, ", ")
}

// Field returns the message for field, or "" when the field is valid.
func (v ValidationErrors) Field(field string) string {
	for _, e := range v {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func validateStruct(validate *validator.Validate, s any) ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors ValidationErrors
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "phone":
			message = fmt.Sprintf("%s must be a valid phone number", field)
		case "project":
			message = fmt.Sprintf("%s must be one of the services we offer", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		errors = append(errors, ValidationError{
			Field:   fieldName,
			Message: message,
		})
	}

	return errors
}
