package cli

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// signupForm validates the interactive signup/adduser input before the
// credential service is called. The password policy itself (minimum length)
// is enforced by the service, not here.
type signupForm struct {
	Email           string `validate:"required,email"`
	Role            string `validate:"required,oneof=user admin"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// updateForm validates the interactive edituser input. Password is optional:
// empty means "keep the current one". A non-empty password must meet the
// minimum length and match the confirmation.
type updateForm struct {
	ID              string `validate:"required"`
	Email           string `validate:"required,email"`
	Role            string `validate:"required,oneof=user admin"`
	Status          string `validate:"required,oneof=active inactive"`
	Password        string `validate:"omitempty,min=6"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

// validateForm runs struct validation and returns the first failure as a
// user-facing message, or nil when the form is valid.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		return fmt.Errorf("%s", formatFieldError(fieldErrors[0]))
	}
	return err
}

// formatFieldError converts a validator error into the message the
// dashboard forms show.
func formatFieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "Email":
		return "Valid email is required."
	case "Role":
		return "Role is required."
	case "Status":
		return "Status is required."
	case "Password":
		if fe.Tag() == "min" {
			return "Password must be at least 6 characters."
		}
		return "Password is required."
	case "ConfirmPassword":
		if fe.Tag() == "eqfield" {
			return "Passwords do not match."
		}
		return "Password confirmation is required."
	case "ID":
		return "User id is required."
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
