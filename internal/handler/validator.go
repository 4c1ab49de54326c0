package handler

import (
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors unpacks a validation failure into per-field tags so
// handlers can keep their original wording.
func FieldErrors(err error) validator.ValidationErrors {
	if errs, ok := err.(validator.ValidationErrors); ok {
		return errs
	}
	return nil
}
