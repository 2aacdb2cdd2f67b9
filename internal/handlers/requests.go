package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// SnippetPreferenceRequest is sent by a snippet when it attaches and on
// every later theme change.
type SnippetPreferenceRequest struct {
	ID   string `param:"id" validate:"required,uuid"`
	Dark bool   `form:"dark"`
}

// ThemeRequest selects the site theme explicitly, or "system" to follow the
// browser again.
type ThemeRequest struct {
	Theme string `form:"theme" validate:"required,oneof=light dark system"`
}
