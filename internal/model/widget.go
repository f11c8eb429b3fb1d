package model

import "github.com/passforge/passforge-go/internal/crypto"

// LengthRequest moves the length slider.
type LengthRequest struct {
	Length *int `json:"length" validate:"required"`
}

// WidgetResponse is the view of the widget state sent to the page.
type WidgetResponse struct {
	Password  string           `json:"password"`
	Length    int              `json:"length"`
	MinLength int              `json:"min_length"`
	MaxLength int              `json:"max_length"`
	Selection crypto.Selection `json:"selection"`
	Strength  StrengthResponse `json:"strength"`
	Copied    bool             `json:"copied"`
	Revision  uint64           `json:"revision"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
