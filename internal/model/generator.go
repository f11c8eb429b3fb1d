package model

import "github.com/passforge/passforge-go/internal/crypto"

// GenerateRequest represents a password generation request.
// Pointer fields allow distinguishing between missing (nil -> default) and explicit values.
type GenerateRequest struct {
	Length    *int  `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`
	Count     int   `json:"count" validate:"omitempty,min=1,max=50"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
}

// BatchResponse holds several passwords generated from one request.
type BatchResponse struct {
	Passwords []GenerateResponse `json:"passwords"`
}

// StrengthRequest asks for the strength of an arbitrary password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse describes the heuristic score of a password and its meter rendering.
// Estimate is only filled by the strength endpoint.
type StrengthResponse struct {
	Score    int              `json:"score"`
	Rating   crypto.Rating    `json:"rating"`
	Color    string           `json:"color"`
	Segments []bool           `json:"segments"`
	Estimate *crypto.Estimate `json:"estimate,omitempty"`
}
