package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

const MaxBatchSize = 50

var ErrInvalidCount = fmt.Errorf("count must be between 1 and %d", MaxBatchSize)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	maxLength int
	source    crypto.Source
	validate  *validator.Validate
}

// NewGeneratorService creates a new GeneratorService. A nil source draws from crypto/rand.
func NewGeneratorService(maxLength int, source crypto.Source) *GeneratorService {
	if source == nil {
		source = crypto.CryptoSource{}
	}
	return &GeneratorService{
		maxLength: maxLength,
		source:    source,
		validate:  validator.New(),
	}
}

// MaxLength returns the longest password the service generates.
func (s *GeneratorService) MaxLength() int {
	return s.maxLength
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	password, err := crypto.Generate(s.options(req))
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: Strength(password),
	}, nil
}

// GenerateBatch produces req.Count passwords, or one when Count is unset.
func (s *GeneratorService) GenerateBatch(req model.GenerateRequest) (model.BatchResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return model.BatchResponse{}, ErrInvalidCount
		}
		return model.BatchResponse{}, err
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	opts := s.options(req)
	resp := model.BatchResponse{Passwords: make([]model.GenerateResponse, 0, count)}
	for i := 0; i < count; i++ {
		password, err := crypto.Generate(opts)
		if err != nil {
			return model.BatchResponse{}, err
		}
		resp.Passwords = append(resp.Passwords, model.GenerateResponse{
			Password: password,
			Length:   len(password),
			Strength: Strength(password),
		})
	}

	return resp, nil
}

func (s *GeneratorService) options(req model.GenerateRequest) crypto.GeneratorOptions {
	def := crypto.DefaultSelection()
	return crypto.GeneratorOptions{
		Selection: crypto.Selection{
			Uppercase: boolOrDefault(req.Uppercase, def.Uppercase),
			Lowercase: boolOrDefault(req.Lowercase, def.Lowercase),
			Digits:    boolOrDefault(req.Digits, def.Digits),
			Symbols:   boolOrDefault(req.Symbols, def.Symbols),
		},
		Length:    intOrDefault(req.Length, crypto.DefaultLength),
		MaxLength: s.maxLength,
		Source:    s.source,
	}
}

// Strength scores a password and renders its meter.
func Strength(password string) model.StrengthResponse {
	score := crypto.Score(password)
	rating := crypto.Classify(score)
	segments := crypto.Meter(score)

	return model.StrengthResponse{
		Score:    score,
		Rating:   rating,
		Color:    rating.Color(),
		Segments: segments[:],
	}
}

// Estimate is Strength plus the zxcvbn estimate of the password.
func Estimate(password string) model.StrengthResponse {
	resp := Strength(password)
	est := crypto.EstimateStrength(password)
	resp.Estimate = &est
	return resp
}

// IsValidationError reports whether err is a user-correctable rejection.
func IsValidationError(err error) bool {
	return errors.Is(err, crypto.ErrNoClassSelected) ||
		errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, ErrInvalidCount)
}

// ErrorCode returns the machine-readable code of a validation error.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, crypto.ErrNoClassSelected):
		return "no_class_selected"
	case errors.Is(err, crypto.ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, ErrInvalidCount):
		return "invalid_count"
	default:
		return ""
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
