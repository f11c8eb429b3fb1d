package crypto

import (
	"errors"
	"fmt"
)

const (
	DefaultLength = 8
	MaxLength     = 100
)

var (
	ErrNoClassSelected = errors.New("at least one character class must be selected")
	ErrInvalidLength   = errors.New("invalid password length")
	ErrUnknownClass    = errors.New("unknown character class")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Selection Selection
	Length    int
	// MaxLength caps Length when positive.
	MaxLength int
	// Source defaults to CryptoSource when nil.
	Source Source
}

// DefaultSelection returns the classes enabled on first display: lowercase and digits.
func DefaultSelection() Selection {
	return Selection{Lowercase: true, Digits: true}
}

// DefaultOptions returns the initial widget options: 8 characters, lowercase and digits.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Selection: DefaultSelection(),
		Length:    DefaultLength,
		MaxLength: MaxLength,
	}
}

// Validate checks the generation preconditions. Length errors wrap
// ErrInvalidLength; a positive maxLength also rejects longer passwords.
func Validate(sel Selection, length, maxLength int) error {
	if sel.Empty() {
		return ErrNoClassSelected
	}
	if length < 1 {
		return fmt.Errorf("%w: must be at least 1", ErrInvalidLength)
	}
	if maxLength > 0 && length > maxLength {
		return fmt.Errorf("%w: must be at most %d", ErrInvalidLength, maxLength)
	}
	return nil
}

// Generate validates opts and draws a password from the alphabet of the selected classes.
func Generate(opts GeneratorOptions) (string, error) {
	if err := Validate(opts.Selection, opts.Length, opts.MaxLength); err != nil {
		return "", err
	}

	src := opts.Source
	if src == nil {
		src = CryptoSource{}
	}

	return Sample(BuildAlphabet(opts.Selection), opts.Length, src)
}

// Sample draws length characters from alphabet, independently and with
// replacement. The caller guarantees a non-empty alphabet and length >= 1.
func Sample(alphabet string, length int, src Source) (string, error) {
	result := make([]byte, length)
	for i := range result {
		idx, err := src.Intn(len(alphabet))
		if err != nil {
			return "", fmt.Errorf("drawing random index: %w", err)
		}
		result[i] = alphabet[idx]
	}
	return string(result), nil
}
