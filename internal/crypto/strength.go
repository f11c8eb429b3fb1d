package crypto

import (
	"strings"
	"unicode/utf8"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

const (
	// MaxScore is the score of a password satisfying every predicate.
	MaxScore = 5

	minStrongLength = 8

	// maxEstimateRunes bounds the zxcvbn input. Its matching cost grows
	// faster than linearly with length.
	maxEstimateRunes = 100
)

// Rating is the display bucket of a strength score.
type Rating string

const (
	Poor   Rating = "Poor"
	Fair   Rating = "Fair"
	Strong Rating = "Strong"
)

// Color returns the meter color of the rating.
func (r Rating) Color() string {
	switch r {
	case Strong:
		return "green"
	case Fair:
		return "yellow"
	default:
		return "red"
	}
}

// Score counts how many of five predicates the password satisfies:
// length of at least 8, a lowercase letter, an uppercase letter, a digit,
// and a symbol from the generator's symbol set.
func Score(password string) int {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(symbolChars, r):
			hasSymbol = true
		}
	}

	score := 0
	for _, ok := range []bool{utf8.RuneCountInString(password) >= minStrongLength, hasLower, hasUpper, hasDigit, hasSymbol} {
		if ok {
			score++
		}
	}
	return score
}

// Classify maps a score to its rating: 5 is Strong, 3-4 Fair, anything lower Poor.
func Classify(score int) Rating {
	switch {
	case score >= MaxScore:
		return Strong
	case score >= 3:
		return Fair
	default:
		return Poor
	}
}

// Meter returns the five meter segments with the first score of them lit.
func Meter(score int) [MaxScore]bool {
	var segments [MaxScore]bool
	for i := 0; i < score && i < MaxScore; i++ {
		segments[i] = true
	}
	return segments
}

// Estimate is a pattern-based strength estimate, reported next to the
// heuristic score and never mixed into it.
type Estimate struct {
	Score            int     `json:"score"`
	Entropy          float64 `json:"entropy"`
	CrackTimeDisplay string  `json:"crack_time_display"`
}

// EstimateStrength runs zxcvbn over the first 100 runes of password.
func EstimateStrength(password string) Estimate {
	if password == "" {
		return Estimate{CrackTimeDisplay: "instant"}
	}
	result := zxcvbn.PasswordStrength(truncateRunes(password, maxEstimateRunes), nil)
	return Estimate{
		Score:            result.Score,
		Entropy:          result.Entropy,
		CrackTimeDisplay: result.CrackTimeDisplay,
	}
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
