package crypto

import "strings"

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{}|;:'\",.<>?/~"
)

// Class is one of the four fixed character categories.
type Class int

const (
	Uppercase Class = iota
	Lowercase
	Digits
	Symbols
)

// Classes lists every class in canonical alphabet order.
var Classes = []Class{Uppercase, Lowercase, Digits, Symbols}

// String returns the class name used by the HTTP API and CLI.
func (c Class) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	default:
		return "unknown"
	}
}

// Chars returns the fixed character set of the class.
func (c Class) Chars() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digits:
		return digitChars
	case Symbols:
		return symbolChars
	default:
		return ""
	}
}

// ParseClass maps a class name back to its Class.
func ParseClass(name string) (Class, error) {
	for _, c := range Classes {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}
	return 0, ErrUnknownClass
}

// Selection holds the four independent class toggles.
type Selection struct {
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digits    bool `json:"digits"`
	Symbols   bool `json:"symbols"`
}

// Enabled reports whether class c is switched on.
func (s Selection) Enabled(c Class) bool {
	switch c {
	case Uppercase:
		return s.Uppercase
	case Lowercase:
		return s.Lowercase
	case Digits:
		return s.Digits
	case Symbols:
		return s.Symbols
	default:
		return false
	}
}

// Toggle returns a copy of s with class c flipped.
func (s Selection) Toggle(c Class) Selection {
	switch c {
	case Uppercase:
		s.Uppercase = !s.Uppercase
	case Lowercase:
		s.Lowercase = !s.Lowercase
	case Digits:
		s.Digits = !s.Digits
	case Symbols:
		s.Symbols = !s.Symbols
	}
	return s
}

// Empty reports whether no class is enabled.
func (s Selection) Empty() bool {
	return !s.Uppercase && !s.Lowercase && !s.Digits && !s.Symbols
}

// BuildAlphabet concatenates the character sets of every enabled class
// in canonical order: uppercase, lowercase, digits, symbols.
func BuildAlphabet(sel Selection) string {
	var sb strings.Builder
	for _, c := range Classes {
		if sel.Enabled(c) {
			sb.WriteString(c.Chars())
		}
	}
	return sb.String()
}
