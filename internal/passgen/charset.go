package passgen

// Class identifies one of the character alphabets a password can draw from.
type Class int

const (
	Uppercase Class = iota
	Lowercase
	Digit
	Symbol
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// AllClasses lists every class in the fixed order used to build pools and seeds.
var AllClasses = []Class{Uppercase, Lowercase, Digit, Symbol}

// Alphabet returns the ordered characters belonging to c.
func (c Class) Alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digit:
		return digitChars
	case Symbol:
		return symbolChars
	}
	return ""
}

func (c Class) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	}
	return "unknown"
}

// ClassSet is a set of enabled classes. The zero value is empty.
type ClassSet uint8

// NewClassSet returns a set containing the given classes.
func NewClassSet(classes ...Class) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// With returns a copy of s that also contains c. Unknown classes are ignored.
func (s ClassSet) With(c Class) ClassSet {
	if c < Uppercase || c > Symbol {
		return s
	}
	return s | 1<<uint(c)
}

// Has reports whether c is enabled.
func (s ClassSet) Has(c Class) bool {
	if c < Uppercase || c > Symbol {
		return false
	}
	return s&(1<<uint(c)) != 0
}

// Empty reports whether no class is enabled.
func (s ClassSet) Empty() bool { return s == 0 }

// Classes returns the enabled classes in fixed order.
func (s ClassSet) Classes() []Class {
	out := make([]Class, 0, len(AllClasses))
	for _, c := range AllClasses {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of enabled classes.
func (s ClassSet) Len() int {
	return len(s.Classes())
}
