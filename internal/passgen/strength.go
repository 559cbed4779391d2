package passgen

// MaxScore is the highest score ScoreStrength can produce.
const MaxScore = 7

// Label is the human-readable strength tier.
type Label string

const (
	Weak   Label = "Weak"
	Fair   Label = "Fair"
	Good   Label = "Good"
	Strong Label = "Strong"
)

// Strength is the result of scoring a password.
type Strength struct {
	Score int
	Label Label
}

// ScoreStrength rates password from 0 to MaxScore: one point for each length
// threshold of 12, 16 and 20 UTF-16 code units, and one for each of uppercase,
// lowercase, digit and any other character being present.
func ScoreStrength(password string) Strength {
	score := 0

	n := utf16Len(password)
	for _, threshold := range []int{12, 16, 20} {
		if n >= threshold {
			score++
		}
	}

	var hasUpper, hasLower, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasOther} {
		if ok {
			score++
		}
	}

	return Strength{Score: score, Label: LabelFor(score)}
}

// utf16Len counts UTF-16 code units, so characters outside the Basic
// Multilingual Plane count twice, as they do in a browser.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// LabelFor maps a score to its tier. Strong needs a score above 7, which
// ScoreStrength never yields; the tier is kept so the ladder stays four wide.
func LabelFor(score int) Label {
	switch {
	case score <= 3:
		return Weak
	case score <= 5:
		return Fair
	case score <= 7:
		return Good
	default:
		return Strong
	}
}

// Percent is the meter fill for the score, out of a scale of 8.
func (s Strength) Percent() float64 {
	return float64(s.Score) / 8 * 100
}

// Color is the meter color for the label.
func (s Strength) Color() string {
	switch s.Label {
	case Weak:
		return "#ff4444"
	case Fair:
		return "#ffaa00"
	case Good:
		return "#00aa00"
	default:
		return "#008800"
	}
}
