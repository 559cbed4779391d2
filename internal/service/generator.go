package service

import (
	"errors"
	"log/slog"

	"github.com/strongpass/strongpass-go/internal/metrics"
	"github.com/strongpass/strongpass-go/internal/model"
	"github.com/strongpass/strongpass-go/internal/passgen"
)

const (
	DefaultLength = 16
	MinLength     = 1
	MaxLength     = 128
	MaxCount      = 50
)

var (
	ErrLengthTooShort   = errors.New("password length must be at least 1")
	ErrLengthTooLong    = errors.New("password length must be at most 128")
	ErrCountTooLarge    = errors.New("count must be at most 50")
	ErrPasswordRequired = errors.New("password is required")
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	builder *passgen.Builder
}

// NewGeneratorService creates a new GeneratorService drawing from src.
// A nil src selects the default non-cryptographic source.
func NewGeneratorService(src passgen.Source) *GeneratorService {
	return &GeneratorService{builder: passgen.NewBuilder(src)}
}

// Generate produces one or more passwords based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = DefaultLength
	}
	if length < MinLength {
		return model.GenerateResponse{}, rejected("length_too_short", ErrLengthTooShort)
	}
	if length > MaxLength {
		return model.GenerateResponse{}, rejected("length_too_long", ErrLengthTooLong)
	}

	count := req.Count
	if count < 1 {
		count = 1
	}
	if count > MaxCount {
		return model.GenerateResponse{}, rejected("count_too_large", ErrCountTooLarge)
	}

	classes := classesFromRequest(req)
	if classes.Empty() {
		return model.GenerateResponse{}, rejected("no_character_classes", passgen.ErrNoCharacterClasses)
	}

	passwords := make([]model.GeneratedPassword, 0, count)
	for i := 0; i < count; i++ {
		password, err := s.builder.Generate(passgen.Request{Length: length, Classes: classes})
		if err != nil {
			return model.GenerateResponse{}, err
		}

		strength := passgen.ScoreStrength(password)
		metrics.PasswordsGenerated.WithLabelValues(string(strength.Label)).Inc()
		metrics.PasswordLength.Observe(float64(len(password)))

		passwords = append(passwords, model.GeneratedPassword{
			Password: password,
			Length:   len(password),
			Strength: strengthResponse(strength),
		})
	}

	if length < classes.Len() {
		slog.Debug("requested length below class count", "length", length, "classes", classes.Len())
	}

	return model.GenerateResponse{Passwords: passwords}, nil
}

// Strength rates an existing password.
func (s *GeneratorService) Strength(req model.StrengthRequest) (model.StrengthResponse, error) {
	if req.Password == "" {
		return model.StrengthResponse{}, ErrPasswordRequired
	}

	strength := passgen.ScoreStrength(req.Password)
	metrics.StrengthChecks.WithLabelValues(string(strength.Label)).Inc()

	return strengthResponse(strength), nil
}

// IsValidationError reports whether err was caused by a bad request rather
// than an internal failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthTooShort) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrCountTooLarge) ||
		errors.Is(err, ErrPasswordRequired) ||
		errors.Is(err, passgen.ErrNoCharacterClasses)
}

func classesFromRequest(req model.GenerateRequest) passgen.ClassSet {
	var classes passgen.ClassSet
	if boolOrDefault(req.Uppercase, true) {
		classes = classes.With(passgen.Uppercase)
	}
	if boolOrDefault(req.Lowercase, true) {
		classes = classes.With(passgen.Lowercase)
	}
	if boolOrDefault(req.Numbers, true) {
		classes = classes.With(passgen.Digit)
	}
	if boolOrDefault(req.Symbols, true) {
		classes = classes.With(passgen.Symbol)
	}
	return classes
}

func strengthResponse(s passgen.Strength) model.StrengthResponse {
	return model.StrengthResponse{
		Score:   s.Score,
		Label:   string(s.Label),
		Percent: s.Percent(),
		Color:   s.Color(),
	}
}

func rejected(reason string, err error) error {
	metrics.GenerateErrors.WithLabelValues(reason).Inc()
	return err
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
