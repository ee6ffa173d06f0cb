package learning

import (
	"fmt"
	"strings"

	"github.com/example/frenchie/internal/spaced_repetition"
)

// Outcome is what the learner answered for one card
type Outcome int

const (
	Remembered Outcome = iota
	Forgot
	VeryFamiliar
	Restore
)

// Quality maps an outcome to its SM-2 grade. Restore is not a review.
func (o Outcome) Quality() (spaced_repetition.QualityResponse, bool) {
	switch o {
	case Remembered:
		return spaced_repetition.QualityCorrectHesitation, true
	case Forgot:
		return spaced_repetition.QualityIncorrect, true
	case VeryFamiliar:
		return spaced_repetition.QualityPerfect, true
	}
	return 0, false
}

func (o Outcome) String() string {
	switch o {
	case Remembered:
		return "remembered"
	case Forgot:
		return "forgot"
	case VeryFamiliar:
		return "familiar"
	case Restore:
		return "restore"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// ParseOutcome accepts the outcome names and their one-letter shortcuts
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "remembered", "r", "yes", "y":
		return Remembered, nil
	case "forgot", "f", "no", "n":
		return Forgot, nil
	case "familiar", "v", "very-familiar":
		return VeryFamiliar, nil
	case "restore":
		return Restore, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOutcome, s)
}
