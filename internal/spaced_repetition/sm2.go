package spaced_repetition

import (
	"math"
	"time"

	"github.com/example/frenchie/pkg/models"
)

// ForgotResurfaceDelay is how soon a forgotten item comes back. It replaces the
// one-day minimum of the textbook algorithm for QualityIncorrect only.
const ForgotResurfaceDelay = 4 * time.Hour

const day = 24 * time.Hour

// SM2 implements the SuperMemo-2 algorithm for spaced repetition
type SM2 struct {
	// Ответы PassThreshold и выше считаются успешными
	PassThreshold QualityResponse
	// Нижняя граница фактора легкости
	MinEaseFactor float64
	// Через сколько забытое слово снова становится доступным
	ForgotDelay time.Duration
}

// NewSM2 создает новый экземпляр SM2 с настройками по умолчанию
func NewSM2() *SM2 {
	return &SM2{
		PassThreshold: QualityCorrectDifficult,
		MinEaseFactor: models.MinEaseFactor,
		ForgotDelay:   ForgotResurfaceDelay,
	}
}

// QualityResponse represents the quality of response in SM-2
type QualityResponse int

const (
	// Complete blackout, unable to recall
	QualityBlackout QualityResponse = 0
	// Incorrect response but remembered upon seeing the correct answer.
	// Issued by the "forgot" action.
	QualityIncorrect QualityResponse = 1
	// Incorrect response but the correct answer felt familiar
	QualityIncorrectFamiliar QualityResponse = 2
	// Correct response but required significant effort
	QualityCorrectDifficult QualityResponse = 3
	// Correct response after some hesitation. Issued by the "remembered" action.
	QualityCorrectHesitation QualityResponse = 4
	// Perfect response with no hesitation. Issued by the "very familiar" action.
	QualityPerfect QualityResponse = 5
)

// clamp keeps q inside the 0-5 scale
func (q QualityResponse) clamp() QualityResponse {
	if q < QualityBlackout {
		return QualityBlackout
	}
	if q > QualityPerfect {
		return QualityPerfect
	}
	return q
}

// Process applies one review to state and returns the new state. It does not
// modify its input and has no side effects.
func (sm *SM2) Process(state models.ReviewState, quality QualityResponse, now time.Time) models.ReviewState {
	quality = quality.clamp()
	if state.EaseFactor == 0 {
		state.EaseFactor = models.DefaultEaseFactor
	}

	interval, ef, reps := sm.ComputeNextInterval(quality, state.Repetition, state.EaseFactor)

	next := state
	next.Repetition = reps
	next.EaseFactor = ef
	next.IntervalDays = interval
	next.NextReviewDueAt = now.Add(time.Duration(interval) * day)
	next.IsNew = false
	next.LastReviewedAt = now

	if quality < sm.PassThreshold {
		next.ForgotCount++
		next.MarkedVeryFamiliar = false
		// Forgotten items come back the same day
		if quality == QualityIncorrect {
			next.NextReviewDueAt = now.Add(sm.ForgotDelay)
		}
	} else {
		if next.ForgotCount > 0 {
			next.ForgotCount--
		}
		if quality == QualityPerfect {
			next.MarkedVeryFamiliar = true
		}
	}

	return next
}

// ComputeNextInterval вычисляет следующий интервал повторения на основе ответа.
// Returns the interval in days, the new ease factor and the new repetition count.
func (sm *SM2) ComputeNextInterval(quality QualityResponse, repetitions int, currentEF float64) (int, float64, int) {
	quality = quality.clamp()

	if quality < sm.PassThreshold {
		return 1, math.Max(sm.MinEaseFactor, currentEF-0.2), 0
	}

	q := float64(5 - quality)
	newEF := math.Max(sm.MinEaseFactor, currentEF+(0.1-q*(0.08+q*0.02)))
	newRepetitions := repetitions + 1

	var newInterval int
	switch newRepetitions {
	case 1:
		newInterval = 1
	case 2:
		newInterval = 6
	default:
		newInterval = int(math.Ceil(float64(newRepetitions) * newEF))
	}

	return newInterval, newEF, newRepetitions
}

// IsMastered determines if an item is considered "mastered":
// at least 5 successful reviews in a row and an interval of a month or more.
func IsMastered(state models.ReviewState) bool {
	return state.Repetition >= 5 && state.IntervalDays >= 30
}
