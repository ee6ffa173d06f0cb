package quiz

import "errors"

var (
	ErrNoVerbs           = errors.New("quiz: no verbs")
	ErrInvalidVerb       = errors.New("quiz: invalid verb")
	ErrUnknownDifficulty = errors.New("quiz: unknown difficulty")
)
