package models

// Level is the CEFR tier of a vocabulary item
type Level string

const (
	LevelA2 Level = "A2" // beginner
	LevelB1 Level = "B1" // intermediate
	LevelB2 Level = "B2" // advanced
)

// Valid reports whether l is one of the known tiers
func (l Level) Valid() bool {
	switch l {
	case LevelA2, LevelB1, LevelB2:
		return true
	}
	return false
}

// Category distinguishes single words from longer units
type Category string

const (
	CategoryWord       Category = "word"
	CategoryPhrase     Category = "phrase"
	CategoryExpression Category = "expression"
)

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryWord, CategoryPhrase, CategoryExpression:
		return true
	}
	return false
}

// Gender is the grammatical gender of a noun. Empty for everything else.
type Gender string

const (
	GenderNone      Gender = ""
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
)

// VocabularyItem is a single learnable card from the catalog
type VocabularyItem struct {
	ID                 string   `json:"id" yaml:"id"`
	Term               string   `json:"french" yaml:"french"`
	Translation        string   `json:"english" yaml:"english"`
	ExampleTerm        string   `json:"exampleFr" yaml:"exampleFr"`
	ExampleTranslation string   `json:"exampleEn" yaml:"exampleEn"`
	Level              Level    `json:"level" yaml:"level"`
	Category           Category `json:"category" yaml:"category"`
	Gender             Gender   `json:"gender,omitempty" yaml:"gender,omitempty"`
	Collection         string   `json:"collection,omitempty" yaml:"collection,omitempty"`
}
