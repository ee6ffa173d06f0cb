package quiz

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed verbs.yaml
var defaultVerbsYAML []byte

// Difficulty groups verbs for conjugation drills
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// ParseDifficulty accepts a difficulty name in any case
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Beginner, Intermediate, Advanced:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Pronouns in the order of Verb.Present
var Pronouns = [...]string{"je", "tu", "il/elle", "nous", "vous", "ils/elles"}

// Verb is one row of the conjugation table
type Verb struct {
	Infinitive string     `yaml:"infinitive"`
	English    string     `yaml:"english"`
	Group      int        `yaml:"group"` // 1 (-er), 2 (-ir), 3 (the rest)
	Irregular  bool       `yaml:"irregular"`
	Difficulty Difficulty `yaml:"difficulty"`
	Present    []string   `yaml:"present"`
	Sentences  []string   `yaml:"sentences"` // endings after "<pronoun> <form>"
}

// VerbTable holds the verbs conjugation questions are drawn from
type VerbTable struct {
	verbs            []Verb
	defaultSentences []string
}

type verbsFile struct {
	DefaultSentences []string `yaml:"default_sentences"`
	Verbs            []Verb   `yaml:"verbs"`
}

// DefaultVerbs returns the verb table shipped with the application
func DefaultVerbs() (*VerbTable, error) {
	return ParseVerbs(defaultVerbsYAML)
}

// ParseVerbs builds a verb table from YAML data
func ParseVerbs(data []byte) (*VerbTable, error) {
	var f verbsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse verbs: %w", err)
	}
	if len(f.Verbs) == 0 {
		return nil, ErrNoVerbs
	}

	seen := make(map[string]bool, len(f.Verbs))
	for _, v := range f.Verbs {
		switch {
		case v.Infinitive == "":
			return nil, fmt.Errorf("%w: missing infinitive", ErrInvalidVerb)
		case seen[v.Infinitive]:
			return nil, fmt.Errorf("%w: duplicate %s", ErrInvalidVerb, v.Infinitive)
		case len(v.Present) != len(Pronouns):
			return nil, fmt.Errorf("%w: %s has %d present forms", ErrInvalidVerb, v.Infinitive, len(v.Present))
		case v.Group < 1 || v.Group > 3:
			return nil, fmt.Errorf("%w: %s has group %d", ErrInvalidVerb, v.Infinitive, v.Group)
		}
		if _, err := ParseDifficulty(string(v.Difficulty)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidVerb, v.Infinitive, err)
		}
		for _, form := range v.Present {
			if strings.TrimSpace(form) == "" {
				return nil, fmt.Errorf("%w: %s has an empty form", ErrInvalidVerb, v.Infinitive)
			}
		}
		seen[v.Infinitive] = true
	}

	if len(f.DefaultSentences) == 0 {
		f.DefaultSentences = []string{"souvent."}
	}
	return &VerbTable{verbs: f.Verbs, defaultSentences: f.DefaultSentences}, nil
}

// Len returns the number of verbs
func (t *VerbTable) Len() int {
	return len(t.verbs)
}

// ByDifficulty returns the verbs of one difficulty in table order
func (t *VerbTable) ByDifficulty(d Difficulty) []Verb {
	var verbs []Verb
	for _, v := range t.verbs {
		if v.Difficulty == d {
			verbs = append(verbs, v)
		}
	}
	return verbs
}

func (t *VerbTable) sentences(v Verb) []string {
	if len(v.Sentences) > 0 {
		return v.Sentences
	}
	return t.defaultSentences
}
