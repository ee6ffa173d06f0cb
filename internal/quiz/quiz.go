// Package quiz turns vocabulary items into self-check questions.
package quiz

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/example/frenchie/internal/catalog"
	"github.com/example/frenchie/pkg/models"
)

// QuestionType represents different types of questions
type QuestionType string

const (
	// MultipleChoice asks for the translation among several options
	MultipleChoice QuestionType = "multiple_choice"
	// ContextTest asks for the French term missing from an example sentence
	ContextTest QuestionType = "context"
)

// Blank replaces the term in a context question
const Blank = "_______"

// DefaultDistractors is how many wrong options a multiple choice question has
const DefaultDistractors = 3

// Question represents a single quiz question
type Question struct {
	Item            models.VocabularyItem // The item being tested
	Type            QuestionType
	Options         []string // Possible answers (for multiple choice)
	CorrectIndex    int      // Index of correct answer in options
	ContextSentence string   // Sentence with blank (for context tests)
}

// Module creates quizzes over one catalog
type Module struct {
	catalog *catalog.Catalog

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewModule creates a quiz module
func NewModule(c *catalog.Catalog, seed int64) *Module {
	return &Module{catalog: c, rnd: rand.New(rand.NewSource(seed))}
}

// Create builds one question per item, in the given order. Items without an
// example sentence get a multiple choice question even when a context test is
// asked for.
func (m *Module) Create(items []models.VocabularyItem, questionType QuestionType) []Question {
	m.mu.Lock()
	defer m.mu.Unlock()

	questions := make([]Question, 0, len(items))
	for _, item := range items {
		if questionType == ContextTest && item.ExampleTerm != "" {
			questions = append(questions, Question{
				Item:            item,
				Type:            ContextTest,
				ContextSentence: replaceWordWithBlank(item.ExampleTerm, item.Term),
			})
			continue
		}
		questions = append(questions, m.multipleChoice(item))
	}
	return questions
}

func (m *Module) multipleChoice(item models.VocabularyItem) Question {
	options := append(m.incorrectOptions(item, DefaultDistractors), item.Translation)
	correctIndex := m.shuffleOptions(options, len(options)-1)

	return Question{
		Item:         item,
		Type:         MultipleChoice,
		Options:      options,
		CorrectIndex: correctIndex,
	}
}

// shuffleOptions shuffles options in place and returns where the option at
// correctIndex ended up. m.mu must be held.
func (m *Module) shuffleOptions(options []string, correctIndex int) int {
	m.rnd.Shuffle(len(options), func(i, j int) {
		if i == correctIndex {
			correctIndex = j
		} else if j == correctIndex {
			correctIndex = i
		}
		options[i], options[j] = options[j], options[i]
	})
	return correctIndex
}

// incorrectOptions picks up to count other translations, preferring items of the
// same level
func (m *Module) incorrectOptions(item models.VocabularyItem, count int) []string {
	options := make([]string, 0, count)
	used := map[string]bool{item.Translation: true}

	pick := func(pool []models.VocabularyItem) {
		m.rnd.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		for _, w := range pool {
			if len(options) == count {
				return
			}
			if w.ID == item.ID || used[w.Translation] {
				continue
			}
			used[w.Translation] = true
			options = append(options, w.Translation)
		}
	}

	pick(m.catalog.ByLevel(item.Level))
	if len(options) < count {
		pick(m.catalog.Items())
	}
	return options
}

// Check reports whether answer is right. Multiple choice answers may be the
// option number (1-based) or the option text.
func (q Question) Check(answer string) bool {
	answer = strings.TrimSpace(answer)
	switch q.Type {
	case MultipleChoice:
		if n, err := strconv.Atoi(answer); err == nil {
			return n-1 == q.CorrectIndex
		}
		return strings.EqualFold(answer, q.Item.Translation)
	case ContextTest:
		return strings.EqualFold(answer, q.Item.Term)
	}
	return false
}

// replaceWordWithBlank replaces the first case-insensitive occurrence of word
// in sentence with a blank. When the word does not occur the blank is appended.
func replaceWordWithBlank(sentence, word string) string {
	if word == "" {
		return sentence + " " + Blank
	}
	lower := strings.ToLower(sentence)
	if len(lower) == len(sentence) {
		if i := strings.Index(lower, strings.ToLower(word)); i >= 0 {
			return sentence[:i] + Blank + sentence[i+len(word):]
		}
	}
	return sentence + " " + Blank
}
