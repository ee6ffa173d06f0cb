package quiz

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ConjugationQuestion asks for the present tense form of a verb
type ConjugationQuestion struct {
	Verb         Verb
	Pronoun      int // index into Pronouns
	Options      []string
	CorrectIndex int
	Sentence     string // the sentence with the form blanked out
	FullSentence string
}

// Answer returns the expected form
func (q ConjugationQuestion) Answer() string {
	return q.Verb.Present[q.Pronoun]
}

// Check reports whether answer is right. The answer may be the option number
// (1-based) or the form itself.
func (q ConjugationQuestion) Check(answer string) bool {
	answer = strings.TrimSpace(answer)
	if n, err := strconv.Atoi(answer); err == nil {
		return n-1 == q.CorrectIndex
	}
	return strings.EqualFold(answer, q.Answer())
}

// Tip returns the ending pattern of the verb's group
func (q ConjugationQuestion) Tip() string {
	switch q.Verb.Group {
	case 1:
		return "ER verbs: remove -er and add -e, -es, -e, -ons, -ez, -ent"
	case 2:
		return "IR verbs: remove -ir and add -is, -is, -it, -issons, -issez, -issent"
	case 3:
		return "RE verbs: remove -re and add -s, -s, -t, -ons, -ez, -ent"
	}
	return "Check the verb group and apply the matching endings."
}

// CreateConjugation builds count questions on random verbs of difficulty d,
// each for a random pronoun. It returns nil when t has no verb of d.
func (m *Module) CreateConjugation(t *VerbTable, d Difficulty, count int) []ConjugationQuestion {
	verbs := t.ByDifficulty(d)
	if len(verbs) == 0 || count <= 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	questions := make([]ConjugationQuestion, 0, count)
	for i := 0; i < count; i++ {
		v := verbs[m.rnd.Intn(len(verbs))]
		p := m.rnd.Intn(len(Pronouns))
		endings := t.sentences(v)
		ending := endings[m.rnd.Intn(len(endings))]

		options := m.conjugationOptions(v, p)
		questions = append(questions, ConjugationQuestion{
			Verb:         v,
			Pronoun:      p,
			Options:      options,
			CorrectIndex: m.shuffleOptions(options, 0),
			Sentence:     Pronouns[p] + " " + Blank + " " + ending,
			FullSentence: subject(Pronouns[p], v.Present[p]) + " " + ending,
		})
	}
	return questions
}

// conjugationOptions returns the right form first, followed by up to
// DefaultDistractors other forms of the same verb. m.mu must be held.
func (m *Module) conjugationOptions(v Verb, pronoun int) []string {
	correct := v.Present[pronoun]
	options := []string{correct}
	used := map[string]bool{correct: true}

	for _, i := range m.rnd.Perm(len(v.Present)) {
		if len(options) == DefaultDistractors+1 {
			break
		}
		form := v.Present[i]
		if used[form] {
			continue
		}
		used[form] = true
		options = append(options, form)
	}
	return options
}

// subject joins a pronoun and a verb form, eliding je before a vowel or mute h
func subject(pronoun, form string) string {
	if pronoun == "je" {
		r, _ := utf8.DecodeRuneInString(form)
		if strings.ContainsRune("aeiouyhâàéèêîôû", unicode.ToLower(r)) {
			return "j'" + form
		}
	}
	return pronoun + " " + form
}
