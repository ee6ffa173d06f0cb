package models

// LearningStats summarizes a learner's progress over the whole catalog
type LearningStats struct {
	Total             int `json:"total"`
	Learned           int `json:"learned"`  // repetition > 0
	Due               int `json:"due"`
	New               int `json:"new"`
	Mastered          int `json:"mastered"` // long-interval items, see spaced_repetition.IsMastered
	MasteryPercentage int `json:"masteryPercentage"`
}

// ForgottenItem pairs a catalog item with how often it was forgotten
type ForgottenItem struct {
	Item        VocabularyItem `json:"item"`
	ForgotCount int            `json:"forgotCount"`
}
