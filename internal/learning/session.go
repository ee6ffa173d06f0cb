package learning

import (
	"context"

	"github.com/example/frenchie/internal/streak"
	"github.com/example/frenchie/pkg/models"
)

// Session walks through one learning queue. It holds the working copies of
// progress and streak and threads them through every answer.
type Session struct {
	svc *Service

	Progress models.ProgressMap
	Streak   models.StreakState

	cards    []models.VocabularyItem
	position int
	goal     *streak.Goal
}

// StartSession loads the learner's state and builds a queue of the configured
// size. A saved position inside the new queue is resumed.
func (s *Service) StartSession(ctx context.Context) *Session {
	progress := s.LoadProgress(ctx)
	sess := &Session{
		svc:      s,
		Progress: progress,
		Streak:   s.LoadStreak(ctx),
		cards:    s.LearningQueue(progress, s.queueSize),
		goal:     streak.NewGoal(s.dailyGoal),
	}
	if i := s.LoadCurrentIndex(ctx); i > 0 && i < len(sess.cards) {
		sess.position = i
	}
	return sess
}

// Cards returns the session queue
func (ss *Session) Cards() []models.VocabularyItem {
	return ss.cards
}

// Current returns the card to show next
func (ss *Session) Current() (models.VocabularyItem, bool) {
	if ss.position >= len(ss.cards) {
		return models.VocabularyItem{}, false
	}
	return ss.cards[ss.position], true
}

// Remaining returns how many cards are left
func (ss *Session) Remaining() int {
	return len(ss.cards) - ss.position
}

// Goal returns the session's progress towards the daily goal
func (ss *Session) Goal() *streak.Goal {
	return ss.goal
}

// Answer records outcome for the current card and moves on. It reports whether
// this answer completed the daily goal, in which case the streak is updated.
func (ss *Session) Answer(ctx context.Context, outcome Outcome) bool {
	card, ok := ss.Current()
	if !ok {
		return false
	}

	ss.Progress = ss.svc.Review(ctx, ss.Progress, card.ID, outcome)
	ss.position++
	if ss.position >= len(ss.cards) {
		ss.svc.SaveCurrentIndex(ctx, 0)
	} else {
		ss.svc.SaveCurrentIndex(ctx, ss.position)
	}

	if outcome == Forgot || outcome == Restore {
		return false
	}
	if !ss.goal.Hit() {
		return false
	}
	ss.Streak = ss.svc.RecordGoalCompletion(ctx, ss.Streak)
	return true
}
