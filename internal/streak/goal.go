package streak

// DefaultDailyGoal is how many remembered cards complete a day
const DefaultDailyGoal = 10

// Goal counts successful reviews in one session
type Goal struct {
	Target int
	count  int
}

// NewGoal creates a goal of target successes; non-positive targets use the default
func NewGoal(target int) *Goal {
	if target <= 0 {
		target = DefaultDailyGoal
	}
	return &Goal{Target: target}
}

// Hit records one success and reports whether it is the one that reached the target
func (g *Goal) Hit() bool {
	g.count++
	return g.count == g.Target
}

// Count returns the successes recorded so far
func (g *Goal) Count() int {
	return g.count
}

// Reached reports whether the target has been met
func (g *Goal) Reached() bool {
	return g.count >= g.Target
}
