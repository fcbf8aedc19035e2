package ledger

import "sort"

// PointsPerCorrect is the flat score awarded for a correct answer.
const PointsPerCorrect = 10

// MaxRecentTopics bounds the recent-topics history.
const MaxRecentTopics = 10

// Progress is the per-child aggregate progress ledger. One instance exists
// per active child and is mutated only by the session engine.
type Progress struct {
	TotalPoints    int
	CorrectAnswers int
	TotalAnswers   int
	CurrentStreak  int

	// ModuleMastery counts correct answers per module. Values never decrease.
	ModuleMastery map[string]int

	// Achievements and Unlocks are monotonically non-decreasing within a
	// login session. Members are never removed.
	Achievements map[string]bool
	Unlocks      map[string]bool

	// RecentTopics is most-recent-first, bounded to MaxRecentTopics.
	RecentTopics []string
}

// NewProgress returns a zeroed ledger with initialized maps.
func NewProgress() Progress {
	return Progress{
		ModuleMastery: make(map[string]int),
		Achievements:  make(map[string]bool),
		Unlocks:       make(map[string]bool),
	}
}

// ApplyOutcome returns a new ledger with a single answer outcome applied.
// The receiver is not modified. Achievement and unlock rules run after the
// counter updates; evaluation is idempotent and monotonic, in ascending
// threshold order so the result is independent of accumulation path.
func ApplyOutcome(p Progress, module string, correct bool, topic string) Progress {
	next := p.Clone()

	next.TotalAnswers++
	if correct {
		next.CorrectAnswers++
		next.TotalPoints += PointsPerCorrect
		next.CurrentStreak++
		next.ModuleMastery[module]++
	} else {
		next.CurrentStreak = 0
	}

	next.RecentTopics = prependTopic(next.RecentTopics, topic)

	evaluateRules(&next)

	return next
}

// HasAchievement reports whether the named achievement has been earned.
func (p Progress) HasAchievement(name string) bool {
	return p.Achievements[name]
}

// HasUnlock reports whether the named feature has been unlocked.
func (p Progress) HasUnlock(name string) bool {
	return p.Unlocks[name]
}

// AccuracyRate returns correct/total, or 0 when no answers were given.
func (p Progress) AccuracyRate() float64 {
	if p.TotalAnswers == 0 {
		return 0
	}
	return float64(p.CorrectAnswers) / float64(p.TotalAnswers)
}

// AchievementList returns the earned achievements in sorted order.
func (p Progress) AchievementList() []string {
	return sortedKeys(p.Achievements)
}

// UnlockList returns the unlocked features in sorted order.
func (p Progress) UnlockList() []string {
	return sortedKeys(p.Unlocks)
}

// Clone returns a deep copy sharing no maps or slices with the receiver.
func (p Progress) Clone() Progress {
	next := p

	next.ModuleMastery = make(map[string]int, len(p.ModuleMastery))
	for k, v := range p.ModuleMastery {
		next.ModuleMastery[k] = v
	}

	next.Achievements = make(map[string]bool, len(p.Achievements))
	for k := range p.Achievements {
		next.Achievements[k] = true
	}

	next.Unlocks = make(map[string]bool, len(p.Unlocks))
	for k := range p.Unlocks {
		next.Unlocks[k] = true
	}

	next.RecentTopics = append([]string(nil), p.RecentTopics...)

	return next
}

func prependTopic(topics []string, topic string) []string {
	if topic == "" {
		return topics
	}
	out := make([]string, 0, len(topics)+1)
	out = append(out, topic)
	out = append(out, topics...)
	if len(out) > MaxRecentTopics {
		out = out[:MaxRecentTopics]
	}
	return out
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
