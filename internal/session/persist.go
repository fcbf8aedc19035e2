package session

import (
	"github.com/abhisek/quizkid/internal/ledger"
	"github.com/abhisek/quizkid/internal/store"
)

// progressFromRecord rebuilds a ledger from its persisted form.
func progressFromRecord(rec store.ProgressRecord) ledger.Progress {
	p := ledger.NewProgress()
	p.TotalPoints = rec.TotalPoints
	p.CorrectAnswers = rec.CorrectAnswers
	p.TotalAnswers = rec.TotalAnswers
	p.CurrentStreak = rec.CurrentStreak

	for m, count := range rec.ModuleMastery {
		p.ModuleMastery[m] = count
	}
	for _, a := range rec.Achievements {
		p.Achievements[a] = true
	}
	for _, u := range rec.Unlocks {
		p.Unlocks[u] = true
	}
	p.RecentTopics = append([]string(nil), rec.RecentTopics...)
	if len(p.RecentTopics) > ledger.MaxRecentTopics {
		p.RecentTopics = p.RecentTopics[:ledger.MaxRecentTopics]
	}

	return p
}

// progressToRecord flattens a ledger for persistence.
func progressToRecord(childID string, p ledger.Progress) store.ProgressRecord {
	mastery := make(map[string]int, len(p.ModuleMastery))
	for m, count := range p.ModuleMastery {
		mastery[m] = count
	}

	return store.ProgressRecord{
		ChildID:        childID,
		TotalPoints:    p.TotalPoints,
		CorrectAnswers: p.CorrectAnswers,
		TotalAnswers:   p.TotalAnswers,
		CurrentStreak:  p.CurrentStreak,
		ModuleMastery:  mastery,
		Achievements:   p.AchievementList(),
		Unlocks:        p.UnlockList(),
		RecentTopics:   append([]string(nil), p.RecentTopics...),
	}
}
