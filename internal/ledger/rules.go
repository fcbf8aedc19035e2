package ledger

// Rule grants an achievement and optionally a feature unlock once
// TotalPoints reaches Threshold. Rules only ever add set members.
type Rule struct {
	Threshold   int
	Achievement string
	Unlock      string // empty when the rule grants no unlock
}

// rules must stay sorted by ascending Threshold.
var rules = []Rule{
	{Threshold: 50, Achievement: "First Game Unlocked!", Unlock: "memory_game"},
	{Threshold: 100, Achievement: "Century Scorer!"},
	{Threshold: 200, Achievement: "Puzzle Time!", Unlock: "puzzle_game"},
	{Threshold: 400, Achievement: "Art Studio Open!", Unlock: "coloring_game"},
}

// Rules returns the configured threshold rules in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// evaluateRules applies every threshold rule whose bar the ledger has
// reached. Adding an already-present member is a no-op, which keeps the
// evaluation idempotent regardless of how often it runs.
func evaluateRules(p *Progress) {
	for _, r := range rules {
		if p.TotalPoints < r.Threshold {
			break
		}
		p.Achievements[r.Achievement] = true
		if r.Unlock != "" {
			p.Unlocks[r.Unlock] = true
		}
	}
}
