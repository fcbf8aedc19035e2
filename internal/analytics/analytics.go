package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/abhisek/quizkid/internal/bank"
	"github.com/abhisek/quizkid/internal/ledger"
	"github.com/abhisek/quizkid/internal/llm"
)

// Report is the end-of-session learning summary.
// Sequences are clipped to their maximum lengths and never empty.
type Report struct {
	Strengths         []string // 1-3
	ImprovementAreas  []string // 1-3
	RecommendedTopics []string // 1-4
	Tips              []string // 1-4
}

const (
	maxStrengths    = 3
	maxImprovements = 3
	maxRecommended  = 4
	maxTips         = 4
)

// Schema defines the JSON shape of a generated report.
var Schema = &llm.Schema{
	Name:        "learning-report",
	Description: "A strengths and gaps summary of a child's quiz progress",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 things the child is doing well",
			},
			"improvement_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 areas to practice, phrased kindly",
			},
			"recommended_topics": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-4 topic modules to try next",
			},
			"tips": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-4 short tips for the grown-up helping the child",
			},
		},
		"required": []any{"strengths", "improvement_areas", "recommended_topics", "tips"},
	},
}

const reportSystemPrompt = `You summarize a child's quiz progress for their grown-up.
Be specific, warm, and constructive. Phrase gaps as chances to grow.
Respond with a JSON object only.`

// Summarizer produces end-of-session reports with generation plus a
// deterministic fallback computed purely from ledger aggregates.
type Summarizer struct {
	provider llm.Provider
}

// NewSummarizer creates a Summarizer. provider may be nil, in which case
// every report comes from the fallback rules.
func NewSummarizer(provider llm.Provider) *Summarizer {
	return &Summarizer{provider: provider}
}

// Summarize builds a report from the ledger. Never fails: upstream errors
// produce the deterministic fallback report instead.
func (s *Summarizer) Summarize(ctx context.Context, p ledger.Progress) Report {
	if s.provider != nil {
		if rep, err := s.trySummarize(ctx, p); err == nil {
			return rep
		} else {
			slog.Info("analytics summary fell back to ledger rules", "error", err)
		}
	}

	return FallbackReport(p)
}

func (s *Summarizer) trySummarize(ctx context.Context, p ledger.Progress) (Report, error) {
	ctx = llm.WithPurpose(ctx, "analytics-gen")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: reportSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLedgerSummary(p)},
		},
		Schema:      Schema,
		MaxTokens:   1024,
		Temperature: 0.6,
	})
	if err != nil {
		return Report{}, err
	}

	var raw struct {
		Strengths         []string `json:"strengths"`
		ImprovementAreas  []string `json:"improvement_areas"`
		RecommendedTopics []string `json:"recommended_topics"`
		Tips              []string `json:"tips"`
	}
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Report{}, fmt.Errorf("parse report reply: %w", err)
	}

	rep := Report{
		Strengths:         raw.Strengths,
		ImprovementAreas:  raw.ImprovementAreas,
		RecommendedTopics: raw.RecommendedTopics,
		Tips:              raw.Tips,
	}
	return clipReport(rep), nil
}

func buildLedgerSummary(p ledger.Progress) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total answers: %d\n", p.TotalAnswers)
	fmt.Fprintf(&b, "Correct answers: %d\n", p.CorrectAnswers)
	fmt.Fprintf(&b, "Accuracy: %.0f%%\n", p.AccuracyRate()*100)
	fmt.Fprintf(&b, "Total points: %d\n", p.TotalPoints)
	fmt.Fprintf(&b, "Current streak: %d\n", p.CurrentStreak)

	b.WriteString("Correct answers per module:\n")
	for _, m := range sortedModules(p.ModuleMastery) {
		fmt.Fprintf(&b, "- %s: %d\n", m, p.ModuleMastery[m])
	}

	if len(p.RecentTopics) > 0 {
		fmt.Fprintf(&b, "Recent topics: %s\n", strings.Join(p.RecentTopics, ", "))
	}

	return b.String()
}

// FallbackReport derives a report purely from ledger aggregates using fixed
// rules: modules with mastery of 3 or more are strengths, modules started
// but below 3 need practice, and unattempted modules become recommendations.
// Accuracy bands pick the tone of the tips.
func FallbackReport(p ledger.Progress) Report {
	var rep Report

	attempted := p.ModuleMastery
	for _, m := range sortedModules(attempted) {
		count := attempted[m]
		switch {
		case count >= 3:
			rep.Strengths = append(rep.Strengths, fmt.Sprintf("Strong grasp of %s", m))
		case count > 0:
			rep.ImprovementAreas = append(rep.ImprovementAreas, fmt.Sprintf("More practice with %s", m))
		}
	}

	for _, m := range bank.Modules() {
		if _, ok := attempted[m]; !ok {
			rep.RecommendedTopics = append(rep.RecommendedTopics, m)
		}
	}

	accuracy := p.AccuracyRate()
	switch {
	case p.TotalAnswers == 0:
		rep.Tips = append(rep.Tips, "Start with a short quiz to see what your child enjoys most")
	case accuracy >= 0.8:
		rep.Tips = append(rep.Tips,
			"Your child is answering with great accuracy - consider a harder difficulty",
			"Celebrate the streaks together to keep motivation high")
	case accuracy >= 0.5:
		rep.Tips = append(rep.Tips,
			"Steady progress - short daily sessions work better than long ones",
			"Revisit the explanations together after each quiz")
	default:
		rep.Tips = append(rep.Tips,
			"Try an easier difficulty so your child builds confidence first",
			"Read each question aloud together before answering")
	}

	return clipReport(rep)
}

// clipReport enforces the length bounds and substitutes generic fillers so
// no sequence is ever empty.
func clipReport(rep Report) Report {
	rep.Strengths = clip(rep.Strengths, maxStrengths, "Showing up and trying - that's the biggest win")
	rep.ImprovementAreas = clip(rep.ImprovementAreas, maxImprovements, "Keep exploring new topics")
	rep.RecommendedTopics = clip(rep.RecommendedTopics, maxRecommended, "letters")
	rep.Tips = clip(rep.Tips, maxTips, "A little practice every day goes a long way")
	return rep
}

func clip(items []string, max int, filler string) []string {
	if len(items) == 0 {
		return []string{filler}
	}
	if len(items) > max {
		return items[:max]
	}
	return items
}

func sortedModules(mastery map[string]int) []string {
	modules := make([]string, 0, len(mastery))
	for m := range mastery {
		modules = append(modules, m)
	}
	sort.Strings(modules)
	return modules
}
