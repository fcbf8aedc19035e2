package analytics

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/quizkid/internal/ledger"
	"github.com/abhisek/quizkid/internal/llm"
)

func TestSummarize_ModelReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"strengths": ["Great number sense"],
			"improvement_areas": ["Letter sounds need a bit more practice"],
			"recommended_topics": ["letters", "shapes"],
			"tips": ["Keep sessions short and fun"]
		}`),
	})
	s := NewSummarizer(mock)

	rep := s.Summarize(t.Context(), ledger.NewProgress())

	if len(rep.Strengths) != 1 || rep.Strengths[0] != "Great number sense" {
		t.Errorf("unexpected strengths: %v", rep.Strengths)
	}
	if len(rep.RecommendedTopics) != 2 {
		t.Errorf("unexpected recommendations: %v", rep.RecommendedTopics)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "learning-report" {
		t.Error("expected learning-report schema on the request")
	}
}

func TestSummarize_ErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	s := NewSummarizer(mock)

	rep := s.Summarize(t.Context(), ledger.NewProgress())
	assertWellFormed(t, rep)
}

func TestSummarize_ModelReplyClipped(t *testing.T) {
	long := `{"strengths": ["a","b","c","d","e"], "improvement_areas": [],
		"recommended_topics": ["t1","t2","t3","t4","t5","t6"], "tips": ["x"]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(long)})
	s := NewSummarizer(mock)

	rep := s.Summarize(t.Context(), ledger.NewProgress())

	if len(rep.Strengths) != maxStrengths {
		t.Errorf("expected %d strengths, got %d", maxStrengths, len(rep.Strengths))
	}
	if len(rep.RecommendedTopics) != maxRecommended {
		t.Errorf("expected %d recommendations, got %d", maxRecommended, len(rep.RecommendedTopics))
	}
	// Empty sequences get a filler.
	if len(rep.ImprovementAreas) != 1 {
		t.Errorf("expected filler improvement area, got %v", rep.ImprovementAreas)
	}
}

func TestFallbackReport_NoAnswers(t *testing.T) {
	rep := FallbackReport(ledger.NewProgress())

	assertWellFormed(t, rep)
	if !strings.Contains(rep.Tips[0], "Start with a short quiz") {
		t.Errorf("expected starter tip, got %q", rep.Tips[0])
	}
	// Nothing attempted, so every module is a recommendation (clipped).
	if len(rep.RecommendedTopics) != maxRecommended {
		t.Errorf("expected %d recommendations, got %v", maxRecommended, rep.RecommendedTopics)
	}
}

func TestFallbackReport_MasteryBands(t *testing.T) {
	p := ledger.NewProgress()
	p.ModuleMastery["numbers"] = 4
	p.ModuleMastery["colors"] = 1
	p.TotalAnswers = 5
	p.CorrectAnswers = 5

	rep := FallbackReport(p)

	if len(rep.Strengths) != 1 || !strings.Contains(rep.Strengths[0], "numbers") {
		t.Errorf("expected numbers as strength, got %v", rep.Strengths)
	}
	if len(rep.ImprovementAreas) != 1 || !strings.Contains(rep.ImprovementAreas[0], "colors") {
		t.Errorf("expected colors as improvement area, got %v", rep.ImprovementAreas)
	}
	for _, topic := range rep.RecommendedTopics {
		if topic == "numbers" || topic == "colors" {
			t.Errorf("attempted module %q must not be recommended", topic)
		}
	}
}

func TestFallbackReport_AccuracyBands(t *testing.T) {
	cases := []struct {
		name    string
		correct int
		total   int
		wantTip string
	}{
		{"high", 9, 10, "harder difficulty"},
		{"mid", 6, 10, "Steady progress"},
		{"low", 2, 10, "easier difficulty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ledger.NewProgress()
			p.CorrectAnswers = tc.correct
			p.TotalAnswers = tc.total

			rep := FallbackReport(p)
			if !strings.Contains(rep.Tips[0], tc.wantTip) {
				t.Errorf("expected tip containing %q, got %q", tc.wantTip, rep.Tips[0])
			}
		})
	}
}

func assertWellFormed(t *testing.T, rep Report) {
	t.Helper()
	check := func(name string, items []string, max int) {
		if len(items) == 0 {
			t.Errorf("%s must never be empty", name)
		}
		if len(items) > max {
			t.Errorf("%s exceeds bound: %d > %d", name, len(items), max)
		}
	}
	check("strengths", rep.Strengths, maxStrengths)
	check("improvement areas", rep.ImprovementAreas, maxImprovements)
	check("recommended topics", rep.RecommendedTopics, maxRecommended)
	check("tips", rep.Tips, maxTips)
}
