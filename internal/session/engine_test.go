package session

import (
	"testing"
	"time"

	"github.com/abhisek/quizkid/internal/analytics"
	"github.com/abhisek/quizkid/internal/feedback"
	"github.com/abhisek/quizkid/internal/generation"
	"github.com/abhisek/quizkid/internal/ledger"
	"github.com/abhisek/quizkid/internal/store"
)

// newTestEngine runs without a provider or record store: question batches
// come from the bank under a fixed seed and persistence is skipped.
func newTestEngine(t *testing.T, age int) *Engine {
	t.Helper()

	genCfg := generation.DefaultConfig()
	genCfg.SeedFn = func() int64 { return 1 }

	return NewEngine(t.Context(), Config{
		Generator:  generation.New(nil, genCfg),
		Feedback:   feedback.NewGenerator(nil),
		Summarizer: analytics.NewSummarizer(nil),
	}, store.Child{ID: "c1", UserID: "u1", Name: "Mia", Age: age})
}

// waitState polls until the engine reaches want or the deadline passes.
func waitState(t *testing.T, e *Engine, want State) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if e.State() == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("engine did not reach %v, stuck in %v", want, e.State())
}

func TestEngine_StartsIdle(t *testing.T) {
	e := newTestEngine(t, 7)
	if e.State() != StateIdle {
		t.Fatalf("expected Idle, got %v", e.State())
	}
	p := e.Progress()
	if p.TotalPoints != 0 || p.TotalAnswers != 0 {
		t.Error("expected zeroed ledger")
	}
}

func TestEngine_SelectModuleLoadsQuiz(t *testing.T) {
	e := newTestEngine(t, 7)

	e.SelectModule(t.Context(), "numbers")
	waitState(t, e, StateQuizInProgress)

	// Age 7 gets a 4-question quiz.
	if got := e.QuestionCount(); got != 4 {
		t.Errorf("expected 4 questions for age 7, got %d", got)
	}
	q, idx, ok := e.CurrentQuestion()
	if !ok || idx != 0 {
		t.Fatalf("expected first question, got idx=%d ok=%v", idx, ok)
	}
	if q.Prompt == "" || len(q.Options) != 4 {
		t.Errorf("malformed question: %+v", q)
	}
	if e.Module() != "numbers" {
		t.Errorf("expected module numbers, got %q", e.Module())
	}
}

func TestEngine_UnknownModuleReturnsIdle(t *testing.T) {
	e := newTestEngine(t, 7)

	e.SelectModule(t.Context(), "astrophysics")
	waitState(t, e, StateIdle)

	if _, _, ok := e.CurrentQuestion(); ok {
		t.Error("no quiz should be active")
	}
}

func TestEngine_AnswerUpdatesLedger(t *testing.T) {
	e := newTestEngine(t, 7)
	e.SelectModule(t.Context(), "colors")
	waitState(t, e, StateQuizInProgress)

	q, _, _ := e.CurrentQuestion()
	reveal, ok := e.Answer(t.Context(), q.CorrectIndex)
	if !ok {
		t.Fatal("expected answer to be applied")
	}
	if !reveal.Correct {
		t.Error("expected correct reveal")
	}
	if reveal.Explanation != q.Explanation {
		t.Error("reveal must carry the question explanation")
	}
	if e.State() != StateAnswerRevealed {
		t.Fatalf("expected AnswerRevealed, got %v", e.State())
	}

	p := e.Progress()
	if p.TotalPoints != ledger.PointsPerCorrect {
		t.Errorf("expected %d points, got %d", ledger.PointsPerCorrect, p.TotalPoints)
	}
	if p.CurrentStreak != 1 {
		t.Errorf("expected streak 1, got %d", p.CurrentStreak)
	}
}

func TestEngine_SecondAnswerIsNoOp(t *testing.T) {
	e := newTestEngine(t, 7)
	e.SelectModule(t.Context(), "colors")
	waitState(t, e, StateQuizInProgress)

	q, _, _ := e.CurrentQuestion()
	if _, ok := e.Answer(t.Context(), q.CorrectIndex); !ok {
		t.Fatal("first answer must apply")
	}
	if _, ok := e.Answer(t.Context(), q.CorrectIndex); ok {
		t.Error("second answer for the same question must be a no-op")
	}

	p := e.Progress()
	if p.TotalAnswers != 1 {
		t.Errorf("expected 1 recorded answer, got %d", p.TotalAnswers)
	}
}

func TestEngine_AnswerOutOfRangeIsNoOp(t *testing.T) {
	e := newTestEngine(t, 7)
	e.SelectModule(t.Context(), "colors")
	waitState(t, e, StateQuizInProgress)

	if _, ok := e.Answer(t.Context(), 9); ok {
		t.Error("out-of-range option must be a no-op")
	}
	if _, ok := e.Answer(t.Context(), -1); ok {
		t.Error("negative option must be a no-op")
	}
	if e.State() != StateQuizInProgress {
		t.Errorf("state must not change, got %v", e.State())
	}
}

func TestEngine_FeedbackSettles(t *testing.T) {
	e := newTestEngine(t, 7)
	e.SelectModule(t.Context(), "shapes")
	waitState(t, e, StateQuizInProgress)

	q, _, _ := e.CurrentQuestion()
	e.Answer(t.Context(), q.CorrectIndex)

	// The pool fallback settles almost immediately.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if fb, ok := e.Feedback(); ok {
			if fb.Message == "" {
				t.Error("expected non-empty feedback message")
			}
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("feedback never settled")
}

func TestEngine_FullQuizReachesAnalytics(t *testing.T) {
	e := newTestEngine(t, 7)
	e.SelectModule(t.Context(), "numbers")
	waitState(t, e, StateQuizInProgress)

	total := e.QuestionCount()
	for i := 0; i < total; i++ {
		q, idx, ok := e.CurrentQuestion()
		if !ok || idx != i {
			t.Fatalf("expected question %d, got idx=%d ok=%v", i, idx, ok)
		}
		if _, ok := e.Answer(t.Context(), q.CorrectIndex); !ok {
			t.Fatalf("answer %d not applied", i)
		}
		e.Advance(t.Context())
	}

	waitState(t, e, StateAnalyticsReady)

	rep, ok := e.Report()
	if !ok {
		t.Fatal("expected a report")
	}
	if len(rep.Strengths) == 0 || len(rep.Tips) == 0 {
		t.Errorf("report sequences must not be empty: %+v", rep)
	}

	p := e.Progress()
	if p.TotalAnswers != total {
		t.Errorf("expected %d answers in ledger, got %d", total, p.TotalAnswers)
	}
	if p.TotalPoints != total*ledger.PointsPerCorrect {
		t.Errorf("expected %d points, got %d", total*ledger.PointsPerCorrect, p.TotalPoints)
	}
}

func TestEngine_AdvanceOutsideRevealIsNoOp(t *testing.T) {
	e := newTestEngine(t, 7)
	e.SelectModule(t.Context(), "numbers")
	waitState(t, e, StateQuizInProgress)

	e.Advance(t.Context())
	if e.State() != StateQuizInProgress {
		t.Errorf("advance before answering must be a no-op, got %v", e.State())
	}
}

func TestEngine_GoHomePreservesLedger(t *testing.T) {
	e := newTestEngine(t, 7)
	e.SelectModule(t.Context(), "animals")
	waitState(t, e, StateQuizInProgress)

	q, _, _ := e.CurrentQuestion()
	e.Answer(t.Context(), q.CorrectIndex)

	e.GoHome()

	if e.State() != StateIdle {
		t.Fatalf("expected Idle, got %v", e.State())
	}
	if _, _, ok := e.CurrentQuestion(); ok {
		t.Error("quiz state must be discarded")
	}
	p := e.Progress()
	if p.TotalPoints != ledger.PointsPerCorrect {
		t.Errorf("ledger must survive going home, got %d points", p.TotalPoints)
	}
}

func TestEngine_ReportSurvivesGoHome(t *testing.T) {
	e := newTestEngine(t, 5)
	e.SelectModule(t.Context(), "letters")
	waitState(t, e, StateQuizInProgress)

	total := e.QuestionCount()
	for i := 0; i < total; i++ {
		q, _, _ := e.CurrentQuestion()
		e.Answer(t.Context(), q.CorrectIndex)
		e.Advance(t.Context())
	}
	waitState(t, e, StateAnalyticsReady)

	e.GoHome()
	if _, ok := e.Report(); !ok {
		t.Error("report must survive going home")
	}

	e.DismissReport()
	if _, ok := e.Report(); ok {
		t.Error("dismissed report must be gone")
	}
}

func TestEngine_NewSelectionSupersedesPending(t *testing.T) {
	e := newTestEngine(t, 7)

	// The second selection lands before the first settles; only the
	// second module's quiz may surface.
	e.SelectModule(t.Context(), "numbers")
	e.SelectModule(t.Context(), "shapes")
	waitState(t, e, StateQuizInProgress)

	if e.Module() != "shapes" {
		t.Fatalf("expected shapes, got %q", e.Module())
	}
}

func TestEngine_GoHomeInvalidatesPendingLoad(t *testing.T) {
	e := newTestEngine(t, 7)

	e.SelectModule(t.Context(), "numbers")
	e.GoHome()

	// A stale batch arriving later must not restart the quiz.
	time.Sleep(50 * time.Millisecond)
	if e.State() != StateIdle {
		t.Errorf("expected Idle after GoHome, got %v", e.State())
	}
}

func TestEngine_NotifyDeliversEvents(t *testing.T) {
	events := make(chan Event, 32)

	genCfg := generation.DefaultConfig()
	genCfg.SeedFn = func() int64 { return 1 }
	e := NewEngine(t.Context(), Config{
		Generator:  generation.New(nil, genCfg),
		Feedback:   feedback.NewGenerator(nil),
		Summarizer: analytics.NewSummarizer(nil),
		Notify:     func(ev Event) { events <- ev },
	}, store.Child{ID: "c1", UserID: "u1", Name: "Mia", Age: 7})

	e.SelectModule(t.Context(), "numbers")
	waitState(t, e, StateQuizInProgress)

	sawReady := false
	deadline := time.After(2 * time.Second)
	for !sawReady {
		select {
		case ev := <-events:
			if ev.Kind == EventQuestionsReady {
				sawReady = true
			}
		case <-deadline:
			t.Fatal("never saw EventQuestionsReady")
		}
	}
}

func TestEngine_LoadsPersistedProgress(t *testing.T) {
	rec := store.ProgressRecord{
		ChildID:      "c1",
		TotalPoints:  60,
		Achievements: []string{"First Game Unlocked!"},
		Unlocks:      []string{"memory_game"},
	}
	p := progressFromRecord(rec)
	if p.TotalPoints != 60 {
		t.Errorf("expected 60 points, got %d", p.TotalPoints)
	}
	if !p.HasUnlock("memory_game") {
		t.Error("expected unlock restored")
	}

	back := progressToRecord("c1", p)
	if back.TotalPoints != 60 || len(back.Unlocks) != 1 {
		t.Errorf("roundtrip lost data: %+v", back)
	}
}
