package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizkid/internal/analytics"
	"github.com/abhisek/quizkid/internal/feedback"
	"github.com/abhisek/quizkid/internal/generation"
	"github.com/abhisek/quizkid/internal/ledger"
	"github.com/abhisek/quizkid/internal/quiz"
	"github.com/abhisek/quizkid/internal/store"
)

// Config wires the engine's collaborators. Repo may be nil; the engine then
// runs entirely on in-memory state.
type Config struct {
	Generator  *generation.Client
	Feedback   *feedback.Generator
	Summarizer *analytics.Summarizer
	Repo       store.Repo

	// FeedbackTimeout bounds how long the reveal screen waits for a
	// feedback message before the static explanation is shown instead.
	FeedbackTimeout time.Duration

	// PersistTimeout bounds each best-effort record-store write.
	PersistTimeout time.Duration

	// Notify, when set, receives engine events. Called outside the
	// engine lock; implementations must not call back into the engine
	// synchronously from the same goroutine delivery.
	Notify func(Event)
}

const (
	defaultFeedbackTimeout = 2500 * time.Millisecond
	defaultPersistTimeout  = 5 * time.Second
)

// Engine drives one child's quiz sessions through the state machine. It is
// the sole owner and writer of the child's progress ledger for the lifetime
// of a login; all mutation happens under its lock, synchronously with the
// answer-reveal transition.
type Engine struct {
	mu  sync.Mutex
	cfg Config

	child    store.Child
	progress ledger.Progress

	state      State
	module     string
	difficulty quiz.Difficulty
	quizLen    int

	questions []quiz.Question
	index     int

	// Session-local tallies for the aggregate persistence write.
	sessionAnswered int
	sessionCorrect  int

	// Per-question transient state, cleared on advance.
	answered        bool
	selected        int
	lastCorrect     bool
	feedbackMsg     *feedback.Result
	feedbackExpired bool
	feedbackSeq     uint64

	// genToken associates async results with the module selection that
	// requested them; stale-token results are discarded on arrival.
	genToken uint64

	sessionID    string
	sessionStart time.Time

	report *analytics.Report
}

// NewEngine constructs a per-child engine, loading the child's ledger from
// the record store when available and defaulting to zeros otherwise.
func NewEngine(ctx context.Context, cfg Config, child store.Child) *Engine {
	if cfg.FeedbackTimeout <= 0 {
		cfg.FeedbackTimeout = defaultFeedbackTimeout
	}
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = defaultPersistTimeout
	}

	e := &Engine{
		cfg:      cfg,
		child:    child,
		progress: ledger.NewProgress(),
		state:    StateIdle,
	}

	if cfg.Repo != nil {
		rec, err := cfg.Repo.LoadProgress(ctx, child.ID)
		if err != nil {
			slog.Warn("loading progress failed, starting from zeros",
				"child", child.ID, "error", err)
		} else if rec != nil {
			e.progress = progressFromRecord(*rec)
		}
	}

	return e
}

// State returns the current state machine position.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Progress returns a snapshot of the child's ledger.
func (e *Engine) Progress() ledger.Progress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.progress.Clone()
}

// Child returns the profile this engine is bound to.
func (e *Engine) Child() store.Child {
	return e.child
}

// Module returns the currently selected module, if any.
func (e *Engine) Module() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.module
}

// SelectModule starts a new quiz for the module. It is valid from every
// state: quiz-local state and any held report are discarded, the ledger is
// untouched. The question batch settles asynchronously; a newer selection
// supersedes the result of any still-pending one.
func (e *Engine) SelectModule(ctx context.Context, module string) {
	e.mu.Lock()

	e.genToken++
	token := e.genToken

	e.clearQuizLocked()
	e.report = nil

	e.module = module
	e.difficulty = DifficultyForAge(e.child.Age)
	e.quizLen = QuestionCountForAge(e.child.Age)
	e.sessionID = uuid.NewString()
	e.sessionStart = time.Now()
	e.state = StateModuleSelected

	genCfg := quiz.GenerationConfig{
		Module:         module,
		Difficulty:     e.difficulty,
		ChildAge:       e.child.Age,
		PreviousTopics: append([]string(nil), e.progress.RecentTopics...),
		Interests:      append([]string(nil), e.child.Interests...),
	}
	sessionID := e.sessionID

	e.state = StateQuestionsLoading
	e.mu.Unlock()
	e.notify(Event{Kind: EventStateChanged, State: StateQuestionsLoading})

	e.persist("create session", func(pctx context.Context, repo store.Repo) error {
		return repo.CreateSession(pctx, store.Session{
			ID:        sessionID,
			ChildID:   e.child.ID,
			Module:    module,
			StartedAt: time.Now().UTC(),
		})
	})

	go e.loadQuestions(ctx, token, genCfg)
}

func (e *Engine) loadQuestions(ctx context.Context, token uint64, genCfg quiz.GenerationConfig) {
	batch := e.cfg.Generator.GenerateQuestions(ctx, genCfg)

	e.mu.Lock()
	if token != e.genToken {
		// A newer selection superseded this request.
		e.mu.Unlock()
		return
	}

	if len(batch) == 0 {
		// Unknown module: a configuration error, not a runtime failure.
		slog.Error("no questions available for module", "module", genCfg.Module)
		e.clearQuizLocked()
		e.state = StateIdle
		e.mu.Unlock()
		e.notify(Event{Kind: EventStateChanged, State: StateIdle})
		return
	}

	if len(batch) > e.quizLen {
		batch = batch[:e.quizLen]
	}
	e.questions = batch
	e.index = 0
	e.state = StateQuizInProgress
	e.mu.Unlock()

	e.notify(Event{Kind: EventQuestionsReady, State: StateQuizInProgress})
	e.notify(Event{Kind: EventStateChanged, State: StateQuizInProgress})
}

// CurrentQuestion returns the active question and its position, or false
// when no quiz is in progress.
func (e *Engine) CurrentQuestion() (quiz.Question, int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateQuizInProgress && e.state != StateAnswerRevealed {
		return quiz.Question{}, 0, false
	}
	return e.questions[e.index], e.index, true
}

// QuestionCount returns the number of questions in the active quiz.
func (e *Engine) QuestionCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.questions)
}

// Reveal describes the outcome of an answer selection.
type Reveal struct {
	Correct      bool
	CorrectIndex int
	Explanation  string
}

// Answer records the child's option selection for the current question.
// A second selection for the same question is a no-op (ok is false). The
// ledger update happens synchronously; the response write and the feedback
// request settle in the background and never block the transition.
func (e *Engine) Answer(ctx context.Context, option int) (Reveal, bool) {
	e.mu.Lock()
	if e.state != StateQuizInProgress {
		e.mu.Unlock()
		return Reveal{}, false
	}
	q := e.questions[e.index]
	if option < 0 || option >= len(q.Options) {
		e.mu.Unlock()
		return Reveal{}, false
	}

	correct := option == q.CorrectIndex
	e.answered = true
	e.selected = option
	e.lastCorrect = correct
	e.sessionAnswered++
	if correct {
		e.sessionCorrect++
	}
	e.progress = ledger.ApplyOutcome(e.progress, e.module, correct, q.Topic)
	e.state = StateAnswerRevealed

	e.feedbackSeq++
	seq := e.feedbackSeq
	e.feedbackMsg = nil
	e.feedbackExpired = false

	streak := e.progress.CurrentStreak
	sessionID := e.sessionID
	e.mu.Unlock()

	e.notify(Event{Kind: EventStateChanged, State: StateAnswerRevealed})

	e.persist("append response", func(pctx context.Context, repo store.Repo) error {
		return repo.AppendResponse(pctx, store.Response{
			SessionID:     sessionID,
			QuestionID:    q.ID,
			Prompt:        q.Prompt,
			Topic:         q.Topic,
			SelectedIndex: option,
			CorrectIndex:  q.CorrectIndex,
			Correct:       correct,
			AnsweredAt:    time.Now().UTC(),
		})
	})

	go e.requestFeedback(ctx, seq, correct, streak)

	return Reveal{Correct: correct, CorrectIndex: q.CorrectIndex, Explanation: q.Explanation}, true
}

// requestFeedback races the feedback call against the bounded UI timeout.
// When the timeout wins, the reveal screen shows the static explanation
// instead; the late result is discarded rather than re-fetched.
func (e *Engine) requestFeedback(ctx context.Context, seq uint64, correct bool, streak int) {
	timer := time.AfterFunc(e.cfg.FeedbackTimeout, func() {
		e.mu.Lock()
		if seq == e.feedbackSeq && e.feedbackMsg == nil {
			e.feedbackExpired = true
		}
		e.mu.Unlock()
	})
	defer timer.Stop()

	fctx, cancel := context.WithTimeout(ctx, e.cfg.FeedbackTimeout)
	defer cancel()

	res := e.cfg.Feedback.Generate(fctx, correct, e.child.Name, streak)

	e.mu.Lock()
	if seq != e.feedbackSeq || e.state != StateAnswerRevealed || e.feedbackExpired {
		e.mu.Unlock()
		return
	}
	e.feedbackMsg = &res
	e.mu.Unlock()

	e.notify(Event{Kind: EventFeedbackReady, State: StateAnswerRevealed})
}

// Feedback returns the settled feedback message for the revealed question.
// ok is false while the message is pending or after the timeout elapsed; the
// caller then shows the question's explanation text instead.
func (e *Engine) Feedback() (feedback.Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateAnswerRevealed || e.feedbackMsg == nil {
		return feedback.Result{}, false
	}
	return *e.feedbackMsg, true
}

// Advance moves past the revealed answer: to the next question, or into
// completion and analytics when the quiz is done. No-op outside
// AnswerRevealed.
func (e *Engine) Advance(ctx context.Context) {
	e.mu.Lock()
	if e.state != StateAnswerRevealed {
		e.mu.Unlock()
		return
	}

	e.clearQuestionLocked()

	if e.index+1 < len(e.questions) {
		e.index++
		e.state = StateQuizInProgress
		e.mu.Unlock()
		e.notify(Event{Kind: EventStateChanged, State: StateQuizInProgress})
		return
	}

	e.state = StateQuizComplete
	token := e.genToken
	e.mu.Unlock()
	e.notify(Event{Kind: EventStateChanged, State: StateQuizComplete})

	e.completeQuiz(ctx, token)
}

// completeQuiz persists session totals and the ledger (best effort), then
// requests the analytics report regardless of persistence outcome.
func (e *Engine) completeQuiz(ctx context.Context, token uint64) {
	e.mu.Lock()
	if token != e.genToken || e.state != StateQuizComplete {
		e.mu.Unlock()
		return
	}

	answered := e.sessionAnswered
	correct := e.sessionCorrect
	points := correct * ledger.PointsPerCorrect

	progress := e.progress.Clone()
	sessionID := e.sessionID
	duration := int(time.Since(e.sessionStart).Seconds())
	e.state = StateAnalyticsLoading
	e.mu.Unlock()
	e.notify(Event{Kind: EventStateChanged, State: StateAnalyticsLoading})

	e.persist("complete session", func(pctx context.Context, repo store.Repo) error {
		now := time.Now().UTC()
		return repo.CompleteSession(pctx, store.Session{
			ID:                sessionID,
			ChildID:           e.child.ID,
			QuestionsAnswered: answered,
			CorrectCount:      correct,
			Points:            points,
			DurationSecs:      duration,
			CompletedAt:       &now,
		})
	})
	e.persist("save progress", func(pctx context.Context, repo store.Repo) error {
		return repo.SaveProgress(pctx, progressToRecord(e.child.ID, progress))
	})

	go func() {
		rep := e.cfg.Summarizer.Summarize(ctx, progress)

		e.mu.Lock()
		if token != e.genToken || e.state != StateAnalyticsLoading {
			e.mu.Unlock()
			return
		}
		e.report = &rep
		e.state = StateAnalyticsReady
		e.mu.Unlock()

		e.notify(Event{Kind: EventReportReady, State: StateAnalyticsReady})
		e.notify(Event{Kind: EventStateChanged, State: StateAnalyticsReady})
	}()
}

// Report returns the held analytics report, if any. The report survives a
// return home and is cleared by the next module selection or Dismiss.
func (e *Engine) Report() (analytics.Report, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.report == nil {
		return analytics.Report{}, false
	}
	return *e.report, true
}

// DismissReport drops the held analytics report.
func (e *Engine) DismissReport() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.report = nil
}

// GoHome returns to Idle from any state. Quiz-local state is discarded and
// pending async results are invalidated; the ledger and any held report
// survive.
func (e *Engine) GoHome() {
	e.mu.Lock()
	e.genToken++
	e.clearQuizLocked()
	e.state = StateIdle
	e.mu.Unlock()
	e.notify(Event{Kind: EventStateChanged, State: StateIdle})
}

// clearQuizLocked resets all quiz-local state. Caller holds the lock.
func (e *Engine) clearQuizLocked() {
	e.module = ""
	e.questions = nil
	e.index = 0
	e.sessionID = ""
	e.sessionAnswered = 0
	e.sessionCorrect = 0
	e.clearQuestionLocked()
}

// clearQuestionLocked resets per-question transient state. Caller holds the lock.
func (e *Engine) clearQuestionLocked() {
	e.answered = false
	e.selected = 0
	e.lastCorrect = false
	e.feedbackMsg = nil
	e.feedbackExpired = false
	e.feedbackSeq++
}

// persist runs a best-effort record-store write in the background. Failures
// are logged and never block or fail a state transition.
func (e *Engine) persist(op string, fn func(ctx context.Context, repo store.Repo) error) {
	if e.cfg.Repo == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), e.cfg.PersistTimeout)
		defer cancel()
		if err := fn(ctx, e.cfg.Repo); err != nil {
			slog.Warn("persistence failed", "op", op, "child", e.child.ID, "error", err)
		}
	}()
}

func (e *Engine) notify(ev Event) {
	if e.cfg.Notify != nil {
		e.cfg.Notify(ev)
	}
}
