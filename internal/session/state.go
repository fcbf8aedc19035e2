package session

// State is the session state machine position. Idle is reachable from every
// state; returning home discards quiz-local state but never the ledger.
type State int

const (
	StateIdle State = iota
	StateModuleSelected
	StateQuestionsLoading
	StateQuizInProgress
	StateAnswerRevealed
	StateQuizComplete
	StateAnalyticsLoading
	StateAnalyticsReady
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateModuleSelected:
		return "module_selected"
	case StateQuestionsLoading:
		return "questions_loading"
	case StateQuizInProgress:
		return "quiz_in_progress"
	case StateAnswerRevealed:
		return "answer_revealed"
	case StateQuizComplete:
		return "quiz_complete"
	case StateAnalyticsLoading:
		return "analytics_loading"
	case StateAnalyticsReady:
		return "analytics_ready"
	}
	return "unknown"
}

// EventKind labels engine notifications delivered to the presentation layer.
type EventKind int

const (
	// EventStateChanged fires on every state transition.
	EventStateChanged EventKind = iota

	// EventQuestionsReady fires when a question batch settles.
	EventQuestionsReady

	// EventFeedbackReady fires when a feedback message settles for the
	// currently revealed question.
	EventFeedbackReady

	// EventReportReady fires when the analytics report settles.
	EventReportReady
)

// Event is a notification from the engine to the presentation layer.
type Event struct {
	Kind  EventKind
	State State
}
