package store

import (
	"context"
	"time"
)

// Child is a child profile scoped to an authenticated user.
type Child struct {
	ID        string
	UserID    string
	Name      string
	Age       int
	Interests []string
	CreatedAt time.Time
}

// ProgressRecord is the persisted form of a child's progress ledger.
type ProgressRecord struct {
	ChildID        string
	TotalPoints    int
	CorrectAnswers int
	TotalAnswers   int
	CurrentStreak  int
	ModuleMastery  map[string]int
	Achievements   []string
	Unlocks        []string
	RecentTopics   []string
	UpdatedAt      time.Time
}

// Session is a learning-session record.
type Session struct {
	ID                string
	ChildID           string
	Module            string
	StartedAt         time.Time
	CompletedAt       *time.Time
	QuestionsAnswered int
	CorrectCount      int
	Points            int
	DurationSecs      int
}

// Response is a single question-response record within a session.
type Response struct {
	ID            int64
	SessionID     string
	QuestionID    string
	Prompt        string
	Topic         string
	SelectedIndex int
	CorrectIndex  int
	Correct       bool
	AnsweredAt    time.Time
}

// LLMRequestEventData captures the data for a single model request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored model request event.
type LLMRequestEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMEventRepo provides append access to model request events.
type LLMEventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// Repo is the record-store surface consumed by the session engine.
// The engine treats every returned error as non-fatal.
type Repo interface {
	LLMEventRepo

	CreateChild(ctx context.Context, c Child) error
	GetChild(ctx context.Context, id string) (*Child, error)
	ListChildren(ctx context.Context, userID string) ([]Child, error)

	LoadProgress(ctx context.Context, childID string) (*ProgressRecord, error)
	SaveProgress(ctx context.Context, rec ProgressRecord) error

	CreateSession(ctx context.Context, sess Session) error
	CompleteSession(ctx context.Context, sess Session) error

	AppendResponse(ctx context.Context, resp Response) error
}

var _ Repo = (*Store)(nil)
