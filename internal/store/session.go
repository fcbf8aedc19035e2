package store

import (
	"context"
	"fmt"
	"time"
)

// CreateSession inserts a new learning-session record.
func (s *Store) CreateSession(ctx context.Context, sess Session) error {
	startedAt := sess.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, child_id, module, started_at)
		 VALUES (?, ?, ?, ?)`,
		sess.ID, sess.ChildID, sess.Module, startedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// CompleteSession records the final totals for a session.
func (s *Store) CompleteSession(ctx context.Context, sess Session) error {
	completedAt := time.Now().UTC()
	if sess.CompletedAt != nil {
		completedAt = *sess.CompletedAt
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions
		 SET completed_at = ?, questions_answered = ?, correct_count = ?,
		     points = ?, duration_secs = ?
		 WHERE id = ?`,
		completedAt, sess.QuestionsAnswered, sess.CorrectCount,
		sess.Points, sess.DurationSecs, sess.ID,
	)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	return nil
}

// SessionStats aggregates completed-session totals for a child.
type SessionStats struct {
	Sessions          int
	QuestionsAnswered int
	CorrectCount      int
	Points            int
}

// StatsForChild returns aggregate totals across a child's completed sessions.
func (s *Store) StatsForChild(ctx context.Context, childID string) (*SessionStats, error) {
	var st SessionStats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(questions_answered), 0),
		        COALESCE(SUM(correct_count), 0), COALESCE(SUM(points), 0)
		 FROM sessions WHERE child_id = ? AND completed_at IS NOT NULL`, childID,
	).Scan(&st.Sessions, &st.QuestionsAnswered, &st.CorrectCount, &st.Points)
	if err != nil {
		return nil, fmt.Errorf("query session stats: %w", err)
	}
	return &st, nil
}
