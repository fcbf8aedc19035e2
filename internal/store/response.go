package store

import (
	"context"
	"fmt"
	"time"
)

// AppendResponse records a single question response.
func (s *Store) AppendResponse(ctx context.Context, resp Response) error {
	answeredAt := resp.AnsweredAt
	if answeredAt.IsZero() {
		answeredAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO responses (session_id, question_id, prompt, topic,
		                        selected_index, correct_index, correct, answered_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		resp.SessionID, resp.QuestionID, resp.Prompt, resp.Topic,
		resp.SelectedIndex, resp.CorrectIndex, resp.Correct, answeredAt,
	)
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}
	return nil
}

// ResponsesForSession returns all responses recorded for a session in order.
func (s *Store) ResponsesForSession(ctx context.Context, sessionID string) ([]Response, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, question_id, prompt, topic,
		        selected_index, correct_index, correct, answered_at
		 FROM responses WHERE session_id = ? ORDER BY id`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}
	defer rows.Close()

	var responses []Response
	for rows.Next() {
		var r Response
		if err := rows.Scan(&r.ID, &r.SessionID, &r.QuestionID, &r.Prompt, &r.Topic,
			&r.SelectedIndex, &r.CorrectIndex, &r.Correct, &r.AnsweredAt); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}
