package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// CreateChild inserts a new child profile.
func (s *Store) CreateChild(ctx context.Context, c Child) error {
	interests, err := json.Marshal(c.Interests)
	if err != nil {
		return fmt.Errorf("marshal interests: %w", err)
	}

	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO children (id, user_id, name, age, interests, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Name, c.Age, string(interests), createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert child: %w", err)
	}
	return nil
}

// GetChild returns a child profile by ID, or nil if not found.
func (s *Store) GetChild(ctx context.Context, id string) (*Child, error) {
	var c Child
	var interests string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, age, interests, created_at
		 FROM children WHERE id = ?`, id,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Age, &interests, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query child: %w", err)
	}
	if err := json.Unmarshal([]byte(interests), &c.Interests); err != nil {
		return nil, fmt.Errorf("unmarshal interests: %w", err)
	}
	return &c, nil
}

// ListChildren returns all child profiles belonging to the given user.
func (s *Store) ListChildren(ctx context.Context, userID string) ([]Child, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, age, interests, created_at
		 FROM children WHERE user_id = ? ORDER BY created_at`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query children: %w", err)
	}
	defer rows.Close()

	var children []Child
	for rows.Next() {
		var c Child
		var interests string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Age, &interests, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan child: %w", err)
		}
		if err := json.Unmarshal([]byte(interests), &c.Interests); err != nil {
			return nil, fmt.Errorf("unmarshal interests: %w", err)
		}
		children = append(children, c)
	}
	return children, rows.Err()
}
