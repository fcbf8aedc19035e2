package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// LoadProgress returns the persisted progress record for a child, or nil
// if none exists yet.
func (s *Store) LoadProgress(ctx context.Context, childID string) (*ProgressRecord, error) {
	var rec ProgressRecord
	var mastery, achievements, unlocks, topics string

	err := s.db.QueryRowContext(ctx,
		`SELECT child_id, total_points, correct_answers, total_answers, current_streak,
		        module_mastery, achievements, unlocks, recent_topics, updated_at
		 FROM progress WHERE child_id = ?`, childID,
	).Scan(&rec.ChildID, &rec.TotalPoints, &rec.CorrectAnswers, &rec.TotalAnswers,
		&rec.CurrentStreak, &mastery, &achievements, &unlocks, &topics, &rec.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}

	if err := json.Unmarshal([]byte(mastery), &rec.ModuleMastery); err != nil {
		return nil, fmt.Errorf("unmarshal module mastery: %w", err)
	}
	if err := json.Unmarshal([]byte(achievements), &rec.Achievements); err != nil {
		return nil, fmt.Errorf("unmarshal achievements: %w", err)
	}
	if err := json.Unmarshal([]byte(unlocks), &rec.Unlocks); err != nil {
		return nil, fmt.Errorf("unmarshal unlocks: %w", err)
	}
	if err := json.Unmarshal([]byte(topics), &rec.RecentTopics); err != nil {
		return nil, fmt.Errorf("unmarshal recent topics: %w", err)
	}

	return &rec, nil
}

// SaveProgress upserts the progress record for a child.
func (s *Store) SaveProgress(ctx context.Context, rec ProgressRecord) error {
	mastery, err := json.Marshal(rec.ModuleMastery)
	if err != nil {
		return fmt.Errorf("marshal module mastery: %w", err)
	}
	achievements, err := json.Marshal(rec.Achievements)
	if err != nil {
		return fmt.Errorf("marshal achievements: %w", err)
	}
	unlocks, err := json.Marshal(rec.Unlocks)
	if err != nil {
		return fmt.Errorf("marshal unlocks: %w", err)
	}
	topics, err := json.Marshal(rec.RecentTopics)
	if err != nil {
		return fmt.Errorf("marshal recent topics: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO progress (child_id, total_points, correct_answers, total_answers,
		                       current_streak, module_mastery, achievements, unlocks,
		                       recent_topics, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(child_id) DO UPDATE SET
		   total_points = excluded.total_points,
		   correct_answers = excluded.correct_answers,
		   total_answers = excluded.total_answers,
		   current_streak = excluded.current_streak,
		   module_mastery = excluded.module_mastery,
		   achievements = excluded.achievements,
		   unlocks = excluded.unlocks,
		   recent_topics = excluded.recent_topics,
		   updated_at = excluded.updated_at`,
		rec.ChildID, rec.TotalPoints, rec.CorrectAnswers, rec.TotalAnswers,
		rec.CurrentStreak, string(mastery), string(achievements), string(unlocks),
		string(topics), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}
