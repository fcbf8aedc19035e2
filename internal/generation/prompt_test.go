package generation

import (
	"strings"
	"testing"

	"github.com/abhisek/quizkid/internal/quiz"
)

func TestBuildUserMessage_MinimalContext(t *testing.T) {
	cfg := quiz.GenerationConfig{
		Module:     "letters",
		Difficulty: quiz.DifficultyEasy,
		ChildAge:   5,
	}
	msg := buildUserMessage(cfg, 8)

	if !strings.Contains(msg, "Module: letters") {
		t.Error("missing module")
	}
	if !strings.Contains(msg, "Difficulty: easy") {
		t.Error("missing difficulty")
	}
	if !strings.Contains(msg, "Child age: 5") {
		t.Error("missing age")
	}
	if !strings.Contains(msg, "Questions wanted: 8") {
		t.Error("missing count")
	}
	if !strings.Contains(msg, "Recently covered topics (most recent first):\nNone") {
		t.Error("expected 'None' for empty topic history")
	}
	if strings.Contains(msg, "The child likes") {
		t.Error("interests section must be absent when none are set")
	}
}

func TestBuildUserMessage_TopicsAndInterests(t *testing.T) {
	cfg := quiz.GenerationConfig{
		Module:         "animals",
		Difficulty:     quiz.DifficultyMedium,
		ChildAge:       8,
		PreviousTopics: []string{"farm animals", "ocean animals"},
		Interests:      []string{"dinosaurs", "trains"},
	}
	msg := buildUserMessage(cfg, 8)

	if !strings.Contains(msg, "- farm animals") || !strings.Contains(msg, "- ocean animals") {
		t.Error("missing topic history")
	}
	if !strings.Contains(msg, "The child likes: dinosaurs, trains") {
		t.Error("missing interests")
	}
}

func TestBuildUserMessage_TopicHistoryBounded(t *testing.T) {
	topics := make([]string, quiz.MaxPreviousTopics+5)
	for i := range topics {
		topics[i] = "topic"
	}
	cfg := quiz.GenerationConfig{
		Module:         "numbers",
		Difficulty:     quiz.DifficultyEasy,
		ChildAge:       6,
		PreviousTopics: topics,
	}
	msg := buildUserMessage(cfg, 8)

	if got := strings.Count(msg, "- topic"); got != quiz.MaxPreviousTopics {
		t.Errorf("expected %d topic lines, got %d", quiz.MaxPreviousTopics, got)
	}
}

func TestBatchSchema_OnlyPromptRequired(t *testing.T) {
	items, ok := BatchSchema.Definition["items"].(map[string]any)
	if !ok {
		t.Fatal("expected items object in batch schema")
	}
	required, ok := items["required"].([]any)
	if !ok || len(required) != 1 || required[0] != "prompt" {
		t.Errorf("schema must require only the prompt, got %v", items["required"])
	}
}
