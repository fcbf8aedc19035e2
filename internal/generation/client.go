package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/quizkid/internal/bank"
	"github.com/abhisek/quizkid/internal/llm"
	"github.com/abhisek/quizkid/internal/quiz"
)

// Client produces question batches from the generative-text collaborator,
// falling back to the curated bank when generation is unavailable or the
// reply fails validation. A nil provider means generation was never
// configured; every request then goes straight to the bank.
type Client struct {
	provider llm.Provider
	config   Config
}

// New creates a Client. provider may be nil when no credential is configured.
func New(provider llm.Provider, cfg Config) *Client {
	if cfg.SeedFn == nil {
		cfg.SeedFn = DefaultConfig().SeedFn
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}
	return &Client{provider: provider, config: cfg}
}

// questionItem is the raw per-question shape before validation.
// CorrectIndex is a pointer so a missing field is distinguishable from 0.
type questionItem struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	Topic        string   `json:"topic"`
	Difficulty   string   `json:"difficulty"`
}

// GenerateQuestions requests a question batch for the config. It never
// returns an error: any failure substitutes the bank's fallback set for
// cfg.Module under a deterministic seed. The failure kind is logged only.
func (c *Client) GenerateQuestions(ctx context.Context, cfg quiz.GenerationConfig) []quiz.Question {
	batch, failure := c.tryGenerate(ctx, cfg)
	if failure == nil {
		return batch
	}

	slog.Info("question generation fell back to bank",
		"module", cfg.Module,
		"kind", string(failure.Kind),
		"error", failure.Err,
	)

	return bank.FallbackQuestions(cfg.Module, c.config.SeedFn())
}

func (c *Client) tryGenerate(ctx context.Context, cfg quiz.GenerationConfig) ([]quiz.Question, *Failure) {
	if c.provider == nil {
		return nil, &Failure{Kind: FailureUnavailable}
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(cfg, c.config.BatchSize)},
		},
		Schema:      BatchSchema,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return nil, classify(err)
	}

	var items []questionItem
	if err := json.Unmarshal(resp.Content, &items); err != nil {
		return nil, &Failure{Kind: FailureParse, Err: err}
	}

	batch := make([]quiz.Question, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		q, ok := validateItem(item, cfg.Difficulty)
		if !ok {
			continue
		}
		// Drop duplicate prompts within a batch.
		if seen[q.Prompt] {
			continue
		}
		seen[q.Prompt] = true
		q.ID = uuid.NewString()
		batch = append(batch, q)
	}

	if len(batch) == 0 {
		return nil, &Failure{
			Kind: FailureValidation,
			Err:  fmt.Errorf("no valid questions in batch of %d", len(items)),
		}
	}

	return batch, nil
}

// validateItem checks one raw item against the acceptance rules: non-empty
// prompt, exactly 4 options, correct index in range, non-empty explanation.
// Difficulty falls back to the configured level when the source omitted or
// mangled it.
func validateItem(item questionItem, configured quiz.Difficulty) (quiz.Question, bool) {
	if item.Prompt == "" {
		return quiz.Question{}, false
	}
	if len(item.Options) != quiz.OptionCount {
		return quiz.Question{}, false
	}
	if item.CorrectIndex == nil {
		return quiz.Question{}, false
	}
	idx := *item.CorrectIndex
	if idx < 0 || idx >= quiz.OptionCount {
		return quiz.Question{}, false
	}
	if item.Explanation == "" {
		return quiz.Question{}, false
	}

	difficulty := quiz.Difficulty(item.Difficulty)
	if !difficulty.Valid() {
		difficulty = configured
	}

	return quiz.Question{
		Prompt:       item.Prompt,
		Options:      item.Options,
		CorrectIndex: idx,
		Explanation:  item.Explanation,
		Difficulty:   difficulty,
		Topic:        item.Topic,
	}, true
}
