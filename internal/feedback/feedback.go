package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/abhisek/quizkid/internal/llm"
)

// Kind distinguishes feedback for correct and incorrect answers.
type Kind string

const (
	KindCorrect   Kind = "correct"
	KindIncorrect Kind = "incorrect"
)

// Result is a short feedback message shown after an answer.
type Result struct {
	Message string
	Emoji   string
	Kind    Kind
}

// Schema defines the JSON shape of a generated feedback reply.
var Schema = &llm.Schema{
	Name:        "quiz-feedback",
	Description: "A short encouragement message for a child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "One short sentence of feedback, warm and specific",
			},
			"emoji": map[string]any{
				"type":        "string",
				"description": "A single emoji matching the mood",
			},
		},
		"required": []any{"message", "emoji"},
	},
}

const feedbackSystemPrompt = `You write one-sentence feedback for a child answering quiz questions.
Be warm and encouraging. Use the child's name. Never scold.
For a wrong answer, keep spirits up and hint that trying again is good.
For a streak, celebrate it. Respond with a JSON object only.`

// Generator produces feedback messages with the same silent-fallback policy
// as question generation: any upstream failure selects from fixed local
// pools instead. A nil provider always uses the pools.
type Generator struct {
	provider llm.Provider

	// nextPick advances on every fallback selection so successive picks
	// from the same pool differ.
	nextPick atomic.Uint64
}

// NewGenerator creates a feedback Generator. provider may be nil.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// StreakCelebration is the streak length at which fallback feedback switches
// to the celebration pool.
const StreakCelebration = 3

// Generate returns feedback for an answer outcome. Never fails: upstream
// errors fall back to the local message pools in O(1).
func (g *Generator) Generate(ctx context.Context, correct bool, name string, streak int) Result {
	if g.provider != nil {
		if res, err := g.tryGenerate(ctx, correct, name, streak); err == nil {
			return res
		} else {
			slog.Debug("feedback generation fell back to local pool", "error", err)
		}
	}

	return g.fallback(correct, streak)
}

func (g *Generator) tryGenerate(ctx context.Context, correct bool, name string, streak int) (Result, error) {
	ctx = llm.WithPurpose(ctx, "feedback-gen")

	outcome := "answered correctly"
	if !correct {
		outcome = "answered incorrectly"
	}
	user := fmt.Sprintf("Child's name: %s\nThe child just %s.\nCurrent streak: %d correct in a row.",
		name, outcome, streak)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		Schema:      Schema,
		MaxTokens:   128,
		Temperature: 0.9,
	})
	if err != nil {
		return Result{}, err
	}

	var raw struct {
		Message string `json:"message"`
		Emoji   string `json:"emoji"`
	}
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Result{}, fmt.Errorf("parse feedback reply: %w", err)
	}
	if raw.Message == "" {
		return Result{}, fmt.Errorf("empty feedback message")
	}

	kind := KindCorrect
	if !correct {
		kind = KindIncorrect
	}
	return Result{Message: raw.Message, Emoji: raw.Emoji, Kind: kind}, nil
}

// fallback picks from the local pools using a monotonically advancing index,
// so back-to-back picks from the same pool are not identical.
func (g *Generator) fallback(correct bool, streak int) Result {
	pick := g.nextPick.Add(1)

	switch {
	case correct && streak >= StreakCelebration:
		m := streakPool[int(pick)%len(streakPool)]
		return Result{Message: m.text, Emoji: m.emoji, Kind: KindCorrect}
	case correct:
		m := correctPool[int(pick)%len(correctPool)]
		return Result{Message: m.text, Emoji: m.emoji, Kind: KindCorrect}
	default:
		m := incorrectPool[int(pick)%len(incorrectPool)]
		return Result{Message: m.text, Emoji: m.emoji, Kind: KindIncorrect}
	}
}

type pooledMessage struct {
	text  string
	emoji string
}

var correctPool = []pooledMessage{
	{"Great job! You got it!", "🎉"},
	{"That's right! You're doing wonderfully!", "⭐"},
	{"Yes! What a smart answer!", "🌟"},
	{"Correct! Keep up the great work!", "👏"},
	{"You nailed it!", "💪"},
}

var incorrectPool = []pooledMessage{
	{"Good try! Let's look at the answer together.", "💛"},
	{"Not quite, but trying is how we learn!", "🌱"},
	{"Almost! You'll get the next one!", "🙂"},
	{"That's a tricky one. Keep going!", "🧡"},
	{"Nice effort! Every try makes you smarter!", "✨"},
}

var streakPool = []pooledMessage{
	{"You're on fire! What a streak!", "🔥"},
	{"Amazing! Another one right in a row!", "🚀"},
	{"Unstoppable! Your streak keeps growing!", "🏆"},
	{"Wow! You keep getting them right!", "🌈"},
}
