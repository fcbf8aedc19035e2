package generation

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizkid/internal/quiz"
)

const systemPrompt = `You are a friendly quiz maker creating questions for young children.

Rules:
- Generate multiple-choice questions for the given topic module, age, and difficulty.
- Keep the question text short, cheerful, and self-contained. Plain text only, no markup.
- Provide exactly 4 options where exactly one is correct. Distractors should be plausible, never silly filler.
- The explanation must be a single encouraging sentence a child can understand.
- Vary the position of the correct option across questions.
- Do not repeat topics the child covered recently unless asked to.
- Respond with a JSON array only.`

// buildUserMessage constructs the batch request prompt.
func buildUserMessage(cfg quiz.GenerationConfig, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Module: %s\n", cfg.Module)
	fmt.Fprintf(&b, "Difficulty: %s\n", cfg.Difficulty)
	fmt.Fprintf(&b, "Child age: %d\n", cfg.ChildAge)
	fmt.Fprintf(&b, "Questions wanted: %d\n", count)

	b.WriteString("\nRecently covered topics (most recent first):\n")
	if len(cfg.PreviousTopics) == 0 {
		b.WriteString("None\n")
	} else {
		topics := cfg.PreviousTopics
		if len(topics) > quiz.MaxPreviousTopics {
			topics = topics[:quiz.MaxPreviousTopics]
		}
		for _, t := range topics {
			fmt.Fprintf(&b, "- %s\n", t)
		}
	}

	if len(cfg.Interests) > 0 {
		fmt.Fprintf(&b, "\nThe child likes: %s. Weave these into question wording when natural.\n",
			strings.Join(cfg.Interests, ", "))
	}

	return b.String()
}
