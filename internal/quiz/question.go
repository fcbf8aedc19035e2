package quiz

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// MaxPreviousTopics bounds the topic history carried in a generation config.
const MaxPreviousTopics = 10

// Difficulty grades a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty level.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is a single multiple-choice quiz question ready for display.
type Question struct {
	// ID is unique within a batch.
	ID string

	// Prompt is the question text shown to the child.
	Prompt string

	// Options holds exactly OptionCount answer choices in display order.
	Options []string

	// CorrectIndex indexes the correct member of Options. Always in [0,4).
	CorrectIndex int

	// Explanation is shown after the child answers.
	Explanation string

	// Difficulty grades the question.
	Difficulty Difficulty

	// Topic is the specific topic within the module, e.g. "vowels".
	Topic string
}

// GenerationConfig describes a question-batch request.
type GenerationConfig struct {
	// Module is the topic area, e.g. "letters" or "numbers".
	Module string

	// Difficulty is the requested level for the batch.
	Difficulty Difficulty

	// ChildAge tailors wording and difficulty. Never negative.
	ChildAge int

	// PreviousTopics lists recently covered topics, most recent first,
	// bounded to MaxPreviousTopics. Used to steer variety.
	PreviousTopics []string

	// Interests optionally personalize question wording.
	Interests []string
}
