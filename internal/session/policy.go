package session

import "github.com/abhisek/quizkid/internal/quiz"

// QuestionCountForAge returns how many questions a quiz serves for a child
// of the given age. The count is a non-decreasing step function of age:
// younger children get shorter quizzes.
func QuestionCountForAge(age int) int {
	switch {
	case age <= 5:
		return 3
	case age <= 7:
		return 4
	case age <= 9:
		return 5
	default:
		return 6
	}
}

// DifficultyForAge returns the generation difficulty for a child's age.
func DifficultyForAge(age int) quiz.Difficulty {
	switch {
	case age <= 6:
		return quiz.DifficultyEasy
	case age <= 9:
		return quiz.DifficultyMedium
	default:
		return quiz.DifficultyHard
	}
}
