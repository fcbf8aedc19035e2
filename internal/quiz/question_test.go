package quiz

import "testing"

func TestDifficultyValid(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if !d.Valid() {
			t.Errorf("expected %q to be valid", d)
		}
	}
	for _, d := range []Difficulty{"", "impossible", "EASY"} {
		if d.Valid() {
			t.Errorf("expected %q to be invalid", d)
		}
	}
}
