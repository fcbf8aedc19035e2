package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizkid/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress for each child profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		children, err := s.ListChildren(ctx, localUserID())
		if err != nil {
			return fmt.Errorf("list children: %w", err)
		}
		if len(children) == 0 {
			fmt.Println("No profiles yet. Run `quizkid play` to get started.")
			return nil
		}

		for i, child := range children {
			if i > 0 {
				fmt.Println()
			}
			if err := printChildStats(ctx, s, child); err != nil {
				return err
			}
		}
		return nil
	},
}

func printChildStats(ctx context.Context, s *store.Store, child store.Child) error {
	stats, err := s.StatsForChild(ctx, child.ID)
	if err != nil {
		return fmt.Errorf("stats for %s: %w", child.Name, err)
	}
	rec, err := s.LoadProgress(ctx, child.ID)
	if err != nil {
		return fmt.Errorf("progress for %s: %w", child.Name, err)
	}

	fmt.Printf("%s (age %d)\n", child.Name, child.Age)
	fmt.Println(strings.Repeat("─", 48))
	fmt.Printf("Sessions:  %d\n", stats.Sessions)
	fmt.Printf("Answered:  %d (%d correct)\n", stats.QuestionsAnswered, stats.CorrectCount)
	fmt.Printf("Points:    %d\n", stats.Points)

	if rec == nil {
		return nil
	}
	fmt.Printf("Streak:    %d\n", rec.CurrentStreak)
	if len(rec.Unlocks) > 0 {
		fmt.Printf("Unlocked:  %s\n", strings.Join(rec.Unlocks, ", "))
	}
	if len(rec.Achievements) > 0 {
		fmt.Printf("Badges:    %s\n", strings.Join(rec.Achievements, ", "))
	}
	if len(rec.ModuleMastery) > 0 {
		fmt.Println("Topics:")
		for module, count := range rec.ModuleMastery {
			fmt.Printf("  %-10s %d correct\n", module, count)
		}
	}
	return nil
}
