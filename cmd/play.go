package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizkid/internal/analytics"
	"github.com/abhisek/quizkid/internal/bank"
	"github.com/abhisek/quizkid/internal/feedback"
	"github.com/abhisek/quizkid/internal/generation"
	"github.com/abhisek/quizkid/internal/llm"
	"github.com/abhisek/quizkid/internal/session"
	"github.com/abhisek/quizkid/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().String("child", "", "Child name (created on first use)")
	playCmd.Flags().Int("age", 7, "Child age (used when creating a profile)")
}

// settleWait bounds how long the driver waits for async settlement before
// giving up on a session phase.
const settleWait = 60 * time.Second

func runPlay(cmd *cobra.Command) error {
	ctx := context.Background()

	repo := openRepo(cmd)
	var records store.Repo
	if repo != nil {
		defer repo.Close()
		records = repo
	}

	provider := buildProvider(ctx, records)

	child, err := resolveChild(ctx, cmd, repo)
	if err != nil {
		return err
	}

	events := make(chan session.Event, 16)
	engine := session.NewEngine(ctx, session.Config{
		Generator:  generation.New(provider, generation.DefaultConfig()),
		Feedback:   feedback.NewGenerator(provider),
		Summarizer: analytics.NewSummarizer(provider),
		Repo:       records,
		Notify: func(ev session.Event) {
			select {
			case events <- ev:
			default:
			}
		},
	}, child)

	in := bufio.NewScanner(os.Stdin)
	fmt.Printf("Hi %s! Let's play.\n\n", child.Name)

	for {
		module, ok := pickModule(in)
		if !ok {
			printProgress(engine)
			fmt.Println("Bye!")
			return nil
		}

		engine.SelectModule(ctx, module)
		fmt.Println("Getting your questions ready...")
		if !waitForState(events, engine, session.StateQuizInProgress) {
			fmt.Println("Couldn't start a quiz for that topic. Try another one.")
			engine.GoHome()
			continue
		}

		runQuiz(ctx, in, engine, events)

		if waitForState(events, engine, session.StateAnalyticsReady) {
			printReport(engine)
		}
		engine.GoHome()
		fmt.Println()
	}
}

func runQuiz(ctx context.Context, in *bufio.Scanner, engine *session.Engine, events chan session.Event) {
	total := engine.QuestionCount()
	for {
		q, idx, ok := engine.CurrentQuestion()
		if !ok {
			return
		}

		fmt.Printf("\nQuestion %d of %d: %s\n", idx+1, total, q.Prompt)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}

		choice := readChoice(in, len(q.Options))
		reveal, applied := engine.Answer(ctx, choice)
		if !applied {
			continue
		}

		if reveal.Correct {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("The answer was: %s\n", q.Options[reveal.CorrectIndex])
		}

		// Show feedback when it settles in time, the explanation otherwise.
		if fb, ok := awaitFeedback(events, engine); ok {
			fmt.Printf("%s %s\n", fb.Emoji, fb.Message)
		} else {
			fmt.Println(reveal.Explanation)
		}

		engine.Advance(ctx)
		if engine.State() != session.StateQuizInProgress {
			return
		}
	}
}

func pickModule(in *bufio.Scanner) (string, bool) {
	modules := bank.Modules()
	fmt.Println("Pick a topic (or q to quit):")
	for i, m := range modules {
		fmt.Printf("  %d) %s\n", i+1, m)
	}
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return "", false
		}
		text := strings.TrimSpace(in.Text())
		if text == "q" || text == "quit" {
			return "", false
		}
		n, err := strconv.Atoi(text)
		if err == nil && n >= 1 && n <= len(modules) {
			return modules[n-1], true
		}
		fmt.Println("Pick a number from the list.")
	}
}

func readChoice(in *bufio.Scanner, options int) int {
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err == nil && n >= 1 && n <= options {
			return n - 1
		}
		fmt.Printf("Pick a number from 1 to %d.\n", options)
	}
}

// waitForState drains events until the engine reaches want, the engine
// returns to Idle, or the settle window elapses.
func waitForState(events chan session.Event, engine *session.Engine, want session.State) bool {
	deadline := time.After(settleWait)
	for {
		if s := engine.State(); s == want {
			return true
		} else if s == session.StateIdle {
			return false
		}
		select {
		case <-events:
		case <-deadline:
			return false
		}
	}
}

// awaitFeedback waits briefly for the feedback message; the engine enforces
// the real timeout, so a short poll loop here is enough.
func awaitFeedback(events chan session.Event, engine *session.Engine) (feedback.Result, bool) {
	deadline := time.After(3 * time.Second)
	for {
		if fb, ok := engine.Feedback(); ok {
			return fb, true
		}
		select {
		case ev := <-events:
			if ev.Kind == session.EventFeedbackReady {
				return engine.Feedback()
			}
		case <-deadline:
			return feedback.Result{}, false
		}
	}
}

func printProgress(engine *session.Engine) {
	p := engine.Progress()
	fmt.Printf("\nPoints: %d  Streak: %d  Correct: %d/%d\n",
		p.TotalPoints, p.CurrentStreak, p.CorrectAnswers, p.TotalAnswers)
	if unlocks := p.UnlockList(); len(unlocks) > 0 {
		fmt.Printf("Unlocked games: %s\n", strings.Join(unlocks, ", "))
	}
	if achievements := p.AchievementList(); len(achievements) > 0 {
		fmt.Printf("Achievements: %s\n", strings.Join(achievements, ", "))
	}
}

func printReport(engine *session.Engine) {
	rep, ok := engine.Report()
	if !ok {
		return
	}
	fmt.Println("\n--- Session summary ---")
	fmt.Println("Strengths:")
	for _, s := range rep.Strengths {
		fmt.Printf("  - %s\n", s)
	}
	fmt.Println("Practice next:")
	for _, s := range rep.ImprovementAreas {
		fmt.Printf("  - %s\n", s)
	}
	fmt.Println("Try these topics:")
	for _, s := range rep.RecommendedTopics {
		fmt.Printf("  - %s\n", s)
	}
	fmt.Println("Tips:")
	for _, s := range rep.Tips {
		fmt.Printf("  - %s\n", s)
	}
	printProgress(engine)
}

// openRepo opens the record store. Persistence is best effort: on failure
// the session runs with in-memory state only.
func openRepo(cmd *cobra.Command) *store.Store {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		slog.Warn("resolving database path failed, running without persistence", "error", err)
		return nil
	}
	s, err := store.Open(dbPath)
	if err != nil {
		slog.Warn("opening database failed, running without persistence", "error", err)
		return nil
	}
	return s
}

// buildProvider configures the generation collaborator. A missing or invalid
// credential is not an error; the engine then runs on fallback content.
func buildProvider(ctx context.Context, repo store.LLMEventRepo) llm.Provider {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			slog.Info("no generation credential configured, using fallback content")
			return nil
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, repo)
	if err != nil {
		slog.Warn("provider setup failed, using fallback content", "error", err)
		return nil
	}
	return provider
}

// resolveChild loads or creates the child profile scoped to the local user.
func resolveChild(ctx context.Context, cmd *cobra.Command, repo *store.Store) (store.Child, error) {
	name, _ := cmd.Flags().GetString("child")
	age, _ := cmd.Flags().GetInt("age")
	if name == "" {
		name = "Explorer"
	}
	if age < 0 {
		age = 0
	}

	child := store.Child{
		ID:     uuid.NewString(),
		UserID: localUserID(),
		Name:   name,
		Age:    age,
	}

	if repo == nil {
		return child, nil
	}

	existing, err := repo.ListChildren(ctx, child.UserID)
	if err == nil {
		for _, c := range existing {
			if c.Name == name {
				return c, nil
			}
		}
	}

	if err := repo.CreateChild(ctx, child); err != nil {
		slog.Warn("creating child profile failed, continuing in memory", "error", err)
	}
	return child, nil
}

// localUserID is the opaque authenticated-user identifier. The CLI driver
// stands in for the identity collaborator with the OS username.
func localUserID() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
