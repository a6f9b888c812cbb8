package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyroom/quizcore/internal/cache"
	"github.com/studyroom/quizcore/internal/question"
	"github.com/studyroom/quizcore/internal/session"
	"github.com/studyroom/quizcore/internal/ui/theme"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play today's quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		kindFlag, _ := cmd.Flags().GetString("kind")
		kind, ok := question.ParseKind(kindFlag)
		if !ok {
			return fmt.Errorf("unknown quiz kind %q (try ox, choice or initials)", kindFlag)
		}
		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runQuiz(cmd, session.StartOptions{Role: cfg.Role, Date: date, Kind: kind})
	},
}

func init() {
	playCmd.Flags().String("kind", "ox", "Quiz kind: ox, choice or initials")
	playCmd.Flags().String("date", "", "Plan date (YYYY-MM-DD, default today)")
}

// runQuiz drives one full session in the terminal: load, answer every
// question, submit, and optionally retry the wrong ones.
func runQuiz(cmd *cobra.Command, opts session.StartOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	client, err := newClient(cmd, cfg)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	orch := session.New(client, cache.New(cfg.CacheTTL), st.SnapshotRepo(), st.EventRepo())
	orch.Logf = verboseLogf(cmd)
	orch.ConfigureRetryPolling(cfg.RetryWrongPolls, cfg.RetryWrongWait)

	if err := orch.Start(ctx, opts); err != nil {
		var ws *session.ErrWrongScreen
		if errors.As(err, &ws) {
			fmt.Printf("Session %d is a %s quiz — open it with --kind %s\n",
				ws.SessionID, ws.Got, strings.ToLower(string(ws.Got)))
			return nil
		}
		return err
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		qs, err := orch.Load(ctx)
		if err != nil {
			return err
		}
		fmt.Println(theme.Title.Render(fmt.Sprintf("Session %d — %d questions", orch.SessionID(), len(qs))))

		for pos := 1; pos <= len(qs); pos++ {
			if orch.Marks()[pos-1] != "" {
				continue // restored from a previous run
			}
			pick, ok := promptPick(in, pos, qs[pos-1])
			if !ok {
				fmt.Println(theme.Hint.Render("Progress saved. Resume with: quizcore resume"))
				return nil
			}
			verdict, err := orch.Answer(ctx, pos, pick)
			if err != nil {
				return err
			}
			fmt.Println(theme.MarkStyle(string(verdict)).Render("  " + string(verdict)))
		}

		res, err := orch.Submit(ctx)
		if err != nil {
			return err
		}
		fmt.Println(theme.Card.Render(fmt.Sprintf("Result: %d/%d correct in %s",
			res.Correct, res.Total, res.Elapsed.Round(time.Second))))

		if len(res.Wrong) == 0 {
			fmt.Println(theme.Correct.Render("Perfect run!"))
			return nil
		}
		fmt.Printf("Retry the %d wrong one(s)? [y/N] ", len(res.Wrong))
		if !in.Scan() || !strings.EqualFold(strings.TrimSpace(in.Text()), "y") {
			return nil
		}
		retry, err := orch.RetryWrong(ctx)
		if err != nil {
			return err
		}
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("Retry session %d (%d questions)", retry.NewSessionID, retry.QuestionCount)))
	}
}

// promptPick renders one question and reads the user's answer. ok is
// false when input ends or the user quits.
func promptPick(in *bufio.Scanner, pos int, q question.Question) (session.Pick, bool) {
	fmt.Println()
	fmt.Println(theme.Body.Render(fmt.Sprintf("%d. %s", pos, q.Text)))

	for {
		switch q.Kind {
		case question.KindOX:
			fmt.Print(theme.Hint.Render("  answer [o/x, q to quit]: "))
		case question.KindInitials:
			hint := strings.Join(q.Initials, " ")
			fmt.Println(theme.Choice.Render("hint: " + hint))
			fmt.Print(theme.Hint.Render("  answer [text, q to quit]: "))
		default:
			for i, c := range q.Choices {
				fmt.Println(theme.Choice.Render(fmt.Sprintf("%d) %s", i+1, c)))
			}
			fmt.Print(theme.Hint.Render("  answer [number, q to quit]: "))
		}

		if !in.Scan() {
			return session.Pick{}, false
		}
		text := strings.TrimSpace(in.Text())
		if strings.EqualFold(text, "q") {
			return session.Pick{}, false
		}

		switch q.Kind {
		case question.KindOX:
			if m, ok := question.ParseOXToken(text); ok {
				return session.Pick{Mark: m}, true
			}
		case question.KindInitials:
			if text != "" {
				return session.Pick{Answer: text}, true
			}
		default:
			if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(q.Choices) {
				return session.Pick{Index: n - 1}, true
			}
		}
		fmt.Println(theme.Hint.Render("  didn't catch that, try again"))
	}
}
