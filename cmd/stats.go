package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/studyroom/quizcore/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats [session-id]",
	Short: "Show local accuracy for a session",
	Long:  "Show recorded accuracy from the local answer log, for the given session or the most recent one.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		var sessionID int64
		if len(args) == 1 {
			sessionID, err = strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("session id %q is not a number", args[0])
			}
		} else {
			snap, err := st.SnapshotRepo().Latest(ctx)
			if err != nil {
				return err
			}
			if snap == nil {
				fmt.Println("No sessions recorded yet.")
				return nil
			}
			sessionID = snap.SessionID
		}

		correct, total, err := st.EventRepo().SessionAccuracy(ctx, sessionID)
		if err != nil {
			return err
		}
		if total == 0 {
			fmt.Printf("No answers recorded for session %d.\n", sessionID)
			return nil
		}
		fmt.Println(theme.Title.Render(fmt.Sprintf("Session %d", sessionID)))
		fmt.Println(theme.Body.Render(fmt.Sprintf("  %d/%d correct (%.0f%%)", correct, total, 100*float64(correct)/float64(total))))
		return nil
	},
}
