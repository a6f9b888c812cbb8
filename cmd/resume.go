package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/studyroom/quizcore/internal/question"
	"github.com/studyroom/quizcore/internal/session"
)

var resumeCmd = &cobra.Command{
	Use:   "resume [session-id]",
	Short: "Resume an interrupted session",
	Long:  "Resume a session by id, or the most recently played one when no id is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var sessionID int64
		if len(args) == 1 {
			sessionID, err = strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("session id %q is not a number", args[0])
			}
		} else {
			st, err := openStore(cfg)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			snap, err := st.SnapshotRepo().Latest(cmd.Context())
			st.Close()
			if err != nil {
				return err
			}
			if snap == nil {
				fmt.Println("Nothing to resume — start with: quizcore play")
				return nil
			}
			sessionID = snap.SessionID
		}

		kindFlag, _ := cmd.Flags().GetString("kind")
		kind, _ := question.ParseKind(kindFlag)

		return runQuiz(cmd, session.StartOptions{SessionID: sessionID, Kind: kind})
	},
}

func init() {
	resumeCmd.Flags().String("kind", "", "Expected quiz kind (redirects when the session differs)")
}
