package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyroom/quizcore/internal/api"
	"github.com/studyroom/quizcore/internal/question"
	"github.com/studyroom/quizcore/internal/ui/theme"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the daily plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newClient(cmd, cfg)
		if err != nil {
			return err
		}

		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		fmt.Println(theme.Title.Render("Plan for " + date))
		for _, kind := range []question.Kind{question.KindOX, question.KindChoice, question.KindInitials} {
			payload, err := client.GetPlan(cmd.Context(), api.PlanQuery{Role: cfg.Role, Date: date, Kind: string(kind)})
			if err != nil {
				fmt.Println(theme.Hint.Render(fmt.Sprintf("  %-9s unavailable: %v", kind, err)))
				continue
			}
			obj, ok := api.UnwrapObject(payload)
			if !ok {
				fmt.Println(theme.Hint.Render(fmt.Sprintf("  %-9s no plan", kind)))
				continue
			}
			plan, err := question.NormalizePlan(obj)
			if err != nil || !plan.Exists {
				fmt.Println(theme.Hint.Render(fmt.Sprintf("  %-9s no plan", kind)))
				continue
			}
			fmt.Println(theme.Body.Render(fmt.Sprintf("  %-9s %d questions (set %d)", kind, plan.QuestionCount, plan.SessionSetID)))
		}
		return nil
	},
}

func init() {
	planCmd.Flags().String("date", "", "Plan date (YYYY-MM-DD, default today)")
}
