package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Prune old progress snapshots",
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

		keep, _ := cmd.Flags().GetInt("keep")
		if err := st.SnapshotRepo().Prune(cmd.Context(), keep); err != nil {
			return err
		}
		fmt.Printf("Pruned snapshots, kept the %d most recent.\n", keep)
		return nil
	},
}

func init() {
	resetCmd.Flags().Int("keep", 5, "Number of recent snapshots to keep")
}
