package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all state for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		confirm, _ := cmd.Flags().GetBool("yes")
		if !confirm {
			return fmt.Errorf("reset deletes all learner data, pass --yes to confirm")
		}

		st, svc, err := openService(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner := learnerID(cmd)
		removed := svc.Reset(learner)
		if err := st.SnapshotRepo().DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete snapshots: %w", err)
		}
		if err := saveSnapshot(ctx, st, svc); err != nil {
			return err
		}

		fmt.Printf("Removed %d skill states for learner %q.\n", removed, learner)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
