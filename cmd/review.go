package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "List skills due for review and apply retention decay",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, svc, err := openService(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner := learnerID(cmd)
		now := time.Now()

		decay, _ := cmd.Flags().GetBool("decay")
		if decay {
			transitions, err := svc.RunDecayCheck(ctx, learner, now)
			if err != nil {
				return fmt.Errorf("decay check: %w", err)
			}
			for _, t := range transitions {
				fmt.Printf("decayed: %s (%s -> %s)\n", t.SkillID, t.From, t.To)
			}
			if len(transitions) > 0 {
				if err := saveSnapshot(ctx, st, svc); err != nil {
					return err
				}
			}
		}

		due := svc.DueSkills(learner, now)
		if len(due) == 0 {
			fmt.Println("Nothing due for review.")
			return nil
		}
		for _, skillID := range due {
			state := svc.GetState(learner, skillID)
			fmt.Printf("%-24s  overdue %.1fd  p(mastery) %.3f\n",
				skillID, state.SpacedRep.OverdueDays(now), state.PMastery)
		}
		return nil
	},
}

func init() {
	reviewCmd.Flags().Bool("decay", false, "Apply retention decay to overdue mastered skills")
}
