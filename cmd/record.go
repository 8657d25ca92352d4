package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <skill-id>",
	Short: "Record a practice attempt for a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		skillID := args[0]
		correct, _ := cmd.Flags().GetBool("correct")
		responseMs, _ := cmd.Flags().GetInt("response-ms")
		expectedMs, _ := cmd.Flags().GetInt("expected-ms")

		st, svc, err := openService(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := svc.RecordAttempt(ctx, learnerID(cmd), skillID, correct, responseMs, expectedMs, time.Now())
		if err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}
		if err := saveSnapshot(ctx, st, svc); err != nil {
			return err
		}

		state := res.State
		fmt.Printf("p(mastery) = %.4f  status = %s  scaffold = L%d  quality = %d\n",
			state.PMastery, state.Status, int(state.ScaffoldLevel), res.Quality)
		if res.Transition != nil {
			fmt.Printf("status change: %s -> %s (%s)\n",
				res.Transition.From, res.Transition.To, res.Transition.Trigger)
		}
		if !state.SpacedRep.NextReviewAt.IsZero() {
			fmt.Printf("next review: %s (interval %dd)\n",
				state.SpacedRep.NextReviewAt.Format("2006-01-02"), state.SpacedRep.IntervalDays)
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().Bool("correct", false, "Whether the attempt was correct")
	recordCmd.Flags().Int("response-ms", 0, "Response time in milliseconds (0 = unknown)")
	recordCmd.Flags().Int("expected-ms", 0, "Expected response time in milliseconds (0 = unknown)")
}
