package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery state for every tracked skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, svc, err := openService(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner := learnerID(cmd)
		states := svc.States(learner)
		if len(states) == 0 {
			fmt.Printf("No tracked skills for learner %q.\n", learner)
			return nil
		}
		sort.Slice(states, func(i, j int) bool {
			return states[i].SkillID < states[j].SkillID
		})

		level, _ := cmd.Flags().GetFloat64("confidence")

		fmt.Printf("%-24s  %-11s  %9s  %-16s  %8s  %5s\n",
			"Skill", "Status", "p(known)", fmt.Sprintf("%.0f%% CI", level*100), "Accuracy", "Tries")
		fmt.Println(strings.Repeat("─", 84))

		for _, state := range states {
			est, err := svc.Estimate(learner, state.SkillID, level)
			if err != nil {
				return fmt.Errorf("estimate %s: %w", state.SkillID, err)
			}
			fmt.Printf("%-24s  %-11s  %9.3f  [%.3f, %.3f]   %7.0f%%  %5d\n",
				state.SkillID, state.Status, state.PMastery,
				est.Lower, est.Upper, state.Accuracy()*100, state.TotalAttempts)
		}
		fmt.Printf("\n%d skills\n", len(states))
		return nil
	},
}

func init() {
	statsCmd.Flags().Float64("confidence", 0.95, "Confidence level for mastery intervals")
}
