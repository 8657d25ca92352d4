package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <goal-skill-id>",
	Short: "Show the learning path to a goal skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		g, err := loadGraph(cmd)
		if err != nil {
			return err
		}

		st, svc, err := openService(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		mastered := svc.MasteredSkills(learnerID(cmd))
		path, err := g.LearningPath(args[0], mastered)
		if err != nil {
			return err
		}
		if len(path.Skills) == 0 {
			fmt.Println("Goal already mastered, nothing to learn.")
			return nil
		}

		threshold := make(map[string]bool, len(path.ThresholdConcepts))
		for _, id := range path.ThresholdConcepts {
			threshold[id] = true
		}

		for i, s := range path.Skills {
			marker := " "
			if threshold[s.ID] {
				marker = "*"
			}
			fmt.Printf("%2d. %s %-24s  %-40s  bloom %d  ~%d min\n",
				i+1, marker, s.ID, s.Name, s.BloomLevel, s.Minutes())
		}
		fmt.Printf("\n%d skills, ~%d minutes total", len(path.Skills), path.TotalMinutes)
		if len(path.ThresholdConcepts) > 0 {
			fmt.Printf(", %d threshold concepts (*)", len(path.ThresholdConcepts))
		}
		fmt.Println()
		return nil
	},
}
