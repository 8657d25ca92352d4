package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorkit/internal/intervention"
	"github.com/abhisek/tutorkit/internal/skillgraph"
)

// easyDifficulty is the band below which a mastered skill counts as easy.
const easyDifficulty = 3.0

var nudgeCmd = &cobra.Command{
	Use:   "nudge",
	Short: "Show metacognitive and motivational nudges",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, svc, err := openService(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner := learnerID(cmd)
		tc, err := svc.SessionSignals(ctx, learner)
		if err != nil {
			return err
		}
		tc.SessionMinutes, _ = cmd.Flags().GetInt("session-minutes")

		// The easy-mastery signal needs skill difficulties; it stays off
		// when no graph is configured.
		if g, gerr := loadGraph(cmd); gerr == nil {
			tc.AllMasteredEasy = allMasteredEasy(g, svc.MasteredSkills(learner))
		}

		dismissed, _ := cmd.Flags().GetStringSlice("dismiss")
		keys := make(map[string]bool, len(dismissed))
		for _, k := range dismissed {
			keys[k] = true
		}

		active := intervention.Evaluate(tc, keys)
		if len(active) == 0 {
			fmt.Println("No nudges right now.")
			return nil
		}
		for _, a := range active {
			fmt.Printf("[%s] %s\n", a.Dimension, a.Message)
			fmt.Printf("   dismiss with --dismiss %s\n", a.DismissKey)
		}
		return nil
	},
}

func allMasteredEasy(g *skillgraph.Graph, mastered map[string]bool) bool {
	if len(mastered) == 0 {
		return false
	}
	for id := range mastered {
		sk, err := g.Skill(id)
		if err != nil || sk.Difficulty > easyDifficulty {
			return false
		}
	}
	return true
}

func init() {
	nudgeCmd.Flags().Int("session-minutes", 0, "Minutes spent in the current session")
	nudgeCmd.Flags().StringSlice("dismiss", nil, "Dismiss keys from earlier nudges (id#bucket)")
}
