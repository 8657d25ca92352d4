package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorkit/internal/recommend"
)

// gapAccuracy is the lifetime accuracy below which an in-progress skill is
// treated as a knowledge gap for urgency scoring.
const gapAccuracy = 0.5

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the next skills to study",
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

		learner := learnerID(cmd)
		mastered := svc.MasteredSkills(learner)
		candidates := g.ZPD(mastered)
		if len(candidates) == 0 {
			fmt.Println("Nothing in the zone of proximal development yet.")
			return nil
		}

		gaps := make(map[string]bool)
		for _, state := range svc.States(learner) {
			if state.TotalAttempts >= 3 && state.Accuracy() < gapAccuracy {
				gaps[state.SkillID] = true
			}
		}

		expertise, _ := cmd.Flags().GetString("expertise")
		topN, _ := cmd.Flags().GetInt("top")

		recs := recommend.Rank(recommend.Input{
			Candidates: candidates,
			Profile: recommend.Profile{
				Expertise: recommend.ExpertiseLevel(expertise),
			},
			KnowledgeGaps: gaps,
			TopN:          topN,
		})

		for i, r := range recs {
			fmt.Printf("%d. %s (%s)  score %.3f  ~%d min  scaffold L%d\n",
				i+1, r.Skill.Name, r.Skill.ID, r.Score, r.EstimatedMins, int(r.Adjustments.ScaffoldLevel))
			fmt.Printf("   %s\n", r.Justification)
			if len(r.Reasons) > 0 {
				fmt.Printf("   because: %s\n", strings.Join(r.Reasons, "; "))
			}
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("expertise", "intermediate", "Learner expertise (novice|intermediate|advanced|expert)")
	recommendCmd.Flags().Int("top", recommend.DefaultTopN, "Number of recommendations to show")
}
