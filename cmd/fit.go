package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorkit/internal/bkt"
	"github.com/abhisek/tutorkit/internal/store"
)

var fitCmd = &cobra.Command{
	Use:   "fit [skill-id...]",
	Short: "Re-fit BKT parameters from the learner's attempt history",
	Long:  "Replays the recorded attempt outcomes for each skill and re-estimates the knowledge tracing parameters with EM. With no arguments, fits every attempted skill.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		st, svc, err := openService(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner := learnerID(cmd)
		events := st.EventRepo()

		skillIDs := args
		if len(skillIDs) == 0 {
			skillIDs, err = events.AttemptedSkills(ctx, learner)
			if err != nil {
				return fmt.Errorf("list attempted skills: %w", err)
			}
		}
		if len(skillIDs) == 0 {
			fmt.Println("No attempt history to fit.")
			return nil
		}

		for _, skillID := range skillIDs {
			outcomes, err := events.AttemptOutcomes(ctx, learner, skillID)
			if err != nil {
				return fmt.Errorf("load outcomes for %s: %w", skillID, err)
			}

			res := bkt.Fit(outcomes, bkt.FitOptions{
				Initial: svc.GetState(learner, skillID).Params,
			})
			log.Debugw("fit complete",
				"skill", skillID,
				"samples", res.SampleSize,
				"iterations", res.Iterations,
				"converged", res.Converged,
				"logLik", res.LogLikelihood,
				"quality", res.Quality)

			if res.Quality == bkt.FitPoor && !res.Converged {
				log.Infow("keeping existing parameters, fit unusable",
					"skill", skillID, "samples", res.SampleSize)
				fmt.Printf("%-24s  skipped (%d samples, fit did not converge)\n", skillID, res.SampleSize)
				continue
			}

			if err := svc.SetParams(learner, skillID, res.Params); err != nil {
				return fmt.Errorf("apply fitted params for %s: %w", skillID, err)
			}
			err = events.AppendFitEvent(ctx, store.FitEventData{
				LearnerID:     learner,
				SkillID:       skillID,
				PL0:           res.Params.PL0,
				PT:            res.Params.PT,
				PS:            res.Params.PS,
				PG:            res.Params.PG,
				LogLikelihood: res.LogLikelihood,
				Iterations:    res.Iterations,
				Converged:     res.Converged,
				Quality:       string(res.Quality),
				SampleSize:    res.SampleSize,
			})
			if err != nil {
				return fmt.Errorf("append fit event: %w", err)
			}

			fmt.Printf("%-24s  pL0=%.3f pT=%.3f pS=%.3f pG=%.3f  (%s, n=%d)\n",
				skillID, res.Params.PL0, res.Params.PT, res.Params.PS, res.Params.PG,
				res.Quality, res.SampleSize)
		}

		return saveSnapshot(ctx, st, svc)
	},
}
