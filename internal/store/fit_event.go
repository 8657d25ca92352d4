package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendFitEvent(ctx context.Context, data FitEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.FitEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetSkillID(data.SkillID).
		SetPL0(data.PL0).
		SetPT(data.PT).
		SetPS(data.PS).
		SetPG(data.PG).
		SetLogLikelihood(data.LogLikelihood).
		SetIterations(data.Iterations).
		SetConverged(data.Converged).
		SetQuality(data.Quality).
		SetSampleSize(data.SampleSize).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save fit event: %w", err)
	}
	return nil
}
