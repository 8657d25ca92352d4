package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorkit/ent"
	"github.com/abhisek/tutorkit/ent/attemptevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetSkillID(data.SkillID).
		SetCorrect(data.Correct).
		SetResponseMs(data.ResponseMs).
		SetExpectedMs(data.ExpectedMs).
		SetQuality(data.Quality).
		SetPMasteryAfter(data.PMasteryAfter)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AttemptOutcomes(ctx context.Context, learnerID, skillID string) ([]bool, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.LearnerID(learnerID),
			attemptevent.SkillID(skillID),
		).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt outcomes: %w", err)
	}

	outcomes := make([]bool, len(events))
	for i, e := range events {
		outcomes[i] = e.Correct
	}
	return outcomes, nil
}

func (r *eventRepo) AttemptedSkills(ctx context.Context, learnerID string) ([]string, error) {
	ids, err := r.client.AttemptEvent.Query().
		Where(attemptevent.LearnerID(learnerID)).
		Unique(true).
		Select(attemptevent.FieldSkillID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempted skills: %w", err)
	}
	return ids, nil
}
