package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tutorkit/ent"
	"github.com/abhisek/tutorkit/ent/snapshot"
)

func TestAttemptEvents_AppendAndReplay(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	outcomes := []bool{false, true, true, false, true}
	for _, correct := range outcomes {
		err := repo.AppendAttemptEvent(ctx, AttemptEventData{
			LearnerID:     "kim",
			SkillID:       "fractions",
			Correct:       correct,
			ResponseMs:    5000,
			ExpectedMs:    10000,
			Quality:       4,
			PMasteryAfter: 0.5,
		})
		require.NoError(t, err)
	}

	// Interleave another learner and skill; the replay must not pick
	// them up.
	require.NoError(t, repo.AppendAttemptEvent(ctx, AttemptEventData{
		LearnerID: "lee", SkillID: "fractions", Correct: true,
	}))
	require.NoError(t, repo.AppendAttemptEvent(ctx, AttemptEventData{
		LearnerID: "kim", SkillID: "decimals", Correct: false,
	}))

	got, err := repo.AttemptOutcomes(ctx, "kim", "fractions")
	require.NoError(t, err)
	assert.Equal(t, outcomes, got, "outcomes must replay in append order")

	empty, err := repo.AttemptOutcomes(ctx, "kim", "geometry")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAttemptedSkills(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, skill := range []string{"fractions", "fractions", "decimals"} {
		require.NoError(t, repo.AppendAttemptEvent(ctx, AttemptEventData{
			LearnerID: "kim", SkillID: skill, Correct: true,
		}))
	}
	require.NoError(t, repo.AppendAttemptEvent(ctx, AttemptEventData{
		LearnerID: "lee", SkillID: "geometry", Correct: true,
	}))

	ids, err := repo.AttemptedSkills(ctx, "kim")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"fractions", "decimals"}, ids)
}

func TestMasteryAndFitEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendMasteryEvent(ctx, MasteryEventData{
		LearnerID:  "kim",
		SkillID:    "fractions",
		FromStatus: "learning",
		ToStatus:   "mastered",
		Trigger:    "threshold-reached",
		PMastery:   0.86,
	}))

	require.NoError(t, repo.AppendFitEvent(ctx, FitEventData{
		LearnerID:     "kim",
		SkillID:       "fractions",
		PL0:           0.12,
		PT:            0.09,
		PS:            0.07,
		PG:            0.22,
		LogLikelihood: -41.3,
		Iterations:    14,
		Converged:     true,
		Quality:       "good",
		SampleSize:    80,
	}))

	masteryCount, err := s.Client().MasteryEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, masteryCount)

	fits, err := s.Client().FitEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, fits, 1)
	assert.True(t, fits[0].Converged)
	assert.Equal(t, 80, fits[0].SampleSize)
}

func TestEvents_ShareOneSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAttemptEvent(ctx, AttemptEventData{
		LearnerID: "kim", SkillID: "a", Correct: true,
	}))
	require.NoError(t, repo.AppendMasteryEvent(ctx, MasteryEventData{
		LearnerID: "kim", SkillID: "a", FromStatus: "not_started", ToStatus: "learning", Trigger: "first-attempt",
	}))
	require.NoError(t, repo.AppendFitEvent(ctx, FitEventData{
		LearnerID: "kim", SkillID: "a", Quality: "poor",
	}))

	attempt, err := s.Client().AttemptEvent.Query().Only(ctx)
	require.NoError(t, err)
	mastery, err := s.Client().MasteryEvent.Query().Only(ctx)
	require.NoError(t, err)
	fit, err := s.Client().FitEvent.Query().Only(ctx)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3}, []int64{attempt.Sequence, mastery.Sequence, fit.Sequence},
		"events of every type draw from the same counter")
}

func TestSnapshotRepo_SaveLatestPrune(t *testing.T) {
	s := openTestStore(t)
	snaps := s.SnapshotRepo()
	events := s.EventRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := snaps.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	// Two events consumed before the save: the snapshot carries their
	// high-water mark.
	require.NoError(t, events.AppendAttemptEvent(ctx, AttemptEventData{LearnerID: "kim", SkillID: "a", Correct: true}))
	require.NoError(t, events.AppendAttemptEvent(ctx, AttemptEventData{LearnerID: "kim", SkillID: "a", Correct: false}))

	data := &SnapshotData{
		Version: SnapshotVersion,
		Skills: map[string]*SkillStateData{
			"kim/a": {
				LearnerID: "kim", SkillID: "a",
				PMastery: 0.45, PL0: 0.1, PT: 0.1, PS: 0.1, PG: 0.2,
				Status: "learning", MasteryThreshold: 0.8,
				TotalAttempts: 2, CorrectAttempts: 1,
				EaseFactor: 2.5, IntervalDays: 1, Repetitions: 1,
				ScaffoldLevel: 2,
			},
		},
	}
	require.NoError(t, snaps.Save(ctx, data))

	snap, err = snaps.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, int64(2), snap.Sequence)
	require.Contains(t, snap.Data.Skills, "kim/a")
	restored := snap.Data.Skills["kim/a"]
	assert.Equal(t, 0.45, restored.PMastery)
	assert.Equal(t, "learning", restored.Status)
	assert.Equal(t, 2, restored.TotalAttempts)

	// Prune keeps the most recent snapshots only.
	for i := 0; i < 4; i++ {
		require.NoError(t, snaps.Save(ctx, data))
	}
	require.NoError(t, snaps.Prune(ctx, 2))
	count, err := s.Client().Snapshot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, snaps.DeleteAll(ctx))
	snap, err = snaps.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSnapshotRepo_PruneWithTimestampTies(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Five snapshots sharing one wall-clock timestamp. Pruning must cut by
	// row identity, not timestamp, or the tie at the keep boundary would
	// delete a snapshot that should survive.
	stamp := time.Date(2026, 4, 10, 14, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := s.Client().Snapshot.Create().
			SetSequence(int64(i)).
			SetTimestamp(stamp).
			SetData(map[string]any{}).
			Save(ctx)
		require.NoError(t, err)
	}

	require.NoError(t, s.SnapshotRepo().Prune(ctx, 2))

	remaining, err := s.Client().Snapshot.Query().
		Order(ent.Asc(snapshot.FieldID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, int64(3), remaining[0].Sequence)
	assert.Equal(t, int64(4), remaining[1].Sequence)
}
