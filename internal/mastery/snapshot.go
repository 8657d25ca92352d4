package mastery

import (
	"time"

	"github.com/abhisek/tutorkit/internal/bkt"
	"github.com/abhisek/tutorkit/internal/scaffold"
	"github.com/abhisek/tutorkit/internal/spacedrep"
	"github.com/abhisek/tutorkit/internal/store"
)

func (s *Service) loadFromSnapshot(snap *store.SnapshotData) {
	if snap.Skills == nil {
		return
	}
	for key, sd := range snap.Skills {
		st := &SkillState{
			LearnerID:            sd.LearnerID,
			SkillID:              sd.SkillID,
			PMastery:             sd.PMastery,
			Params:               bkt.Params{PL0: sd.PL0, PT: sd.PT, PS: sd.PS, PG: sd.PG},
			Status:               Status(sd.Status),
			MasteryThreshold:     sd.MasteryThreshold,
			TotalAttempts:        sd.TotalAttempts,
			CorrectAttempts:      sd.CorrectAttempts,
			ConsecutiveSuccesses: sd.ConsecutiveSuccesses,
			SpacedRep: spacedrep.State{
				EaseFactor:   sd.EaseFactor,
				IntervalDays: sd.IntervalDays,
				Repetitions:  sd.Repetitions,
			},
			ScaffoldLevel: scaffold.Level(sd.ScaffoldLevel),
		}
		if sd.NextReviewAt != nil {
			if t, err := time.Parse(time.RFC3339, *sd.NextReviewAt); err == nil {
				st.SpacedRep.NextReviewAt = t
			}
		}
		if sd.LastReviewAt != nil {
			if t, err := time.Parse(time.RFC3339, *sd.LastReviewAt); err == nil {
				st.SpacedRep.LastReviewAt = t
			}
		}
		if sd.UpdatedAt != "" {
			if t, err := time.Parse(time.RFC3339, sd.UpdatedAt); err == nil {
				st.UpdatedAt = t
			}
		}
		// Ensure defaults for records written before these fields existed.
		if st.MasteryThreshold == 0 {
			st.MasteryThreshold = DefaultMasteryThreshold
		}
		if st.SpacedRep.EaseFactor == 0 {
			st.SpacedRep.EaseFactor = spacedrep.InitialEaseFactor
		}
		if st.ScaffoldLevel == 0 {
			st.ScaffoldLevel = scaffold.LevelWorkedExamples
		}
		s.states[key] = st
	}
}

// SnapshotData exports all learner skill states for persistence.
func (s *Service) SnapshotData() *store.SnapshotData {
	data := &store.SnapshotData{
		Version: store.SnapshotVersion,
		Skills:  make(map[string]*store.SkillStateData),
	}
	for key, st := range s.states {
		sd := &store.SkillStateData{
			LearnerID:            st.LearnerID,
			SkillID:              st.SkillID,
			PMastery:             st.PMastery,
			PL0:                  st.Params.PL0,
			PT:                   st.Params.PT,
			PS:                   st.Params.PS,
			PG:                   st.Params.PG,
			Status:               string(st.Status),
			MasteryThreshold:     st.MasteryThreshold,
			TotalAttempts:        st.TotalAttempts,
			CorrectAttempts:      st.CorrectAttempts,
			ConsecutiveSuccesses: st.ConsecutiveSuccesses,
			EaseFactor:           st.SpacedRep.EaseFactor,
			IntervalDays:         st.SpacedRep.IntervalDays,
			Repetitions:          st.SpacedRep.Repetitions,
			ScaffoldLevel:        int(st.ScaffoldLevel),
		}
		if !st.SpacedRep.NextReviewAt.IsZero() {
			v := st.SpacedRep.NextReviewAt.Format(time.RFC3339)
			sd.NextReviewAt = &v
		}
		if !st.SpacedRep.LastReviewAt.IsZero() {
			v := st.SpacedRep.LastReviewAt.Format(time.RFC3339)
			sd.LastReviewAt = &v
		}
		if !st.UpdatedAt.IsZero() {
			sd.UpdatedAt = st.UpdatedAt.Format(time.RFC3339)
		}
		data.Skills[key] = sd
	}
	return data
}
