// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/tutorkit/ent/attemptevent"
	"github.com/abhisek/tutorkit/ent/fitevent"
	"github.com/abhisek/tutorkit/ent/masteryevent"
	"github.com/abhisek/tutorkit/ent/schema"
	"github.com/abhisek/tutorkit/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescLearnerID is the schema descriptor for learner_id field.
	attempteventDescLearnerID := attempteventFields[0].Descriptor()
	// attemptevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	attemptevent.LearnerIDValidator = attempteventDescLearnerID.Validators[0].(func(string) error)
	// attempteventDescSkillID is the schema descriptor for skill_id field.
	attempteventDescSkillID := attempteventFields[1].Descriptor()
	// attemptevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	attemptevent.SkillIDValidator = attempteventDescSkillID.Validators[0].(func(string) error)
	// attempteventDescResponseMs is the schema descriptor for response_ms field.
	attempteventDescResponseMs := attempteventFields[3].Descriptor()
	// attemptevent.DefaultResponseMs holds the default value on creation for the response_ms field.
	attemptevent.DefaultResponseMs = attempteventDescResponseMs.Default.(int)
	// attempteventDescExpectedMs is the schema descriptor for expected_ms field.
	attempteventDescExpectedMs := attempteventFields[4].Descriptor()
	// attemptevent.DefaultExpectedMs holds the default value on creation for the expected_ms field.
	attemptevent.DefaultExpectedMs = attempteventDescExpectedMs.Default.(int)
	fiteventMixin := schema.FitEvent{}.Mixin()
	fiteventMixinFields0 := fiteventMixin[0].Fields()
	_ = fiteventMixinFields0
	fiteventFields := schema.FitEvent{}.Fields()
	_ = fiteventFields
	// fiteventDescTimestamp is the schema descriptor for timestamp field.
	fiteventDescTimestamp := fiteventMixinFields0[1].Descriptor()
	// fitevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	fitevent.DefaultTimestamp = fiteventDescTimestamp.Default.(func() time.Time)
	// fiteventDescLearnerID is the schema descriptor for learner_id field.
	fiteventDescLearnerID := fiteventFields[0].Descriptor()
	// fitevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	fitevent.LearnerIDValidator = fiteventDescLearnerID.Validators[0].(func(string) error)
	// fiteventDescSkillID is the schema descriptor for skill_id field.
	fiteventDescSkillID := fiteventFields[1].Descriptor()
	// fitevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	fitevent.SkillIDValidator = fiteventDescSkillID.Validators[0].(func(string) error)
	// fiteventDescQuality is the schema descriptor for quality field.
	fiteventDescQuality := fiteventFields[9].Descriptor()
	// fitevent.QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	fitevent.QualityValidator = fiteventDescQuality.Validators[0].(func(string) error)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescLearnerID is the schema descriptor for learner_id field.
	masteryeventDescLearnerID := masteryeventFields[0].Descriptor()
	// masteryevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	masteryevent.LearnerIDValidator = masteryeventDescLearnerID.Validators[0].(func(string) error)
	// masteryeventDescSkillID is the schema descriptor for skill_id field.
	masteryeventDescSkillID := masteryeventFields[1].Descriptor()
	// masteryevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	masteryevent.SkillIDValidator = masteryeventDescSkillID.Validators[0].(func(string) error)
	// masteryeventDescFromStatus is the schema descriptor for from_status field.
	masteryeventDescFromStatus := masteryeventFields[2].Descriptor()
	// masteryevent.FromStatusValidator is a validator for the "from_status" field. It is called by the builders before save.
	masteryevent.FromStatusValidator = masteryeventDescFromStatus.Validators[0].(func(string) error)
	// masteryeventDescToStatus is the schema descriptor for to_status field.
	masteryeventDescToStatus := masteryeventFields[3].Descriptor()
	// masteryevent.ToStatusValidator is a validator for the "to_status" field. It is called by the builders before save.
	masteryevent.ToStatusValidator = masteryeventDescToStatus.Validators[0].(func(string) error)
	// masteryeventDescTrigger is the schema descriptor for trigger field.
	masteryeventDescTrigger := masteryeventFields[4].Descriptor()
	// masteryevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masteryevent.TriggerValidator = masteryeventDescTrigger.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
