// Code generated by ent, DO NOT EDIT.

package fitevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorkit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldLearnerID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldSkillID, v))
}

// PL0 applies equality check predicate on the "p_l0" field. It's identical to PL0EQ.
func PL0(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldPL0, v))
}

// PT applies equality check predicate on the "p_t" field. It's identical to PTEQ.
func PT(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldPT, v))
}

// PS applies equality check predicate on the "p_s" field. It's identical to PSEQ.
func PS(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldPS, v))
}

// PG applies equality check predicate on the "p_g" field. It's identical to PGEQ.
func PG(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldPG, v))
}

// LogLikelihood applies equality check predicate on the "log_likelihood" field. It's identical to LogLikelihoodEQ.
func LogLikelihood(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldLogLikelihood, v))
}

// Iterations applies equality check predicate on the "iterations" field. It's identical to IterationsEQ.
func Iterations(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldIterations, v))
}

// Converged applies equality check predicate on the "converged" field. It's identical to ConvergedEQ.
func Converged(v bool) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldConverged, v))
}

// Quality applies equality check predicate on the "quality" field. It's identical to QualityEQ.
func Quality(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldQuality, v))
}

// SampleSize applies equality check predicate on the "sample_size" field. It's identical to SampleSizeEQ.
func SampleSize(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldSampleSize, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// PL0EQ applies the EQ predicate on the "p_l0" field.
func PL0EQ(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldPL0, v))
}

// PL0NEQ applies the NEQ predicate on the "p_l0" field.
func PL0NEQ(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldPL0, v))
}

// PL0In applies the In predicate on the "p_l0" field.
func PL0In(vs ...float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldIn(FieldPL0, vs...))
}

// PL0NotIn applies the NotIn predicate on the "p_l0" field.
func PL0NotIn(vs ...float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNotIn(FieldPL0, vs...))
}

// PL0GT applies the GT predicate on the "p_l0" field.
func PL0GT(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGT(FieldPL0, v))
}

// PL0GTE applies the GTE predicate on the "p_l0" field.
func PL0GTE(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGTE(FieldPL0, v))
}

// PL0LT applies the LT predicate on the "p_l0" field.
func PL0LT(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLT(FieldPL0, v))
}

// PL0LTE applies the LTE predicate on the "p_l0" field.
func PL0LTE(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLTE(FieldPL0, v))
}

// PTEQ applies the EQ predicate on the "p_t" field.
func PTEQ(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldPT, v))
}

// PTNEQ applies the NEQ predicate on the "p_t" field.
func PTNEQ(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldPT, v))
}

// PTIn applies the In predicate on the "p_t" field.
func PTIn(vs ...float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldIn(FieldPT, vs...))
}

// PTNotIn applies the NotIn predicate on the "p_t" field.
func PTNotIn(vs ...float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNotIn(FieldPT, vs...))
}

// PTGT applies the GT predicate on the "p_t" field.
func PTGT(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGT(FieldPT, v))
}

// PTGTE applies the GTE predicate on the "p_t" field.
func PTGTE(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGTE(FieldPT, v))
}

// PTLT applies the LT predicate on the "p_t" field.
func PTLT(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLT(FieldPT, v))
}

// PTLTE applies the LTE predicate on the "p_t" field.
func PTLTE(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLTE(FieldPT, v))
}

// PSEQ applies the EQ predicate on the "p_s" field.
func PSEQ(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldPS, v))
}

// PSNEQ applies the NEQ predicate on the "p_s" field.
func PSNEQ(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldPS, v))
}

// PSIn applies the In predicate on the "p_s" field.
func PSIn(vs ...float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldIn(FieldPS, vs...))
}

// PSNotIn applies the NotIn predicate on the "p_s" field.
func PSNotIn(vs ...float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNotIn(FieldPS, vs...))
}

// PSGT applies the GT predicate on the "p_s" field.
func PSGT(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGT(FieldPS, v))
}

// PSGTE applies the GTE predicate on the "p_s" field.
func PSGTE(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGTE(FieldPS, v))
}

// PSLT applies the LT predicate on the "p_s" field.
func PSLT(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLT(FieldPS, v))
}

// PSLTE applies the LTE predicate on the "p_s" field.
func PSLTE(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLTE(FieldPS, v))
}

// PGEQ applies the EQ predicate on the "p_g" field.
func PGEQ(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldPG, v))
}

// PGNEQ applies the NEQ predicate on the "p_g" field.
func PGNEQ(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldPG, v))
}

// PGIn applies the In predicate on the "p_g" field.
func PGIn(vs ...float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldIn(FieldPG, vs...))
}

// PGNotIn applies the NotIn predicate on the "p_g" field.
func PGNotIn(vs ...float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNotIn(FieldPG, vs...))
}

// PGGT applies the GT predicate on the "p_g" field.
func PGGT(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGT(FieldPG, v))
}

// PGGTE applies the GTE predicate on the "p_g" field.
func PGGTE(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGTE(FieldPG, v))
}

// PGLT applies the LT predicate on the "p_g" field.
func PGLT(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLT(FieldPG, v))
}

// PGLTE applies the LTE predicate on the "p_g" field.
func PGLTE(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLTE(FieldPG, v))
}

// LogLikelihoodEQ applies the EQ predicate on the "log_likelihood" field.
func LogLikelihoodEQ(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldLogLikelihood, v))
}

// LogLikelihoodNEQ applies the NEQ predicate on the "log_likelihood" field.
func LogLikelihoodNEQ(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldLogLikelihood, v))
}

// LogLikelihoodIn applies the In predicate on the "log_likelihood" field.
func LogLikelihoodIn(vs ...float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldIn(FieldLogLikelihood, vs...))
}

// LogLikelihoodNotIn applies the NotIn predicate on the "log_likelihood" field.
func LogLikelihoodNotIn(vs ...float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNotIn(FieldLogLikelihood, vs...))
}

// LogLikelihoodGT applies the GT predicate on the "log_likelihood" field.
func LogLikelihoodGT(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGT(FieldLogLikelihood, v))
}

// LogLikelihoodGTE applies the GTE predicate on the "log_likelihood" field.
func LogLikelihoodGTE(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGTE(FieldLogLikelihood, v))
}

// LogLikelihoodLT applies the LT predicate on the "log_likelihood" field.
func LogLikelihoodLT(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLT(FieldLogLikelihood, v))
}

// LogLikelihoodLTE applies the LTE predicate on the "log_likelihood" field.
func LogLikelihoodLTE(v float64) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLTE(FieldLogLikelihood, v))
}

// IterationsEQ applies the EQ predicate on the "iterations" field.
func IterationsEQ(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldIterations, v))
}

// IterationsNEQ applies the NEQ predicate on the "iterations" field.
func IterationsNEQ(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldIterations, v))
}

// IterationsIn applies the In predicate on the "iterations" field.
func IterationsIn(vs ...int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldIn(FieldIterations, vs...))
}

// IterationsNotIn applies the NotIn predicate on the "iterations" field.
func IterationsNotIn(vs ...int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNotIn(FieldIterations, vs...))
}

// IterationsGT applies the GT predicate on the "iterations" field.
func IterationsGT(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGT(FieldIterations, v))
}

// IterationsGTE applies the GTE predicate on the "iterations" field.
func IterationsGTE(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGTE(FieldIterations, v))
}

// IterationsLT applies the LT predicate on the "iterations" field.
func IterationsLT(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLT(FieldIterations, v))
}

// IterationsLTE applies the LTE predicate on the "iterations" field.
func IterationsLTE(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLTE(FieldIterations, v))
}

// ConvergedEQ applies the EQ predicate on the "converged" field.
func ConvergedEQ(v bool) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldConverged, v))
}

// ConvergedNEQ applies the NEQ predicate on the "converged" field.
func ConvergedNEQ(v bool) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldConverged, v))
}

// QualityEQ applies the EQ predicate on the "quality" field.
func QualityEQ(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldQuality, v))
}

// QualityNEQ applies the NEQ predicate on the "quality" field.
func QualityNEQ(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldQuality, v))
}

// QualityIn applies the In predicate on the "quality" field.
func QualityIn(vs ...string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldIn(FieldQuality, vs...))
}

// QualityNotIn applies the NotIn predicate on the "quality" field.
func QualityNotIn(vs ...string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNotIn(FieldQuality, vs...))
}

// QualityGT applies the GT predicate on the "quality" field.
func QualityGT(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGT(FieldQuality, v))
}

// QualityGTE applies the GTE predicate on the "quality" field.
func QualityGTE(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGTE(FieldQuality, v))
}

// QualityLT applies the LT predicate on the "quality" field.
func QualityLT(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLT(FieldQuality, v))
}

// QualityLTE applies the LTE predicate on the "quality" field.
func QualityLTE(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLTE(FieldQuality, v))
}

// QualityContains applies the Contains predicate on the "quality" field.
func QualityContains(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldContains(FieldQuality, v))
}

// QualityHasPrefix applies the HasPrefix predicate on the "quality" field.
func QualityHasPrefix(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldHasPrefix(FieldQuality, v))
}

// QualityHasSuffix applies the HasSuffix predicate on the "quality" field.
func QualityHasSuffix(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldHasSuffix(FieldQuality, v))
}

// QualityEqualFold applies the EqualFold predicate on the "quality" field.
func QualityEqualFold(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEqualFold(FieldQuality, v))
}

// QualityContainsFold applies the ContainsFold predicate on the "quality" field.
func QualityContainsFold(v string) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldContainsFold(FieldQuality, v))
}

// SampleSizeEQ applies the EQ predicate on the "sample_size" field.
func SampleSizeEQ(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldEQ(FieldSampleSize, v))
}

// SampleSizeNEQ applies the NEQ predicate on the "sample_size" field.
func SampleSizeNEQ(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNEQ(FieldSampleSize, v))
}

// SampleSizeIn applies the In predicate on the "sample_size" field.
func SampleSizeIn(vs ...int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldIn(FieldSampleSize, vs...))
}

// SampleSizeNotIn applies the NotIn predicate on the "sample_size" field.
func SampleSizeNotIn(vs ...int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldNotIn(FieldSampleSize, vs...))
}

// SampleSizeGT applies the GT predicate on the "sample_size" field.
func SampleSizeGT(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGT(FieldSampleSize, v))
}

// SampleSizeGTE applies the GTE predicate on the "sample_size" field.
func SampleSizeGTE(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldGTE(FieldSampleSize, v))
}

// SampleSizeLT applies the LT predicate on the "sample_size" field.
func SampleSizeLT(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLT(FieldSampleSize, v))
}

// SampleSizeLTE applies the LTE predicate on the "sample_size" field.
func SampleSizeLTE(v int) predicate.FitEvent {
	return predicate.FitEvent(sql.FieldLTE(FieldSampleSize, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FitEvent) predicate.FitEvent {
	return predicate.FitEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FitEvent) predicate.FitEvent {
	return predicate.FitEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FitEvent) predicate.FitEvent {
	return predicate.FitEvent(sql.NotPredicates(p))
}
