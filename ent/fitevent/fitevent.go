// Code generated by ent, DO NOT EDIT.

package fitevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the fitevent type in the database.
	Label = "fit_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldPL0 holds the string denoting the p_l0 field in the database.
	FieldPL0 = "p_l0"
	// FieldPT holds the string denoting the p_t field in the database.
	FieldPT = "p_t"
	// FieldPS holds the string denoting the p_s field in the database.
	FieldPS = "p_s"
	// FieldPG holds the string denoting the p_g field in the database.
	FieldPG = "p_g"
	// FieldLogLikelihood holds the string denoting the log_likelihood field in the database.
	FieldLogLikelihood = "log_likelihood"
	// FieldIterations holds the string denoting the iterations field in the database.
	FieldIterations = "iterations"
	// FieldConverged holds the string denoting the converged field in the database.
	FieldConverged = "converged"
	// FieldQuality holds the string denoting the quality field in the database.
	FieldQuality = "quality"
	// FieldSampleSize holds the string denoting the sample_size field in the database.
	FieldSampleSize = "sample_size"
	// Table holds the table name of the fitevent in the database.
	Table = "fit_events"
)

// Columns holds all SQL columns for fitevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldLearnerID,
	FieldSkillID,
	FieldPL0,
	FieldPT,
	FieldPS,
	FieldPG,
	FieldLogLikelihood,
	FieldIterations,
	FieldConverged,
	FieldQuality,
	FieldSampleSize,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	QualityValidator func(string) error
)

// OrderOption defines the ordering options for the FitEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByPL0 orders the results by the p_l0 field.
func ByPL0(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPL0, opts...).ToFunc()
}

// ByPT orders the results by the p_t field.
func ByPT(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPT, opts...).ToFunc()
}

// ByPS orders the results by the p_s field.
func ByPS(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPS, opts...).ToFunc()
}

// ByPG orders the results by the p_g field.
func ByPG(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPG, opts...).ToFunc()
}

// ByLogLikelihood orders the results by the log_likelihood field.
func ByLogLikelihood(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogLikelihood, opts...).ToFunc()
}

// ByIterations orders the results by the iterations field.
func ByIterations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIterations, opts...).ToFunc()
}

// ByConverged orders the results by the converged field.
func ByConverged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConverged, opts...).ToFunc()
}

// ByQuality orders the results by the quality field.
func ByQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuality, opts...).ToFunc()
}

// BySampleSize orders the results by the sample_size field.
func BySampleSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleSize, opts...).ToFunc()
}
