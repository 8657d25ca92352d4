// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "response_ms", Type: field.TypeInt, Default: 0},
		{Name: "expected_ms", Type: field.TypeInt, Default: 0},
		{Name: "quality", Type: field.TypeInt},
		{Name: "p_mastery_after", Type: field.TypeFloat64},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_learner_id_skill_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[4]},
			},
		},
	}
	// FitEventsColumns holds the columns for the "fit_events" table.
	FitEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "p_l0", Type: field.TypeFloat64},
		{Name: "p_t", Type: field.TypeFloat64},
		{Name: "p_s", Type: field.TypeFloat64},
		{Name: "p_g", Type: field.TypeFloat64},
		{Name: "log_likelihood", Type: field.TypeFloat64},
		{Name: "iterations", Type: field.TypeInt},
		{Name: "converged", Type: field.TypeBool},
		{Name: "quality", Type: field.TypeString},
		{Name: "sample_size", Type: field.TypeInt},
	}
	// FitEventsTable holds the schema information for the "fit_events" table.
	FitEventsTable = &schema.Table{
		Name:       "fit_events",
		Columns:    FitEventsColumns,
		PrimaryKey: []*schema.Column{FitEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fitevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{FitEventsColumns[1]},
			},
			{
				Name:    "fitevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{FitEventsColumns[2]},
			},
			{
				Name:    "fitevent_learner_id_skill_id",
				Unique:  false,
				Columns: []*schema.Column{FitEventsColumns[3], FitEventsColumns[4]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "from_status", Type: field.TypeString},
		{Name: "to_status", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
		{Name: "p_mastery", Type: field.TypeFloat64},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_learner_id_skill_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3], MasteryEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		FitEventsTable,
		MasteryEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
