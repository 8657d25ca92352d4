// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorkit/ent/fitevent"
)

// FitEvent is the model entity for the FitEvent schema.
type FitEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the store-wide event order
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// PL0 holds the value of the "p_l0" field.
	PL0 float64 `json:"p_l0,omitempty"`
	// PT holds the value of the "p_t" field.
	PT float64 `json:"p_t,omitempty"`
	// PS holds the value of the "p_s" field.
	PS float64 `json:"p_s,omitempty"`
	// PG holds the value of the "p_g" field.
	PG float64 `json:"p_g,omitempty"`
	// LogLikelihood holds the value of the "log_likelihood" field.
	LogLikelihood float64 `json:"log_likelihood,omitempty"`
	// Iterations holds the value of the "iterations" field.
	Iterations int `json:"iterations,omitempty"`
	// Converged holds the value of the "converged" field.
	Converged bool `json:"converged,omitempty"`
	// Quality holds the value of the "quality" field.
	Quality string `json:"quality,omitempty"`
	// SampleSize holds the value of the "sample_size" field.
	SampleSize   int `json:"sample_size,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FitEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fitevent.FieldConverged:
			values[i] = new(sql.NullBool)
		case fitevent.FieldPL0, fitevent.FieldPT, fitevent.FieldPS, fitevent.FieldPG, fitevent.FieldLogLikelihood:
			values[i] = new(sql.NullFloat64)
		case fitevent.FieldID, fitevent.FieldSequence, fitevent.FieldIterations, fitevent.FieldSampleSize:
			values[i] = new(sql.NullInt64)
		case fitevent.FieldLearnerID, fitevent.FieldSkillID, fitevent.FieldQuality:
			values[i] = new(sql.NullString)
		case fitevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FitEvent fields.
func (fe *FitEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fitevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			fe.ID = int(value.Int64)
		case fitevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				fe.Sequence = value.Int64
			}
		case fitevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				fe.Timestamp = value.Time
			}
		case fitevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				fe.LearnerID = value.String
			}
		case fitevent.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				fe.SkillID = value.String
			}
		case fitevent.FieldPL0:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p_l0", values[i])
			} else if value.Valid {
				fe.PL0 = value.Float64
			}
		case fitevent.FieldPT:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p_t", values[i])
			} else if value.Valid {
				fe.PT = value.Float64
			}
		case fitevent.FieldPS:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p_s", values[i])
			} else if value.Valid {
				fe.PS = value.Float64
			}
		case fitevent.FieldPG:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p_g", values[i])
			} else if value.Valid {
				fe.PG = value.Float64
			}
		case fitevent.FieldLogLikelihood:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field log_likelihood", values[i])
			} else if value.Valid {
				fe.LogLikelihood = value.Float64
			}
		case fitevent.FieldIterations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iterations", values[i])
			} else if value.Valid {
				fe.Iterations = int(value.Int64)
			}
		case fitevent.FieldConverged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field converged", values[i])
			} else if value.Valid {
				fe.Converged = value.Bool
			}
		case fitevent.FieldQuality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quality", values[i])
			} else if value.Valid {
				fe.Quality = value.String
			}
		case fitevent.FieldSampleSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_size", values[i])
			} else if value.Valid {
				fe.SampleSize = int(value.Int64)
			}
		default:
			fe.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FitEvent.
// This includes values selected through modifiers, order, etc.
func (fe *FitEvent) Value(name string) (ent.Value, error) {
	return fe.selectValues.Get(name)
}

// Update returns a builder for updating this FitEvent.
// Note that you need to call FitEvent.Unwrap() before calling this method if this FitEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (fe *FitEvent) Update() *FitEventUpdateOne {
	return NewFitEventClient(fe.config).UpdateOne(fe)
}

// Unwrap unwraps the FitEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (fe *FitEvent) Unwrap() *FitEvent {
	_tx, ok := fe.config.driver.(*txDriver)
	if !ok {
		panic("ent: FitEvent is not a transactional entity")
	}
	fe.config.driver = _tx.drv
	return fe
}

// String implements the fmt.Stringer.
func (fe *FitEvent) String() string {
	var builder strings.Builder
	builder.WriteString("FitEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", fe.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", fe.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(fe.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(fe.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(fe.SkillID)
	builder.WriteString(", ")
	builder.WriteString("p_l0=")
	builder.WriteString(fmt.Sprintf("%v", fe.PL0))
	builder.WriteString(", ")
	builder.WriteString("p_t=")
	builder.WriteString(fmt.Sprintf("%v", fe.PT))
	builder.WriteString(", ")
	builder.WriteString("p_s=")
	builder.WriteString(fmt.Sprintf("%v", fe.PS))
	builder.WriteString(", ")
	builder.WriteString("p_g=")
	builder.WriteString(fmt.Sprintf("%v", fe.PG))
	builder.WriteString(", ")
	builder.WriteString("log_likelihood=")
	builder.WriteString(fmt.Sprintf("%v", fe.LogLikelihood))
	builder.WriteString(", ")
	builder.WriteString("iterations=")
	builder.WriteString(fmt.Sprintf("%v", fe.Iterations))
	builder.WriteString(", ")
	builder.WriteString("converged=")
	builder.WriteString(fmt.Sprintf("%v", fe.Converged))
	builder.WriteString(", ")
	builder.WriteString("quality=")
	builder.WriteString(fe.Quality)
	builder.WriteString(", ")
	builder.WriteString("sample_size=")
	builder.WriteString(fmt.Sprintf("%v", fe.SampleSize))
	builder.WriteByte(')')
	return builder.String()
}

// FitEvents is a parsable slice of FitEvent.
type FitEvents []*FitEvent
