// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studyroom/quizcore/ent/sessionsnapshot"
)

// SessionSnapshot is the model entity for the SessionSnapshot schema.
type SessionSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Backend quiz session id
	SessionID int64 `json:"session_id,omitempty"`
	// CHOICE, OX or INITIALS
	QuestionType string `json:"question_type,omitempty"`
	// One mark per question: O, X or empty for unanswered
	Progress []string `json:"progress,omitempty"`
	// 1-based position the user was on
	Position int `json:"position,omitempty"`
	// Whether the session's answers were submitted
	Submitted bool `json:"submitted,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionsnapshot.FieldProgress:
			values[i] = new([]byte)
		case sessionsnapshot.FieldSubmitted:
			values[i] = new(sql.NullBool)
		case sessionsnapshot.FieldID, sessionsnapshot.FieldSessionID, sessionsnapshot.FieldPosition:
			values[i] = new(sql.NullInt64)
		case sessionsnapshot.FieldQuestionType:
			values[i] = new(sql.NullString)
		case sessionsnapshot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionSnapshot fields.
func (ss *SessionSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ss.ID = int(value.Int64)
		case sessionsnapshot.FieldSessionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				ss.SessionID = value.Int64
			}
		case sessionsnapshot.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				ss.QuestionType = value.String
			}
		case sessionsnapshot.FieldProgress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ss.Progress); err != nil {
					return fmt.Errorf("unmarshal field progress: %w", err)
				}
			}
		case sessionsnapshot.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				ss.Position = int(value.Int64)
			}
		case sessionsnapshot.FieldSubmitted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field submitted", values[i])
			} else if value.Valid {
				ss.Submitted = value.Bool
			}
		case sessionsnapshot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ss.UpdatedAt = value.Time
			}
		default:
			ss.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionSnapshot.
// This includes values selected through modifiers, order, etc.
func (ss *SessionSnapshot) Value(name string) (ent.Value, error) {
	return ss.selectValues.Get(name)
}

// Update returns a builder for updating this SessionSnapshot.
// Note that you need to call SessionSnapshot.Unwrap() before calling this method if this SessionSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (ss *SessionSnapshot) Update() *SessionSnapshotUpdateOne {
	return NewSessionSnapshotClient(ss.config).UpdateOne(ss)
}

// Unwrap unwraps the SessionSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ss *SessionSnapshot) Unwrap() *SessionSnapshot {
	_tx, ok := ss.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionSnapshot is not a transactional entity")
	}
	ss.config.driver = _tx.drv
	return ss
}

// String implements the fmt.Stringer.
func (ss *SessionSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("SessionSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ss.ID))
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", ss.SessionID))
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(ss.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", ss.Progress))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", ss.Position))
	builder.WriteString(", ")
	builder.WriteString("submitted=")
	builder.WriteString(fmt.Sprintf("%v", ss.Submitted))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ss.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionSnapshots is a parsable slice of SessionSnapshot.
type SessionSnapshots []*SessionSnapshot
