// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/studyroom/quizcore/ent/predicate"
	"github.com/studyroom/quizcore/ent/sessionsnapshot"
)

// SessionSnapshotUpdate is the builder for updating SessionSnapshot entities.
type SessionSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *SessionSnapshotMutation
}

// Where appends a list predicates to the SessionSnapshotUpdate builder.
func (ssu *SessionSnapshotUpdate) Where(ps ...predicate.SessionSnapshot) *SessionSnapshotUpdate {
	ssu.mutation.Where(ps...)
	return ssu
}

// SetSessionID sets the "session_id" field.
func (ssu *SessionSnapshotUpdate) SetSessionID(i int64) *SessionSnapshotUpdate {
	ssu.mutation.ResetSessionID()
	ssu.mutation.SetSessionID(i)
	return ssu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (ssu *SessionSnapshotUpdate) SetNillableSessionID(i *int64) *SessionSnapshotUpdate {
	if i != nil {
		ssu.SetSessionID(*i)
	}
	return ssu
}

// AddSessionID adds i to the "session_id" field.
func (ssu *SessionSnapshotUpdate) AddSessionID(i int64) *SessionSnapshotUpdate {
	ssu.mutation.AddSessionID(i)
	return ssu
}

// SetQuestionType sets the "question_type" field.
func (ssu *SessionSnapshotUpdate) SetQuestionType(s string) *SessionSnapshotUpdate {
	ssu.mutation.SetQuestionType(s)
	return ssu
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (ssu *SessionSnapshotUpdate) SetNillableQuestionType(s *string) *SessionSnapshotUpdate {
	if s != nil {
		ssu.SetQuestionType(*s)
	}
	return ssu
}

// SetProgress sets the "progress" field.
func (ssu *SessionSnapshotUpdate) SetProgress(s []string) *SessionSnapshotUpdate {
	ssu.mutation.SetProgress(s)
	return ssu
}

// AppendProgress appends s to the "progress" field.
func (ssu *SessionSnapshotUpdate) AppendProgress(s []string) *SessionSnapshotUpdate {
	ssu.mutation.AppendProgress(s)
	return ssu
}

// SetPosition sets the "position" field.
func (ssu *SessionSnapshotUpdate) SetPosition(i int) *SessionSnapshotUpdate {
	ssu.mutation.ResetPosition()
	ssu.mutation.SetPosition(i)
	return ssu
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (ssu *SessionSnapshotUpdate) SetNillablePosition(i *int) *SessionSnapshotUpdate {
	if i != nil {
		ssu.SetPosition(*i)
	}
	return ssu
}

// AddPosition adds i to the "position" field.
func (ssu *SessionSnapshotUpdate) AddPosition(i int) *SessionSnapshotUpdate {
	ssu.mutation.AddPosition(i)
	return ssu
}

// SetSubmitted sets the "submitted" field.
func (ssu *SessionSnapshotUpdate) SetSubmitted(b bool) *SessionSnapshotUpdate {
	ssu.mutation.SetSubmitted(b)
	return ssu
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (ssu *SessionSnapshotUpdate) SetNillableSubmitted(b *bool) *SessionSnapshotUpdate {
	if b != nil {
		ssu.SetSubmitted(*b)
	}
	return ssu
}

// SetUpdatedAt sets the "updated_at" field.
func (ssu *SessionSnapshotUpdate) SetUpdatedAt(t time.Time) *SessionSnapshotUpdate {
	ssu.mutation.SetUpdatedAt(t)
	return ssu
}

// Mutation returns the SessionSnapshotMutation object of the builder.
func (ssu *SessionSnapshotUpdate) Mutation() *SessionSnapshotMutation {
	return ssu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ssu *SessionSnapshotUpdate) Save(ctx context.Context) (int, error) {
	ssu.defaults()
	return withHooks(ctx, ssu.sqlSave, ssu.mutation, ssu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ssu *SessionSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := ssu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ssu *SessionSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := ssu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssu *SessionSnapshotUpdate) ExecX(ctx context.Context) {
	if err := ssu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssu *SessionSnapshotUpdate) defaults() {
	if _, ok := ssu.mutation.UpdatedAt(); !ok {
		v := sessionsnapshot.UpdateDefaultUpdatedAt()
		ssu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssu *SessionSnapshotUpdate) check() error {
	if v, ok := ssu.mutation.QuestionType(); ok {
		if err := sessionsnapshot.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.question_type": %w`, err)}
		}
	}
	return nil
}

func (ssu *SessionSnapshotUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ssu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionsnapshot.Table, sessionsnapshot.Columns, sqlgraph.NewFieldSpec(sessionsnapshot.FieldID, field.TypeInt))
	if ps := ssu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ssu.mutation.SessionID(); ok {
		_spec.SetField(sessionsnapshot.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := ssu.mutation.AddedSessionID(); ok {
		_spec.AddField(sessionsnapshot.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := ssu.mutation.QuestionType(); ok {
		_spec.SetField(sessionsnapshot.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := ssu.mutation.Progress(); ok {
		_spec.SetField(sessionsnapshot.FieldProgress, field.TypeJSON, value)
	}
	if value, ok := ssu.mutation.AppendedProgress(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionsnapshot.FieldProgress, value)
		})
	}
	if value, ok := ssu.mutation.Position(); ok {
		_spec.SetField(sessionsnapshot.FieldPosition, field.TypeInt, value)
	}
	if value, ok := ssu.mutation.AddedPosition(); ok {
		_spec.AddField(sessionsnapshot.FieldPosition, field.TypeInt, value)
	}
	if value, ok := ssu.mutation.Submitted(); ok {
		_spec.SetField(sessionsnapshot.FieldSubmitted, field.TypeBool, value)
	}
	if value, ok := ssu.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ssu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ssu.mutation.done = true
	return n, nil
}

// SessionSnapshotUpdateOne is the builder for updating a single SessionSnapshot entity.
type SessionSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionSnapshotMutation
}

// SetSessionID sets the "session_id" field.
func (ssuo *SessionSnapshotUpdateOne) SetSessionID(i int64) *SessionSnapshotUpdateOne {
	ssuo.mutation.ResetSessionID()
	ssuo.mutation.SetSessionID(i)
	return ssuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (ssuo *SessionSnapshotUpdateOne) SetNillableSessionID(i *int64) *SessionSnapshotUpdateOne {
	if i != nil {
		ssuo.SetSessionID(*i)
	}
	return ssuo
}

// AddSessionID adds i to the "session_id" field.
func (ssuo *SessionSnapshotUpdateOne) AddSessionID(i int64) *SessionSnapshotUpdateOne {
	ssuo.mutation.AddSessionID(i)
	return ssuo
}

// SetQuestionType sets the "question_type" field.
func (ssuo *SessionSnapshotUpdateOne) SetQuestionType(s string) *SessionSnapshotUpdateOne {
	ssuo.mutation.SetQuestionType(s)
	return ssuo
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (ssuo *SessionSnapshotUpdateOne) SetNillableQuestionType(s *string) *SessionSnapshotUpdateOne {
	if s != nil {
		ssuo.SetQuestionType(*s)
	}
	return ssuo
}

// SetProgress sets the "progress" field.
func (ssuo *SessionSnapshotUpdateOne) SetProgress(s []string) *SessionSnapshotUpdateOne {
	ssuo.mutation.SetProgress(s)
	return ssuo
}

// AppendProgress appends s to the "progress" field.
func (ssuo *SessionSnapshotUpdateOne) AppendProgress(s []string) *SessionSnapshotUpdateOne {
	ssuo.mutation.AppendProgress(s)
	return ssuo
}

// SetPosition sets the "position" field.
func (ssuo *SessionSnapshotUpdateOne) SetPosition(i int) *SessionSnapshotUpdateOne {
	ssuo.mutation.ResetPosition()
	ssuo.mutation.SetPosition(i)
	return ssuo
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (ssuo *SessionSnapshotUpdateOne) SetNillablePosition(i *int) *SessionSnapshotUpdateOne {
	if i != nil {
		ssuo.SetPosition(*i)
	}
	return ssuo
}

// AddPosition adds i to the "position" field.
func (ssuo *SessionSnapshotUpdateOne) AddPosition(i int) *SessionSnapshotUpdateOne {
	ssuo.mutation.AddPosition(i)
	return ssuo
}

// SetSubmitted sets the "submitted" field.
func (ssuo *SessionSnapshotUpdateOne) SetSubmitted(b bool) *SessionSnapshotUpdateOne {
	ssuo.mutation.SetSubmitted(b)
	return ssuo
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (ssuo *SessionSnapshotUpdateOne) SetNillableSubmitted(b *bool) *SessionSnapshotUpdateOne {
	if b != nil {
		ssuo.SetSubmitted(*b)
	}
	return ssuo
}

// SetUpdatedAt sets the "updated_at" field.
func (ssuo *SessionSnapshotUpdateOne) SetUpdatedAt(t time.Time) *SessionSnapshotUpdateOne {
	ssuo.mutation.SetUpdatedAt(t)
	return ssuo
}

// Mutation returns the SessionSnapshotMutation object of the builder.
func (ssuo *SessionSnapshotUpdateOne) Mutation() *SessionSnapshotMutation {
	return ssuo.mutation
}

// Where appends a list predicates to the SessionSnapshotUpdate builder.
func (ssuo *SessionSnapshotUpdateOne) Where(ps ...predicate.SessionSnapshot) *SessionSnapshotUpdateOne {
	ssuo.mutation.Where(ps...)
	return ssuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ssuo *SessionSnapshotUpdateOne) Select(field string, fields ...string) *SessionSnapshotUpdateOne {
	ssuo.fields = append([]string{field}, fields...)
	return ssuo
}

// Save executes the query and returns the updated SessionSnapshot entity.
func (ssuo *SessionSnapshotUpdateOne) Save(ctx context.Context) (*SessionSnapshot, error) {
	ssuo.defaults()
	return withHooks(ctx, ssuo.sqlSave, ssuo.mutation, ssuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ssuo *SessionSnapshotUpdateOne) SaveX(ctx context.Context) *SessionSnapshot {
	node, err := ssuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ssuo *SessionSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := ssuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssuo *SessionSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := ssuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssuo *SessionSnapshotUpdateOne) defaults() {
	if _, ok := ssuo.mutation.UpdatedAt(); !ok {
		v := sessionsnapshot.UpdateDefaultUpdatedAt()
		ssuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssuo *SessionSnapshotUpdateOne) check() error {
	if v, ok := ssuo.mutation.QuestionType(); ok {
		if err := sessionsnapshot.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.question_type": %w`, err)}
		}
	}
	return nil
}

func (ssuo *SessionSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *SessionSnapshot, err error) {
	if err := ssuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionsnapshot.Table, sessionsnapshot.Columns, sqlgraph.NewFieldSpec(sessionsnapshot.FieldID, field.TypeInt))
	id, ok := ssuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ssuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionsnapshot.FieldID)
		for _, f := range fields {
			if !sessionsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionsnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ssuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ssuo.mutation.SessionID(); ok {
		_spec.SetField(sessionsnapshot.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := ssuo.mutation.AddedSessionID(); ok {
		_spec.AddField(sessionsnapshot.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := ssuo.mutation.QuestionType(); ok {
		_spec.SetField(sessionsnapshot.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := ssuo.mutation.Progress(); ok {
		_spec.SetField(sessionsnapshot.FieldProgress, field.TypeJSON, value)
	}
	if value, ok := ssuo.mutation.AppendedProgress(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionsnapshot.FieldProgress, value)
		})
	}
	if value, ok := ssuo.mutation.Position(); ok {
		_spec.SetField(sessionsnapshot.FieldPosition, field.TypeInt, value)
	}
	if value, ok := ssuo.mutation.AddedPosition(); ok {
		_spec.AddField(sessionsnapshot.FieldPosition, field.TypeInt, value)
	}
	if value, ok := ssuo.mutation.Submitted(); ok {
		_spec.SetField(sessionsnapshot.FieldSubmitted, field.TypeBool, value)
	}
	if value, ok := ssuo.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionSnapshot{config: ssuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ssuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ssuo.mutation.done = true
	return _node, nil
}
