// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyroom/quizcore/ent/predicate"
	"github.com/studyroom/quizcore/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (seu *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	seu.mutation.Where(ps...)
	return seu
}

// SetSessionID sets the "session_id" field.
func (seu *SessionEventUpdate) SetSessionID(i int64) *SessionEventUpdate {
	seu.mutation.ResetSessionID()
	seu.mutation.SetSessionID(i)
	return seu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableSessionID(i *int64) *SessionEventUpdate {
	if i != nil {
		seu.SetSessionID(*i)
	}
	return seu
}

// AddSessionID adds i to the "session_id" field.
func (seu *SessionEventUpdate) AddSessionID(i int64) *SessionEventUpdate {
	seu.mutation.AddSessionID(i)
	return seu
}

// SetAction sets the "action" field.
func (seu *SessionEventUpdate) SetAction(s string) *SessionEventUpdate {
	seu.mutation.SetAction(s)
	return seu
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableAction(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetAction(*s)
	}
	return seu
}

// SetQuestionType sets the "question_type" field.
func (seu *SessionEventUpdate) SetQuestionType(s string) *SessionEventUpdate {
	seu.mutation.SetQuestionType(s)
	return seu
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableQuestionType(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetQuestionType(*s)
	}
	return seu
}

// SetQuestionCount sets the "question_count" field.
func (seu *SessionEventUpdate) SetQuestionCount(i int) *SessionEventUpdate {
	seu.mutation.ResetQuestionCount()
	seu.mutation.SetQuestionCount(i)
	return seu
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableQuestionCount(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetQuestionCount(*i)
	}
	return seu
}

// AddQuestionCount adds i to the "question_count" field.
func (seu *SessionEventUpdate) AddQuestionCount(i int) *SessionEventUpdate {
	seu.mutation.AddQuestionCount(i)
	return seu
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (seu *SessionEventUpdate) SetElapsedSecs(i int) *SessionEventUpdate {
	seu.mutation.ResetElapsedSecs()
	seu.mutation.SetElapsedSecs(i)
	return seu
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableElapsedSecs(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetElapsedSecs(*i)
	}
	return seu
}

// AddElapsedSecs adds i to the "elapsed_secs" field.
func (seu *SessionEventUpdate) AddElapsedSecs(i int) *SessionEventUpdate {
	seu.mutation.AddElapsedSecs(i)
	return seu
}

// Mutation returns the SessionEventMutation object of the builder.
func (seu *SessionEventUpdate) Mutation() *SessionEventMutation {
	return seu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (seu *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, seu.sqlSave, seu.mutation, seu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seu *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := seu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (seu *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := seu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seu *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := seu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seu *SessionEventUpdate) check() error {
	if v, ok := seu.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (seu *SessionEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := seu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := seu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seu.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := seu.mutation.AddedSessionID(); ok {
		_spec.AddField(sessionevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := seu.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := seu.mutation.QuestionType(); ok {
		_spec.SetField(sessionevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := seu.mutation.QuestionCount(); ok {
		_spec.SetField(sessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedQuestionCount(); ok {
		_spec.AddField(sessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.ElapsedSecs(); ok {
		_spec.SetField(sessionevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedElapsedSecs(); ok {
		_spec.AddField(sessionevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, seu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	seu.mutation.done = true
	return n, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (seuo *SessionEventUpdateOne) SetSessionID(i int64) *SessionEventUpdateOne {
	seuo.mutation.ResetSessionID()
	seuo.mutation.SetSessionID(i)
	return seuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableSessionID(i *int64) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetSessionID(*i)
	}
	return seuo
}

// AddSessionID adds i to the "session_id" field.
func (seuo *SessionEventUpdateOne) AddSessionID(i int64) *SessionEventUpdateOne {
	seuo.mutation.AddSessionID(i)
	return seuo
}

// SetAction sets the "action" field.
func (seuo *SessionEventUpdateOne) SetAction(s string) *SessionEventUpdateOne {
	seuo.mutation.SetAction(s)
	return seuo
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableAction(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetAction(*s)
	}
	return seuo
}

// SetQuestionType sets the "question_type" field.
func (seuo *SessionEventUpdateOne) SetQuestionType(s string) *SessionEventUpdateOne {
	seuo.mutation.SetQuestionType(s)
	return seuo
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableQuestionType(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetQuestionType(*s)
	}
	return seuo
}

// SetQuestionCount sets the "question_count" field.
func (seuo *SessionEventUpdateOne) SetQuestionCount(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetQuestionCount()
	seuo.mutation.SetQuestionCount(i)
	return seuo
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableQuestionCount(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetQuestionCount(*i)
	}
	return seuo
}

// AddQuestionCount adds i to the "question_count" field.
func (seuo *SessionEventUpdateOne) AddQuestionCount(i int) *SessionEventUpdateOne {
	seuo.mutation.AddQuestionCount(i)
	return seuo
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (seuo *SessionEventUpdateOne) SetElapsedSecs(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetElapsedSecs()
	seuo.mutation.SetElapsedSecs(i)
	return seuo
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableElapsedSecs(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetElapsedSecs(*i)
	}
	return seuo
}

// AddElapsedSecs adds i to the "elapsed_secs" field.
func (seuo *SessionEventUpdateOne) AddElapsedSecs(i int) *SessionEventUpdateOne {
	seuo.mutation.AddElapsedSecs(i)
	return seuo
}

// Mutation returns the SessionEventMutation object of the builder.
func (seuo *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return seuo.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (seuo *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	seuo.mutation.Where(ps...)
	return seuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (seuo *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	seuo.fields = append([]string{field}, fields...)
	return seuo
}

// Save executes the query and returns the updated SessionEvent entity.
func (seuo *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, seuo.sqlSave, seuo.mutation, seuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seuo *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := seuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (seuo *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := seuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seuo *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := seuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seuo *SessionEventUpdateOne) check() error {
	if v, ok := seuo.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (seuo *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := seuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := seuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := seuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := seuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seuo.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := seuo.mutation.AddedSessionID(); ok {
		_spec.AddField(sessionevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := seuo.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := seuo.mutation.QuestionType(); ok {
		_spec.SetField(sessionevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := seuo.mutation.QuestionCount(); ok {
		_spec.SetField(sessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedQuestionCount(); ok {
		_spec.AddField(sessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.ElapsedSecs(); ok {
		_spec.SetField(sessionevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedElapsedSecs(); ok {
		_spec.AddField(sessionevent.FieldElapsedSecs, field.TypeInt, value)
	}
	_node = &SessionEvent{config: seuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, seuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	seuo.mutation.done = true
	return _node, nil
}
