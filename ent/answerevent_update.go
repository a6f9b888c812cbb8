// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyroom/quizcore/ent/answerevent"
	"github.com/studyroom/quizcore/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (aeu *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetSessionID sets the "session_id" field.
func (aeu *AnswerEventUpdate) SetSessionID(i int64) *AnswerEventUpdate {
	aeu.mutation.ResetSessionID()
	aeu.mutation.SetSessionID(i)
	return aeu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableSessionID(i *int64) *AnswerEventUpdate {
	if i != nil {
		aeu.SetSessionID(*i)
	}
	return aeu
}

// AddSessionID adds i to the "session_id" field.
func (aeu *AnswerEventUpdate) AddSessionID(i int64) *AnswerEventUpdate {
	aeu.mutation.AddSessionID(i)
	return aeu
}

// SetQuestionID sets the "question_id" field.
func (aeu *AnswerEventUpdate) SetQuestionID(i int64) *AnswerEventUpdate {
	aeu.mutation.ResetQuestionID()
	aeu.mutation.SetQuestionID(i)
	return aeu
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableQuestionID(i *int64) *AnswerEventUpdate {
	if i != nil {
		aeu.SetQuestionID(*i)
	}
	return aeu
}

// AddQuestionID adds i to the "question_id" field.
func (aeu *AnswerEventUpdate) AddQuestionID(i int64) *AnswerEventUpdate {
	aeu.mutation.AddQuestionID(i)
	return aeu
}

// SetPosition sets the "position" field.
func (aeu *AnswerEventUpdate) SetPosition(i int) *AnswerEventUpdate {
	aeu.mutation.ResetPosition()
	aeu.mutation.SetPosition(i)
	return aeu
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillablePosition(i *int) *AnswerEventUpdate {
	if i != nil {
		aeu.SetPosition(*i)
	}
	return aeu
}

// AddPosition adds i to the "position" field.
func (aeu *AnswerEventUpdate) AddPosition(i int) *AnswerEventUpdate {
	aeu.mutation.AddPosition(i)
	return aeu
}

// SetPicked sets the "picked" field.
func (aeu *AnswerEventUpdate) SetPicked(s string) *AnswerEventUpdate {
	aeu.mutation.SetPicked(s)
	return aeu
}

// SetNillablePicked sets the "picked" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillablePicked(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetPicked(*s)
	}
	return aeu
}

// SetVerdict sets the "verdict" field.
func (aeu *AnswerEventUpdate) SetVerdict(s string) *AnswerEventUpdate {
	aeu.mutation.SetVerdict(s)
	return aeu
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableVerdict(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetVerdict(*s)
	}
	return aeu
}

// SetTimeMs sets the "time_ms" field.
func (aeu *AnswerEventUpdate) SetTimeMs(i int) *AnswerEventUpdate {
	aeu.mutation.ResetTimeMs()
	aeu.mutation.SetTimeMs(i)
	return aeu
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableTimeMs(i *int) *AnswerEventUpdate {
	if i != nil {
		aeu.SetTimeMs(*i)
	}
	return aeu
}

// AddTimeMs adds i to the "time_ms" field.
func (aeu *AnswerEventUpdate) AddTimeMs(i int) *AnswerEventUpdate {
	aeu.mutation.AddTimeMs(i)
	return aeu
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aeu *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (aeu *AnswerEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := aeu.mutation.AddedSessionID(); ok {
		_spec.AddField(answerevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := aeu.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeInt64, value)
	}
	if value, ok := aeu.mutation.AddedQuestionID(); ok {
		_spec.AddField(answerevent.FieldQuestionID, field.TypeInt64, value)
	}
	if value, ok := aeu.mutation.Position(); ok {
		_spec.SetField(answerevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedPosition(); ok {
		_spec.AddField(answerevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.Picked(); ok {
		_spec.SetField(answerevent.FieldPicked, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Verdict(); ok {
		_spec.SetField(answerevent.FieldVerdict, field.TypeString, value)
	}
	if value, ok := aeu.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (aeuo *AnswerEventUpdateOne) SetSessionID(i int64) *AnswerEventUpdateOne {
	aeuo.mutation.ResetSessionID()
	aeuo.mutation.SetSessionID(i)
	return aeuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableSessionID(i *int64) *AnswerEventUpdateOne {
	if i != nil {
		aeuo.SetSessionID(*i)
	}
	return aeuo
}

// AddSessionID adds i to the "session_id" field.
func (aeuo *AnswerEventUpdateOne) AddSessionID(i int64) *AnswerEventUpdateOne {
	aeuo.mutation.AddSessionID(i)
	return aeuo
}

// SetQuestionID sets the "question_id" field.
func (aeuo *AnswerEventUpdateOne) SetQuestionID(i int64) *AnswerEventUpdateOne {
	aeuo.mutation.ResetQuestionID()
	aeuo.mutation.SetQuestionID(i)
	return aeuo
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableQuestionID(i *int64) *AnswerEventUpdateOne {
	if i != nil {
		aeuo.SetQuestionID(*i)
	}
	return aeuo
}

// AddQuestionID adds i to the "question_id" field.
func (aeuo *AnswerEventUpdateOne) AddQuestionID(i int64) *AnswerEventUpdateOne {
	aeuo.mutation.AddQuestionID(i)
	return aeuo
}

// SetPosition sets the "position" field.
func (aeuo *AnswerEventUpdateOne) SetPosition(i int) *AnswerEventUpdateOne {
	aeuo.mutation.ResetPosition()
	aeuo.mutation.SetPosition(i)
	return aeuo
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillablePosition(i *int) *AnswerEventUpdateOne {
	if i != nil {
		aeuo.SetPosition(*i)
	}
	return aeuo
}

// AddPosition adds i to the "position" field.
func (aeuo *AnswerEventUpdateOne) AddPosition(i int) *AnswerEventUpdateOne {
	aeuo.mutation.AddPosition(i)
	return aeuo
}

// SetPicked sets the "picked" field.
func (aeuo *AnswerEventUpdateOne) SetPicked(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetPicked(s)
	return aeuo
}

// SetNillablePicked sets the "picked" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillablePicked(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetPicked(*s)
	}
	return aeuo
}

// SetVerdict sets the "verdict" field.
func (aeuo *AnswerEventUpdateOne) SetVerdict(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetVerdict(s)
	return aeuo
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableVerdict(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetVerdict(*s)
	}
	return aeuo
}

// SetTimeMs sets the "time_ms" field.
func (aeuo *AnswerEventUpdateOne) SetTimeMs(i int) *AnswerEventUpdateOne {
	aeuo.mutation.ResetTimeMs()
	aeuo.mutation.SetTimeMs(i)
	return aeuo
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableTimeMs(i *int) *AnswerEventUpdateOne {
	if i != nil {
		aeuo.SetTimeMs(*i)
	}
	return aeuo
}

// AddTimeMs adds i to the "time_ms" field.
func (aeuo *AnswerEventUpdateOne) AddTimeMs(i int) *AnswerEventUpdateOne {
	aeuo.mutation.AddTimeMs(i)
	return aeuo
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aeuo *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (aeuo *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AnswerEvent entity.
func (aeuo *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (aeuo *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := aeuo.mutation.AddedSessionID(); ok {
		_spec.AddField(answerevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := aeuo.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeInt64, value)
	}
	if value, ok := aeuo.mutation.AddedQuestionID(); ok {
		_spec.AddField(answerevent.FieldQuestionID, field.TypeInt64, value)
	}
	if value, ok := aeuo.mutation.Position(); ok {
		_spec.SetField(answerevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedPosition(); ok {
		_spec.AddField(answerevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.Picked(); ok {
		_spec.SetField(answerevent.FieldPicked, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Verdict(); ok {
		_spec.SetField(answerevent.FieldVerdict, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &AnswerEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
