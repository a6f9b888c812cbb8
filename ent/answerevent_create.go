// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyroom/quizcore/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (aec *AnswerEventCreate) SetSequence(i int64) *AnswerEventCreate {
	aec.mutation.SetSequence(i)
	return aec
}

// SetTimestamp sets the "timestamp" field.
func (aec *AnswerEventCreate) SetTimestamp(t time.Time) *AnswerEventCreate {
	aec.mutation.SetTimestamp(t)
	return aec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (aec *AnswerEventCreate) SetNillableTimestamp(t *time.Time) *AnswerEventCreate {
	if t != nil {
		aec.SetTimestamp(*t)
	}
	return aec
}

// SetSessionID sets the "session_id" field.
func (aec *AnswerEventCreate) SetSessionID(i int64) *AnswerEventCreate {
	aec.mutation.SetSessionID(i)
	return aec
}

// SetQuestionID sets the "question_id" field.
func (aec *AnswerEventCreate) SetQuestionID(i int64) *AnswerEventCreate {
	aec.mutation.SetQuestionID(i)
	return aec
}

// SetPosition sets the "position" field.
func (aec *AnswerEventCreate) SetPosition(i int) *AnswerEventCreate {
	aec.mutation.SetPosition(i)
	return aec
}

// SetPicked sets the "picked" field.
func (aec *AnswerEventCreate) SetPicked(s string) *AnswerEventCreate {
	aec.mutation.SetPicked(s)
	return aec
}

// SetVerdict sets the "verdict" field.
func (aec *AnswerEventCreate) SetVerdict(s string) *AnswerEventCreate {
	aec.mutation.SetVerdict(s)
	return aec
}

// SetTimeMs sets the "time_ms" field.
func (aec *AnswerEventCreate) SetTimeMs(i int) *AnswerEventCreate {
	aec.mutation.SetTimeMs(i)
	return aec
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (aec *AnswerEventCreate) SetNillableTimeMs(i *int) *AnswerEventCreate {
	if i != nil {
		aec.SetTimeMs(*i)
	}
	return aec
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aec *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return aec.mutation
}

// Save creates the AnswerEvent in the database.
func (aec *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *AnswerEventCreate) defaults() {
	if _, ok := aec.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		aec.mutation.SetTimestamp(v)
	}
	if _, ok := aec.mutation.TimeMs(); !ok {
		v := answerevent.DefaultTimeMs
		aec.mutation.SetTimeMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *AnswerEventCreate) check() error {
	if _, ok := aec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := aec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := aec.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerEvent.session_id"`)}
	}
	if _, ok := aec.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AnswerEvent.question_id"`)}
	}
	if _, ok := aec.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "AnswerEvent.position"`)}
	}
	if _, ok := aec.mutation.Picked(); !ok {
		return &ValidationError{Name: "picked", err: errors.New(`ent: missing required field "AnswerEvent.picked"`)}
	}
	if _, ok := aec.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "AnswerEvent.verdict"`)}
	}
	if _, ok := aec.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "AnswerEvent.time_ms"`)}
	}
	return nil
}

func (aec *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	if value, ok := aec.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := aec.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := aec.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeInt64, value)
		_node.SessionID = value
	}
	if value, ok := aec.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeInt64, value)
		_node.QuestionID = value
	}
	if value, ok := aec.mutation.Position(); ok {
		_spec.SetField(answerevent.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := aec.mutation.Picked(); ok {
		_spec.SetField(answerevent.FieldPicked, field.TypeString, value)
		_node.Picked = value
	}
	if value, ok := aec.mutation.Verdict(); ok {
		_spec.SetField(answerevent.FieldVerdict, field.TypeString, value)
		_node.Verdict = value
	}
	if value, ok := aec.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	return _node, _spec
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
}

// Save creates the AnswerEvent entities in the database.
func (aecb *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*AnswerEvent, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}
