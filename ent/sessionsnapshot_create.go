// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyroom/quizcore/ent/sessionsnapshot"
)

// SessionSnapshotCreate is the builder for creating a SessionSnapshot entity.
type SessionSnapshotCreate struct {
	config
	mutation *SessionSnapshotMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (ssc *SessionSnapshotCreate) SetSessionID(i int64) *SessionSnapshotCreate {
	ssc.mutation.SetSessionID(i)
	return ssc
}

// SetQuestionType sets the "question_type" field.
func (ssc *SessionSnapshotCreate) SetQuestionType(s string) *SessionSnapshotCreate {
	ssc.mutation.SetQuestionType(s)
	return ssc
}

// SetProgress sets the "progress" field.
func (ssc *SessionSnapshotCreate) SetProgress(s []string) *SessionSnapshotCreate {
	ssc.mutation.SetProgress(s)
	return ssc
}

// SetPosition sets the "position" field.
func (ssc *SessionSnapshotCreate) SetPosition(i int) *SessionSnapshotCreate {
	ssc.mutation.SetPosition(i)
	return ssc
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (ssc *SessionSnapshotCreate) SetNillablePosition(i *int) *SessionSnapshotCreate {
	if i != nil {
		ssc.SetPosition(*i)
	}
	return ssc
}

// SetSubmitted sets the "submitted" field.
func (ssc *SessionSnapshotCreate) SetSubmitted(b bool) *SessionSnapshotCreate {
	ssc.mutation.SetSubmitted(b)
	return ssc
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (ssc *SessionSnapshotCreate) SetNillableSubmitted(b *bool) *SessionSnapshotCreate {
	if b != nil {
		ssc.SetSubmitted(*b)
	}
	return ssc
}

// SetUpdatedAt sets the "updated_at" field.
func (ssc *SessionSnapshotCreate) SetUpdatedAt(t time.Time) *SessionSnapshotCreate {
	ssc.mutation.SetUpdatedAt(t)
	return ssc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ssc *SessionSnapshotCreate) SetNillableUpdatedAt(t *time.Time) *SessionSnapshotCreate {
	if t != nil {
		ssc.SetUpdatedAt(*t)
	}
	return ssc
}

// Mutation returns the SessionSnapshotMutation object of the builder.
func (ssc *SessionSnapshotCreate) Mutation() *SessionSnapshotMutation {
	return ssc.mutation
}

// Save creates the SessionSnapshot in the database.
func (ssc *SessionSnapshotCreate) Save(ctx context.Context) (*SessionSnapshot, error) {
	ssc.defaults()
	return withHooks(ctx, ssc.sqlSave, ssc.mutation, ssc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ssc *SessionSnapshotCreate) SaveX(ctx context.Context) *SessionSnapshot {
	v, err := ssc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ssc *SessionSnapshotCreate) Exec(ctx context.Context) error {
	_, err := ssc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssc *SessionSnapshotCreate) ExecX(ctx context.Context) {
	if err := ssc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssc *SessionSnapshotCreate) defaults() {
	if _, ok := ssc.mutation.Position(); !ok {
		v := sessionsnapshot.DefaultPosition
		ssc.mutation.SetPosition(v)
	}
	if _, ok := ssc.mutation.Submitted(); !ok {
		v := sessionsnapshot.DefaultSubmitted
		ssc.mutation.SetSubmitted(v)
	}
	if _, ok := ssc.mutation.UpdatedAt(); !ok {
		v := sessionsnapshot.DefaultUpdatedAt()
		ssc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssc *SessionSnapshotCreate) check() error {
	if _, ok := ssc.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionSnapshot.session_id"`)}
	}
	if _, ok := ssc.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "SessionSnapshot.question_type"`)}
	}
	if v, ok := ssc.mutation.QuestionType(); ok {
		if err := sessionsnapshot.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.question_type": %w`, err)}
		}
	}
	if _, ok := ssc.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "SessionSnapshot.progress"`)}
	}
	if _, ok := ssc.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "SessionSnapshot.position"`)}
	}
	if _, ok := ssc.mutation.Submitted(); !ok {
		return &ValidationError{Name: "submitted", err: errors.New(`ent: missing required field "SessionSnapshot.submitted"`)}
	}
	if _, ok := ssc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionSnapshot.updated_at"`)}
	}
	return nil
}

func (ssc *SessionSnapshotCreate) sqlSave(ctx context.Context) (*SessionSnapshot, error) {
	if err := ssc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ssc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ssc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ssc.mutation.id = &_node.ID
	ssc.mutation.done = true
	return _node, nil
}

func (ssc *SessionSnapshotCreate) createSpec() (*SessionSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionSnapshot{config: ssc.config}
		_spec = sqlgraph.NewCreateSpec(sessionsnapshot.Table, sqlgraph.NewFieldSpec(sessionsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := ssc.mutation.SessionID(); ok {
		_spec.SetField(sessionsnapshot.FieldSessionID, field.TypeInt64, value)
		_node.SessionID = value
	}
	if value, ok := ssc.mutation.QuestionType(); ok {
		_spec.SetField(sessionsnapshot.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := ssc.mutation.Progress(); ok {
		_spec.SetField(sessionsnapshot.FieldProgress, field.TypeJSON, value)
		_node.Progress = value
	}
	if value, ok := ssc.mutation.Position(); ok {
		_spec.SetField(sessionsnapshot.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := ssc.mutation.Submitted(); ok {
		_spec.SetField(sessionsnapshot.FieldSubmitted, field.TypeBool, value)
		_node.Submitted = value
	}
	if value, ok := ssc.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionsnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SessionSnapshotCreateBulk is the builder for creating many SessionSnapshot entities in bulk.
type SessionSnapshotCreateBulk struct {
	config
	err      error
	builders []*SessionSnapshotCreate
}

// Save creates the SessionSnapshot entities in the database.
func (sscb *SessionSnapshotCreateBulk) Save(ctx context.Context) ([]*SessionSnapshot, error) {
	if sscb.err != nil {
		return nil, sscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sscb.builders))
	nodes := make([]*SessionSnapshot, len(sscb.builders))
	mutators := make([]Mutator, len(sscb.builders))
	for i := range sscb.builders {
		func(i int, root context.Context) {
			builder := sscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionSnapshotMutation)
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
					_, err = mutators[i+1].Mutate(root, sscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, sscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sscb *SessionSnapshotCreateBulk) SaveX(ctx context.Context) []*SessionSnapshot {
	v, err := sscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sscb *SessionSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := sscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sscb *SessionSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := sscb.Exec(ctx); err != nil {
		panic(err)
	}
}
