// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/studyroom/quizcore/ent/answerevent"
	"github.com/studyroom/quizcore/ent/schema"
	"github.com/studyroom/quizcore/ent/sessionevent"
	"github.com/studyroom/quizcore/ent/sessionsnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[5].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionType is the schema descriptor for question_type field.
	sessioneventDescQuestionType := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultQuestionType holds the default value on creation for the question_type field.
	sessionevent.DefaultQuestionType = sessioneventDescQuestionType.Default.(string)
	// sessioneventDescQuestionCount is the schema descriptor for question_count field.
	sessioneventDescQuestionCount := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	sessionevent.DefaultQuestionCount = sessioneventDescQuestionCount.Default.(int)
	// sessioneventDescElapsedSecs is the schema descriptor for elapsed_secs field.
	sessioneventDescElapsedSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultElapsedSecs holds the default value on creation for the elapsed_secs field.
	sessionevent.DefaultElapsedSecs = sessioneventDescElapsedSecs.Default.(int)
	sessionsnapshotFields := schema.SessionSnapshot{}.Fields()
	_ = sessionsnapshotFields
	// sessionsnapshotDescQuestionType is the schema descriptor for question_type field.
	sessionsnapshotDescQuestionType := sessionsnapshotFields[1].Descriptor()
	// sessionsnapshot.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	sessionsnapshot.QuestionTypeValidator = sessionsnapshotDescQuestionType.Validators[0].(func(string) error)
	// sessionsnapshotDescPosition is the schema descriptor for position field.
	sessionsnapshotDescPosition := sessionsnapshotFields[3].Descriptor()
	// sessionsnapshot.DefaultPosition holds the default value on creation for the position field.
	sessionsnapshot.DefaultPosition = sessionsnapshotDescPosition.Default.(int)
	// sessionsnapshotDescSubmitted is the schema descriptor for submitted field.
	sessionsnapshotDescSubmitted := sessionsnapshotFields[4].Descriptor()
	// sessionsnapshot.DefaultSubmitted holds the default value on creation for the submitted field.
	sessionsnapshot.DefaultSubmitted = sessionsnapshotDescSubmitted.Default.(bool)
	// sessionsnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	sessionsnapshotDescUpdatedAt := sessionsnapshotFields[5].Descriptor()
	// sessionsnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionsnapshot.DefaultUpdatedAt = sessionsnapshotDescUpdatedAt.Default.(func() time.Time)
	// sessionsnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionsnapshot.UpdateDefaultUpdatedAt = sessionsnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
}
