// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/odootrail/ent/badgeevent"
	"github.com/abhisek/odootrail/ent/completionevent"
	"github.com/abhisek/odootrail/ent/llmrequestevent"
	"github.com/abhisek/odootrail/ent/progressrecord"
	"github.com/abhisek/odootrail/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescSessionID is the schema descriptor for session_id field.
	badgeeventDescSessionID := badgeeventFields[0].Descriptor()
	// badgeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	badgeevent.SessionIDValidator = badgeeventDescSessionID.Validators[0].(func(string) error)
	// badgeeventDescBadgeID is the schema descriptor for badge_id field.
	badgeeventDescBadgeID := badgeeventFields[1].Descriptor()
	// badgeevent.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	badgeevent.BadgeIDValidator = badgeeventDescBadgeID.Validators[0].(func(string) error)
	// badgeeventDescBadgeTitle is the schema descriptor for badge_title field.
	badgeeventDescBadgeTitle := badgeeventFields[2].Descriptor()
	// badgeevent.DefaultBadgeTitle holds the default value on creation for the badge_title field.
	badgeevent.DefaultBadgeTitle = badgeeventDescBadgeTitle.Default.(string)
	// badgeeventDescReason is the schema descriptor for reason field.
	badgeeventDescReason := badgeeventFields[3].Descriptor()
	// badgeevent.DefaultReason holds the default value on creation for the reason field.
	badgeevent.DefaultReason = badgeeventDescReason.Default.(string)
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescSessionID is the schema descriptor for session_id field.
	completioneventDescSessionID := completioneventFields[0].Descriptor()
	// completionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	completionevent.SessionIDValidator = completioneventDescSessionID.Validators[0].(func(string) error)
	// completioneventDescLessonID is the schema descriptor for lesson_id field.
	completioneventDescLessonID := completioneventFields[1].Descriptor()
	// completionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	completionevent.LessonIDValidator = completioneventDescLessonID.Validators[0].(func(string) error)
	// completioneventDescLessonTitle is the schema descriptor for lesson_title field.
	completioneventDescLessonTitle := completioneventFields[2].Descriptor()
	// completionevent.DefaultLessonTitle holds the default value on creation for the lesson_title field.
	completionevent.DefaultLessonTitle = completioneventDescLessonTitle.Default.(string)
	// completioneventDescOrigin is the schema descriptor for origin field.
	completioneventDescOrigin := completioneventFields[3].Descriptor()
	// completionevent.OriginValidator is a validator for the "origin" field. It is called by the builders before save.
	completionevent.OriginValidator = completioneventDescOrigin.Validators[0].(func(string) error)
	// completioneventDescXpAwarded is the schema descriptor for xp_awarded field.
	completioneventDescXpAwarded := completioneventFields[4].Descriptor()
	// completionevent.XpAwardedValidator is a validator for the "xp_awarded" field. It is called by the builders before save.
	completionevent.XpAwardedValidator = completioneventDescXpAwarded.Validators[0].(func(int) error)
	// completioneventDescTotalXp is the schema descriptor for total_xp field.
	completioneventDescTotalXp := completioneventFields[5].Descriptor()
	// completionevent.TotalXpValidator is a validator for the "total_xp" field. It is called by the builders before save.
	completionevent.TotalXpValidator = completioneventDescTotalXp.Validators[0].(func(int) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.DefaultModel holds the default value on creation for the model field.
	llmrequestevent.DefaultModel = llmrequesteventDescModel.Default.(string)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescKey is the schema descriptor for key field.
	progressrecordDescKey := progressrecordFields[0].Descriptor()
	// progressrecord.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	progressrecord.KeyValidator = progressrecordDescKey.Validators[0].(func(string) error)
	// progressrecordDescUpdatedAt is the schema descriptor for updated_at field.
	progressrecordDescUpdatedAt := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressrecord.DefaultUpdatedAt = progressrecordDescUpdatedAt.Default.(func() time.Time)
	// progressrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressrecord.UpdateDefaultUpdatedAt = progressrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
