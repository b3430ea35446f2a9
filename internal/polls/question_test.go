package polls

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MaximZagorsk/polls-drf-api/pkg/db"
)

func newQuestionService(t *testing.T) (*QuestionService, *gorm.DB) {
	gdb := newTestDB(t)
	svc := NewQuestionService(gdb)
	svc.today = fixedNow
	return svc, gdb
}

func TestQuestionCreateValidation(t *testing.T) {
	svc, gdb := newQuestionService(t)
	ctx := context.Background()

	future := makePoll(t, gdb, 1, 3)
	started := makePoll(t, gdb, -1, 3)
	makeQuestion(t, gdb, future.ID, "Taken", db.QuestionTypeText)

	tests := []struct {
		name    string
		input   QuestionInput
		field   string
		message string
	}{
		{
			name:    "unknown poll",
			input:   QuestionInput{PollID: 999, Text: "Q", Type: db.QuestionTypeText},
			field:   "poll",
			message: `Invalid pk "999" - object does not exist.`,
		},
		{
			name:    "blank text",
			input:   QuestionInput{PollID: future.ID, Text: " ", Type: db.QuestionTypeText},
			field:   "text",
			message: "This field may not be blank.",
		},
		{
			name:    "text too long",
			input:   QuestionInput{PollID: future.ID, Text: strings.Repeat("x", 257), Type: db.QuestionTypeText},
			field:   "text",
			message: "Ensure this field has no more than 256 characters.",
		},
		{
			name:    "unknown type",
			input:   QuestionInput{PollID: future.ID, Text: "Q", Type: 4},
			field:   "type",
			message: `"4" is not a valid choice.`,
		},
		{
			name:    "started poll",
			input:   QuestionInput{PollID: started.ID, Text: "Q", Type: db.QuestionTypeText},
			field:   "poll",
			message: "Adding questions to started polls is forbidden",
		},
		{
			name:    "duplicate text",
			input:   QuestionInput{PollID: future.ID, Text: "Taken", Type: db.QuestionTypeText},
			field:   "non_field_errors",
			message: "The fields poll, text must make a unique set.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			requireValidationError(t, err, tt.field, tt.message)
		})
	}
}

func TestQuestionCreate(t *testing.T) {
	svc, gdb := newQuestionService(t)
	poll := makePoll(t, gdb, 1, 3)

	question, err := svc.Create(context.Background(), QuestionInput{
		PollID: poll.ID,
		Text:   "What do you think?",
		Type:   db.QuestionTypeText,
	})
	require.NoError(t, err)

	assert.NotZero(t, question.ID)
	assert.Equal(t, poll.ID, question.PollID)

	// the same text is fine under a different poll
	other := makePoll(t, gdb, 1, 3)
	_, err = svc.Create(context.Background(), QuestionInput{
		PollID: other.ID,
		Text:   "What do you think?",
		Type:   db.QuestionTypeText,
	})
	require.NoError(t, err)
}

func TestQuestionUpdateStartedForbidden(t *testing.T) {
	svc, gdb := newQuestionService(t)
	poll := makePoll(t, gdb, -1, 3)
	question := makeQuestion(t, gdb, poll.ID, "Q", db.QuestionTypeText)

	text := "New"
	_, err := svc.Update(context.Background(), question.ID, QuestionUpdate{Text: &text})
	requireValidationError(t, err, "non_field_errors",
		"Modification of questions belonging to started polls is forbidden")
}

func TestQuestionUpdateToTextDropsChoices(t *testing.T) {
	svc, gdb := newQuestionService(t)
	poll := makePoll(t, gdb, 1, 3)
	question := makeQuestion(t, gdb, poll.ID, "Pick", db.QuestionTypeSingleChoice)
	makeChoice(t, gdb, question.ID, "A")
	makeChoice(t, gdb, question.ID, "B")

	newType := db.QuestionTypeText
	updated, err := svc.Update(context.Background(), question.ID, QuestionUpdate{Type: &newType})
	require.NoError(t, err)
	assert.Equal(t, db.QuestionTypeText, updated.Type)

	var count int64
	require.NoError(t, gdb.Model(&db.Choice{}).Where("question_id = ?", question.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestQuestionUpdateBetweenChoiceTypesKeepsChoices(t *testing.T) {
	svc, gdb := newQuestionService(t)
	poll := makePoll(t, gdb, 1, 3)
	question := makeQuestion(t, gdb, poll.ID, "Pick", db.QuestionTypeSingleChoice)
	makeChoice(t, gdb, question.ID, "A")

	newType := db.QuestionTypeMultipleChoices
	_, err := svc.Update(context.Background(), question.ID, QuestionUpdate{Type: &newType})
	require.NoError(t, err)

	var count int64
	require.NoError(t, gdb.Model(&db.Choice{}).Where("question_id = ?", question.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestQuestionDelete(t *testing.T) {
	svc, gdb := newQuestionService(t)
	ctx := context.Background()

	startedPoll := makePoll(t, gdb, -1, 3)
	guarded := makeQuestion(t, gdb, startedPoll.ID, "Q", db.QuestionTypeText)

	err := svc.Delete(ctx, guarded.ID)
	requireValidationError(t, err, "non_field_errors",
		"Deleting questions referring to started polls is forbidden")

	futurePoll := makePoll(t, gdb, 1, 3)
	question := makeQuestion(t, gdb, futurePoll.ID, "Q", db.QuestionTypeSingleChoice)
	makeChoice(t, gdb, question.ID, "A")

	require.NoError(t, svc.Delete(ctx, question.ID))

	var choices int64
	require.NoError(t, gdb.Model(&db.Choice{}).Where("question_id = ?", question.ID).Count(&choices).Error)
	assert.Zero(t, choices)
}
