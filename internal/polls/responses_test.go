package polls

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MaximZagorsk/polls-drf-api/pkg/db"
)

type responseFixture struct {
	svc  *ResponseService
	gdb  *gorm.DB
	user *db.User

	poll     *db.Poll
	text     *db.Question
	single   *db.Question
	multiple *db.Question

	singleChoices   []*db.Choice
	multipleChoices []*db.Choice
}

// newResponseFixture builds an active poll with one question of each type.
func newResponseFixture(t *testing.T) *responseFixture {
	t.Helper()
	gdb := newTestDB(t)
	svc := NewResponseService(gdb)
	svc.today = fixedNow

	f := &responseFixture{
		svc:  svc,
		gdb:  gdb,
		user: makeUser(t, gdb, "token-"+t.Name()),
		poll: makePoll(t, gdb, -1, 3),
	}
	f.text = makeQuestion(t, gdb, f.poll.ID, "Tell us more", db.QuestionTypeText)
	f.single = makeQuestion(t, gdb, f.poll.ID, "Pick one", db.QuestionTypeSingleChoice)
	f.multiple = makeQuestion(t, gdb, f.poll.ID, "Pick several", db.QuestionTypeMultipleChoices)

	for _, text := range []string{"Red", "Green"} {
		f.singleChoices = append(f.singleChoices, makeChoice(t, gdb, f.single.ID, text))
	}
	for _, text := range []string{"Cats", "Dogs", "Birds"} {
		f.multipleChoices = append(f.multipleChoices, makeChoice(t, gdb, f.multiple.ID, text))
	}
	return f
}

func TestCreateTextResponse(t *testing.T) {
	f := newResponseFixture(t)
	ctx := context.Background()

	resp, err := f.svc.CreateText(ctx, f.user, f.text.ID, "It was great")
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, resp.UserID)
	assert.Equal(t, f.text.ID, resp.QuestionID)
	assert.Equal(t, "It was great", resp.Text)

	// second submission to the same question is rejected
	_, err = f.svc.CreateText(ctx, f.user, f.text.ID, "Changed my mind")
	requireValidationError(t, err, "non_field_errors", "The fields user, question must make a unique set.")
}

func TestCreateTextResponseValidation(t *testing.T) {
	f := newResponseFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateText(ctx, f.user, 999, "hello")
	requireValidationError(t, err, "question", `Invalid pk "999" - object does not exist.`)

	_, err = f.svc.CreateText(ctx, f.user, f.single.ID, "hello")
	requireValidationError(t, err, "question", "Question must be of type 1")

	futurePoll := makePoll(t, f.gdb, 1, 3)
	futureQuestion := makeQuestion(t, f.gdb, futurePoll.ID, "Soon", db.QuestionTypeText)
	_, err = f.svc.CreateText(ctx, f.user, futureQuestion.ID, "hello")
	requireValidationError(t, err, "non_field_errors", "The referred poll has not started yet")

	pastPoll := makePoll(t, f.gdb, -5, -1)
	pastQuestion := makeQuestion(t, f.gdb, pastPoll.ID, "Gone", db.QuestionTypeText)
	_, err = f.svc.CreateText(ctx, f.user, pastQuestion.ID, "hello")
	requireValidationError(t, err, "non_field_errors", "The referred poll has expired")
}

func TestCreateSingleChoiceResponse(t *testing.T) {
	f := newResponseFixture(t)
	ctx := context.Background()

	resp, err := f.svc.CreateSingleChoice(ctx, f.user, f.singleChoices[0].ID)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, resp.UserID)
	assert.Equal(t, f.singleChoices[0].ID, resp.ChoiceID)
	// the owning question is derived from the choice at write time
	assert.Equal(t, f.single.ID, resp.QuestionID)

	// a different choice of the same question is still a second response
	_, err = f.svc.CreateSingleChoice(ctx, f.user, f.singleChoices[1].ID)
	requireValidationError(t, err, "non_field_errors", "The referred question can have only one response")
}

func TestCreateSingleChoiceResponseValidation(t *testing.T) {
	f := newResponseFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateSingleChoice(ctx, f.user, 999)
	requireValidationError(t, err, "choice", `Invalid pk "999" - object does not exist.`)

	_, err = f.svc.CreateSingleChoice(ctx, f.user, f.multipleChoices[0].ID)
	requireValidationError(t, err, "choice", "Choice must refer to a question of type 2")
}

func TestCreateMultipleChoicesResponse(t *testing.T) {
	f := newResponseFixture(t)
	ctx := context.Background()

	ids := []uint{f.multipleChoices[0].ID, f.multipleChoices[2].ID}
	result, err := f.svc.CreateMultipleChoices(ctx, f.user.ID, ids)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, result.UserID)
	assert.Equal(t, ids, result.Choices)

	// any later batch against the question is rejected, naming the prior rows
	_, err = f.svc.CreateMultipleChoices(ctx, f.user.ID, []uint{f.multipleChoices[1].ID})
	requireValidationError(t, err, "choices", fmt.Sprintf(
		"Some choices are already set for the referred question: %s",
		renderIDList(ids)))
}

func TestCreateMultipleChoicesResponseValidation(t *testing.T) {
	f := newResponseFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateMultipleChoices(ctx, f.user.ID, nil)
	requireValidationError(t, err, "choices", "Choices list must not be empty")

	_, err = f.svc.CreateMultipleChoices(ctx, 999, []uint{f.multipleChoices[0].ID})
	requireValidationError(t, err, "user", "User does not exist")

	_, err = f.svc.CreateMultipleChoices(ctx, f.user.ID, []uint{f.multipleChoices[0].ID, 998, 999})
	requireValidationError(t, err, "choices", "Some choices don't exist: 998, 999")

	_, err = f.svc.CreateMultipleChoices(ctx, f.user.ID,
		[]uint{f.multipleChoices[0].ID, f.singleChoices[0].ID})
	requireValidationError(t, err, "choices", fmt.Sprintf(
		"All choices must refer to one question. Referred questions: %s",
		renderIDList([]uint{f.single.ID, f.multiple.ID})))

	_, err = f.svc.CreateMultipleChoices(ctx, f.user.ID, []uint{f.singleChoices[0].ID})
	requireValidationError(t, err, "choices", "The referred question must be of type 3")
}

func TestCreateMultipleChoicesAllOrNothing(t *testing.T) {
	f := newResponseFixture(t)
	ctx := context.Background()

	// a duplicated id inside the batch trips the unique index; nothing commits
	id := f.multipleChoices[0].ID
	_, err := f.svc.CreateMultipleChoices(ctx, f.user.ID, []uint{id, id})
	assert.ErrorIs(t, err, ErrIntegrity)

	var count int64
	require.NoError(t, f.gdb.Model(&db.MultipleChoicesResponse{}).Count(&count).Error)
	assert.Zero(t, count)
}
