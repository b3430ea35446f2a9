package polls

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MaximZagorsk/polls-drf-api/pkg/db"
)

// All service tests run against a fixed calendar day so date-window rules are
// deterministic.
var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// date returns testNow's calendar day shifted by offset days.
func date(offset int) time.Time {
	return DateOf(testNow).AddDate(0, 0, offset)
}

// newTestDB opens a private in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	gdb, err := db.InitialiseDatabase(dsn)
	require.NoError(t, err)

	// keep the shared in-memory database alive for the whole test
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return gdb
}

func makePoll(t *testing.T, gdb *gorm.DB, startOffset, endOffset int) *db.Poll {
	t.Helper()
	poll := db.Poll{
		Name:        "Test poll",
		Description: "fixture",
		StartDate:   date(startOffset),
		EndDate:     date(endOffset),
	}
	require.NoError(t, gdb.Create(&poll).Error)
	return &poll
}

func makeQuestion(t *testing.T, gdb *gorm.DB, pollID uint, text string, qtype db.QuestionType) *db.Question {
	t.Helper()
	question := db.Question{PollID: pollID, Text: text, Type: qtype}
	require.NoError(t, gdb.Create(&question).Error)
	return &question
}

func makeChoice(t *testing.T, gdb *gorm.DB, questionID uint, text string) *db.Choice {
	t.Helper()
	choice := db.Choice{QuestionID: questionID, Text: text}
	require.NoError(t, gdb.Create(&choice).Error)
	return &choice
}

func makeUser(t *testing.T, gdb *gorm.DB, token string) *db.User {
	t.Helper()
	user := db.User{Token: token}
	require.NoError(t, gdb.Create(&user).Error)
	return &user
}

// requireValidationError asserts err is a validation failure on the given
// field with the given message.
func requireValidationError(t *testing.T, err error, field, message string) {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(interface{ Errors() map[string][]string })
	require.True(t, ok, "expected a validation error, got %T: %v", err, err)
	require.Equal(t, map[string][]string{field: {message}}, verr.Errors())
}
