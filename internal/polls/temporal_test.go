package polls

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaximZagorsk/polls-drf-api/pkg/db"
)

func TestDateOf(t *testing.T) {
	in := time.Date(2026, time.March, 10, 23, 59, 59, 999, time.UTC)
	got := DateOf(in)

	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestPollWindow(t *testing.T) {
	poll := &db.Poll{StartDate: date(0), EndDate: date(2)}

	// a poll is active from its start day inclusive to its end day exclusive
	assert.True(t, Started(poll, testNow))
	assert.False(t, Ended(poll, testNow))
	assert.True(t, Active(poll, testNow))

	assert.False(t, Started(poll, date(-1)))
	assert.False(t, Active(poll, date(-1)))

	assert.True(t, Ended(poll, date(2)))
	assert.False(t, Active(poll, date(2)))
}

func TestValidatePollActive(t *testing.T) {
	future := &db.Poll{StartDate: date(1), EndDate: date(3)}
	past := &db.Poll{StartDate: date(-3), EndDate: date(-1)}
	active := &db.Poll{StartDate: date(-1), EndDate: date(1)}

	err := ValidatePollActive(future, testNow)
	require.NotNil(t, err)
	assert.Equal(t, "The poll has not started yet", err.Message)

	err = ValidatePollActive(past, testNow)
	require.NotNil(t, err)
	assert.Equal(t, "The poll has expired", err.Message)

	assert.Nil(t, ValidatePollActive(active, testNow))
}

func TestValidateReferredPollActive(t *testing.T) {
	future := &db.Poll{StartDate: date(1), EndDate: date(3)}
	past := &db.Poll{StartDate: date(-3), EndDate: date(-1)}

	err := ValidateReferredPollActive(future, testNow)
	require.NotNil(t, err)
	assert.Equal(t, "The referred poll has not started yet", err.Message)

	err = ValidateReferredPollActive(past, testNow)
	require.NotNil(t, err)
	assert.Equal(t, "The referred poll has expired", err.Message)
}
