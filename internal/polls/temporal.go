package polls

import (
	"time"

	"github.com/MaximZagorsk/polls-drf-api/internal/validation"
	"github.com/MaximZagorsk/polls-drf-api/pkg/db"
)

// DateOf normalises a timestamp to its calendar date. All temporal rules in
// this package work at day granularity.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Started reports whether the poll has started as of today.
func Started(poll *db.Poll, today time.Time) bool {
	return !DateOf(today).Before(DateOf(poll.StartDate))
}

// Ended reports whether the poll has ended as of today.
func Ended(poll *db.Poll, today time.Time) bool {
	return !DateOf(today).Before(DateOf(poll.EndDate))
}

// Active reports whether the poll accepts responses as of today.
func Active(poll *db.Poll, today time.Time) bool {
	return Started(poll, today) && !Ended(poll, today)
}

func baseValidatePollActive(notStarted, expired string) func(*db.Poll, time.Time) *validation.Error {
	return func(poll *db.Poll, today time.Time) *validation.Error {
		if !Started(poll, today) {
			return validation.NonField(notStarted)
		}
		if Ended(poll, today) {
			return validation.NonField(expired)
		}
		return nil
	}
}

// ValidatePollActive gates direct reads and writes of a poll.
var ValidatePollActive = baseValidatePollActive(
	"The poll has not started yet",
	"The poll has expired",
)

// ValidateReferredPollActive carries the wording variant for resources that
// reach the poll through a question or choice.
var ValidateReferredPollActive = baseValidatePollActive(
	"The referred poll has not started yet",
	"The referred poll has expired",
)
