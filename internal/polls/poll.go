package polls

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/MaximZagorsk/polls-drf-api/internal/validation"
	"github.com/MaximZagorsk/polls-drf-api/pkg/db"
)

// PollService runs the validation pipeline for poll writes and serves poll
// reads. Every mutation is one transaction.
type PollService struct {
	db    *gorm.DB
	today func() time.Time
}

func NewPollService(gdb *gorm.DB) *PollService {
	return &PollService{db: gdb, today: time.Now}
}

// PollInput carries the fields of a poll creation request.
type PollInput struct {
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// PollUpdate carries a partial poll update; nil fields are left untouched.
type PollUpdate struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
}

func validatePollName(name string) *validation.Error {
	if strings.TrimSpace(name) == "" {
		return validation.New("name", "This field may not be blank.")
	}
	if len(name) > 20 {
		return validation.New("name", "Ensure this field has no more than 20 characters.")
	}
	return nil
}

func (s *PollService) Create(ctx context.Context, in PollInput) (*db.Poll, error) {
	today := s.today()

	err := validation.Run(
		func() *validation.Error { return validatePollName(in.Name) },
		func() *validation.Error {
			if !DateOf(in.StartDate).After(DateOf(today)) {
				return validation.New("start", "Start date must be set in the future")
			}
			return nil
		},
		func() *validation.Error {
			if !DateOf(in.EndDate).After(DateOf(in.StartDate)) {
				return validation.New("end", "End date must be greater than start date")
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	poll := db.Poll{
		Name:        in.Name,
		Description: in.Description,
		StartDate:   DateOf(in.StartDate),
		EndDate:     DateOf(in.EndDate),
	}
	if err := s.db.WithContext(ctx).Create(&poll).Error; err != nil {
		return nil, err
	}
	return &poll, nil
}

// ValidateActive reports why the poll is not currently accepting responses,
// or nil when it is.
func (s *PollService) ValidateActive(poll *db.Poll) *validation.Error {
	return ValidatePollActive(poll, s.today())
}

func (s *PollService) Get(ctx context.Context, id uint) (*db.Poll, error) {
	poll, err := gorm.G[db.Poll](s.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &poll, nil
}

// QuestionIDs lists the ids of the poll's questions, for the detail
// representation.
func (s *PollService) QuestionIDs(ctx context.Context, pollID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&db.Question{}).
		Where("poll_id = ?", pollID).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

// List returns every poll regardless of its date window.
func (s *PollService) List(ctx context.Context) ([]db.Poll, error) {
	var polls []db.Poll
	err := s.db.WithContext(ctx).Order("id").Find(&polls).Error
	return polls, err
}

// ListActive returns the polls currently accepting responses.
func (s *PollService) ListActive(ctx context.Context) ([]db.Poll, error) {
	today := DateOf(s.today())

	var polls []db.Poll
	err := s.db.WithContext(ctx).
		Where("start_date <= ? AND end_date > ?", today, today).
		Order("id").
		Find(&polls).Error
	return polls, err
}

func (s *PollService) Update(ctx context.Context, id uint, upd PollUpdate) (*db.Poll, error) {
	poll, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	today := s.today()

	verr := validation.Run(
		func() *validation.Error {
			if Started(poll, today) {
				return validation.NonField("Modification of a started poll is forbidden")
			}
			return nil
		},
		func() *validation.Error {
			// start is immutable after creation regardless of poll state
			if upd.StartDate != nil && !DateOf(*upd.StartDate).Equal(DateOf(poll.StartDate)) {
				return validation.New("start", fmt.Sprintf(
					`Start date should not be modified. Current value is "%s"`,
					poll.StartDate.Format(time.DateOnly)))
			}
			return nil
		},
		func() *validation.Error {
			if upd.Name != nil {
				return validatePollName(*upd.Name)
			}
			return nil
		},
		func() *validation.Error {
			end := poll.EndDate
			if upd.EndDate != nil {
				end = *upd.EndDate
			}
			if !DateOf(end).After(DateOf(poll.StartDate)) {
				return validation.New("end", "End date must be greater than start date")
			}
			return nil
		},
	)
	if verr != nil {
		return nil, verr
	}

	if upd.Name != nil {
		poll.Name = *upd.Name
	}
	if upd.Description != nil {
		poll.Description = *upd.Description
	}
	if upd.EndDate != nil {
		poll.EndDate = DateOf(*upd.EndDate)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(poll).Error
	})
	if err != nil {
		return nil, err
	}
	return poll, nil
}

// Delete removes a poll and, through the cascade constraints, its questions,
// choices and responses.
func (s *PollService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	_, err := gorm.G[db.Poll](s.db).Where("id = ?", id).Delete(ctx)
	return err
}
