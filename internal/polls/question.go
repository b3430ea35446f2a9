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

// QuestionService runs the validation pipeline for question writes.
type QuestionService struct {
	db    *gorm.DB
	today func() time.Time
}

func NewQuestionService(gdb *gorm.DB) *QuestionService {
	return &QuestionService{db: gdb, today: time.Now}
}

type QuestionInput struct {
	PollID uint
	Text   string
	Type   db.QuestionType
}

// QuestionUpdate carries a partial question update; the owning poll cannot
// be reassigned.
type QuestionUpdate struct {
	Text *string
	Type *db.QuestionType
}

func validateQuestionText(text string) *validation.Error {
	if strings.TrimSpace(text) == "" {
		return validation.New("text", "This field may not be blank.")
	}
	if len(text) > 256 {
		return validation.New("text", "Ensure this field has no more than 256 characters.")
	}
	return nil
}

func validateQuestionType(t db.QuestionType) *validation.Error {
	if !t.Valid() {
		return validation.New("type", fmt.Sprintf(`"%d" is not a valid choice.`, t))
	}
	return nil
}

// validateQuestionTextUnique enforces (poll, text) uniqueness, excluding the
// question being updated.
func (s *QuestionService) validateQuestionTextUnique(ctx context.Context, pollID uint, text string, excludeID uint) *validation.Error {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db.Question{}).
		Where("poll_id = ? AND text = ? AND id <> ?", pollID, text, excludeID).
		Count(&count).Error
	if err != nil || count > 0 {
		return validation.NonField("The fields poll, text must make a unique set.")
	}
	return nil
}

func (s *QuestionService) Create(ctx context.Context, in QuestionInput) (*db.Question, error) {
	poll, err := gorm.G[db.Poll](s.db).Where("id = ?", in.PollID).First(ctx)
	if err == gorm.ErrRecordNotFound {
		return nil, validation.New("poll", fmt.Sprintf(`Invalid pk "%d" - object does not exist.`, in.PollID))
	} else if err != nil {
		return nil, err
	}

	verr := validation.Run(
		func() *validation.Error { return validateQuestionText(in.Text) },
		func() *validation.Error { return validateQuestionType(in.Type) },
		func() *validation.Error {
			if Started(&poll, s.today()) {
				return validation.New("poll", "Adding questions to started polls is forbidden")
			}
			return nil
		},
		func() *validation.Error { return s.validateQuestionTextUnique(ctx, in.PollID, in.Text, 0) },
	)
	if verr != nil {
		return nil, verr
	}

	question := db.Question{PollID: in.PollID, Text: in.Text, Type: in.Type}
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrIntegrity
		}
		return nil, err
	}
	return &question, nil
}

// ValidateReferredActive reports why the question's poll is not currently
// accepting responses, or nil when it is.
func (s *QuestionService) ValidateReferredActive(poll *db.Poll) *validation.Error {
	return ValidateReferredPollActive(poll, s.today())
}

func (s *QuestionService) Get(ctx context.Context, id uint) (*db.Question, error) {
	question, err := gorm.G[db.Question](s.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// Choices lists the choices attached to a question.
func (s *QuestionService) Choices(ctx context.Context, questionID uint) ([]db.Choice, error) {
	var choices []db.Choice
	err := s.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("id").
		Find(&choices).Error
	return choices, err
}

// Poll loads the poll owning the given question.
func (s *QuestionService) Poll(ctx context.Context, question *db.Question) (*db.Poll, error) {
	poll, err := gorm.G[db.Poll](s.db).Where("id = ?", question.PollID).First(ctx)
	if err != nil {
		return nil, err
	}
	return &poll, nil
}

func (s *QuestionService) Update(ctx context.Context, id uint, upd QuestionUpdate) (*db.Question, error) {
	question, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	poll, err := s.Poll(ctx, question)
	if err != nil {
		return nil, err
	}

	verr := validation.Run(
		func() *validation.Error {
			if Started(poll, s.today()) {
				return validation.NonField("Modification of questions belonging to started polls is forbidden")
			}
			return nil
		},
		func() *validation.Error {
			if upd.Text != nil {
				return validateQuestionText(*upd.Text)
			}
			return nil
		},
		func() *validation.Error {
			if upd.Type != nil {
				return validateQuestionType(*upd.Type)
			}
			return nil
		},
		func() *validation.Error {
			if upd.Text != nil {
				return s.validateQuestionTextUnique(ctx, question.PollID, *upd.Text, question.ID)
			}
			return nil
		},
	)
	if verr != nil {
		return nil, verr
	}

	// leaving the choice-based types orphans the question's choices
	dropChoices := upd.Type != nil && *upd.Type != question.Type && *upd.Type == db.QuestionTypeText

	if upd.Text != nil {
		question.Text = *upd.Text
	}
	if upd.Type != nil {
		question.Type = *upd.Type
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if dropChoices {
			if err := tx.Where("question_id = ?", question.ID).Delete(&db.Choice{}).Error; err != nil {
				return err
			}
		}
		return tx.Save(question).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrIntegrity
		}
		return nil, err
	}
	return question, nil
}

// Delete removes a question unless its poll has started.
func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	question, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	poll, err := s.Poll(ctx, question)
	if err != nil {
		return err
	}
	if Started(poll, s.today()) {
		return validation.NonField("Deleting questions referring to started polls is forbidden")
	}

	_, err = gorm.G[db.Question](s.db).Where("id = ?", id).Delete(ctx)
	return err
}
