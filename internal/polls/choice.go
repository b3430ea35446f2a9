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

// ChoiceService runs the validation pipeline for choice writes.
type ChoiceService struct {
	db    *gorm.DB
	today func() time.Time
}

func NewChoiceService(gdb *gorm.DB) *ChoiceService {
	return &ChoiceService{db: gdb, today: time.Now}
}

type ChoiceInput struct {
	QuestionID uint
	Text       string
}

type ChoiceUpdate struct {
	Text *string
}

func validateChoiceText(text string) *validation.Error {
	if strings.TrimSpace(text) == "" {
		return validation.New("text", "This field may not be blank.")
	}
	if len(text) > 30 {
		return validation.New("text", "Ensure this field has no more than 30 characters.")
	}
	return nil
}

func (s *ChoiceService) validateChoiceTextUnique(ctx context.Context, questionID uint, text string, excludeID uint) *validation.Error {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db.Choice{}).
		Where("question_id = ? AND text = ? AND id <> ?", questionID, text, excludeID).
		Count(&count).Error
	if err != nil || count > 0 {
		return validation.NonField("The fields question, text must make a unique set.")
	}
	return nil
}

// pollOf walks choice -> question -> poll.
func (s *ChoiceService) pollOf(ctx context.Context, questionID uint) (*db.Question, *db.Poll, error) {
	question, err := gorm.G[db.Question](s.db).Where("id = ?", questionID).First(ctx)
	if err != nil {
		return nil, nil, err
	}
	poll, err := gorm.G[db.Poll](s.db).Where("id = ?", question.PollID).First(ctx)
	if err != nil {
		return nil, nil, err
	}
	return &question, &poll, nil
}

func (s *ChoiceService) Create(ctx context.Context, in ChoiceInput) (*db.Choice, error) {
	question, poll, err := s.pollOf(ctx, in.QuestionID)
	if err == gorm.ErrRecordNotFound {
		return nil, validation.New("question", fmt.Sprintf(`Invalid pk "%d" - object does not exist.`, in.QuestionID))
	} else if err != nil {
		return nil, err
	}

	verr := validation.Run(
		func() *validation.Error {
			if !question.Type.ChoiceBased() {
				return validation.New("question", "Can't add choice to question of type text")
			}
			return nil
		},
		func() *validation.Error {
			if Started(poll, s.today()) {
				return validation.New("question", "Can't add choices to questions referring to a started poll")
			}
			return nil
		},
		func() *validation.Error { return validateChoiceText(in.Text) },
		func() *validation.Error { return s.validateChoiceTextUnique(ctx, in.QuestionID, in.Text, 0) },
	)
	if verr != nil {
		return nil, verr
	}

	choice := db.Choice{QuestionID: in.QuestionID, Text: in.Text}
	if err := s.db.WithContext(ctx).Create(&choice).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrIntegrity
		}
		return nil, err
	}
	return &choice, nil
}

func (s *ChoiceService) Get(ctx context.Context, id uint) (*db.Choice, error) {
	choice, err := gorm.G[db.Choice](s.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &choice, nil
}

func (s *ChoiceService) Update(ctx context.Context, id uint, upd ChoiceUpdate) (*db.Choice, error) {
	choice, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	_, poll, err := s.pollOf(ctx, choice.QuestionID)
	if err != nil {
		return nil, err
	}

	verr := validation.Run(
		func() *validation.Error {
			if Started(poll, s.today()) {
				return validation.NonField("Modification of choices belonging to started polls is forbidden")
			}
			return nil
		},
		func() *validation.Error {
			if upd.Text != nil {
				return validateChoiceText(*upd.Text)
			}
			return nil
		},
		func() *validation.Error {
			if upd.Text != nil {
				return s.validateChoiceTextUnique(ctx, choice.QuestionID, *upd.Text, choice.ID)
			}
			return nil
		},
	)
	if verr != nil {
		return nil, verr
	}

	if upd.Text != nil {
		choice.Text = *upd.Text
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(choice).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrIntegrity
		}
		return nil, err
	}
	return choice, nil
}

// Delete removes a choice unless the transitively owning poll has started.
func (s *ChoiceService) Delete(ctx context.Context, id uint) error {
	choice, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	_, poll, err := s.pollOf(ctx, choice.QuestionID)
	if err != nil {
		return err
	}
	if Started(poll, s.today()) {
		return validation.NonField("Deleting choices referring to started polls is forbidden")
	}

	_, err = gorm.G[db.Choice](s.db).Where("id = ?", id).Delete(ctx)
	return err
}
