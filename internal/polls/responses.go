package polls

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/MaximZagorsk/polls-drf-api/internal/validation"
	"github.com/MaximZagorsk/polls-drf-api/pkg/db"
)

// ResponseService runs the validation pipeline for the three response kinds.
// Pre-checks are advisory; the unique indexes have the last word, and a lost
// race surfaces as ErrIntegrity.
type ResponseService struct {
	db    *gorm.DB
	today func() time.Time
}

func NewResponseService(gdb *gorm.DB) *ResponseService {
	return &ResponseService{db: gdb, today: time.Now}
}

func (s *ResponseService) questionWithPoll(ctx context.Context, questionID uint) (*db.Question, *db.Poll, error) {
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

// CreateText records a text response by user to a question of type TEXT.
func (s *ResponseService) CreateText(ctx context.Context, user *db.User, questionID uint, text string) (*db.TextResponse, error) {
	question, poll, err := s.questionWithPoll(ctx, questionID)
	if err == gorm.ErrRecordNotFound {
		return nil, validation.New("question", fmt.Sprintf(`Invalid pk "%d" - object does not exist.`, questionID))
	} else if err != nil {
		return nil, err
	}

	verr := validation.Run(
		func() *validation.Error { return ValidateReferredPollActive(poll, s.today()) },
		func() *validation.Error {
			if question.Type != db.QuestionTypeText {
				return validation.New("question", "Question must be of type 1")
			}
			return nil
		},
		func() *validation.Error {
			var count int64
			err := s.db.WithContext(ctx).
				Model(&db.TextResponse{}).
				Where("user_id = ? AND question_id = ?", user.ID, question.ID).
				Count(&count).Error
			if err != nil || count > 0 {
				return validation.NonField("The fields user, question must make a unique set.")
			}
			return nil
		},
	)
	if verr != nil {
		return nil, verr
	}

	resp := db.TextResponse{UserID: user.ID, QuestionID: question.ID, Text: text}
	if err := s.db.WithContext(ctx).Create(&resp).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrIntegrity
		}
		return nil, err
	}
	return &resp, nil
}

// CreateSingleChoice records a response by user to a SINGLE_CHOICE question.
// The question is derived from the submitted choice at write time.
func (s *ResponseService) CreateSingleChoice(ctx context.Context, user *db.User, choiceID uint) (*db.SingleChoiceResponse, error) {
	choice, err := gorm.G[db.Choice](s.db).Where("id = ?", choiceID).First(ctx)
	if err == gorm.ErrRecordNotFound {
		return nil, validation.New("choice", fmt.Sprintf(`Invalid pk "%d" - object does not exist.`, choiceID))
	} else if err != nil {
		return nil, err
	}
	question, poll, err := s.questionWithPoll(ctx, choice.QuestionID)
	if err != nil {
		return nil, err
	}

	verr := validation.Run(
		func() *validation.Error { return ValidateReferredPollActive(poll, s.today()) },
		func() *validation.Error {
			var count int64
			err := s.db.WithContext(ctx).
				Model(&db.SingleChoiceResponse{}).
				Where("user_id = ? AND question_id = ?", user.ID, question.ID).
				Count(&count).Error
			if err != nil || count > 0 {
				return validation.NonField("The referred question can have only one response")
			}
			return nil
		},
		func() *validation.Error {
			if question.Type != db.QuestionTypeSingleChoice {
				return validation.New("choice", "Choice must refer to a question of type 2")
			}
			return nil
		},
		func() *validation.Error {
			var count int64
			err := s.db.WithContext(ctx).
				Model(&db.SingleChoiceResponse{}).
				Where("user_id = ? AND choice_id = ?", user.ID, choice.ID).
				Count(&count).Error
			if err != nil || count > 0 {
				return validation.NonField("The fields user, choice must make a unique set.")
			}
			return nil
		},
	)
	if verr != nil {
		return nil, verr
	}

	resp := db.SingleChoiceResponse{UserID: user.ID, ChoiceID: choice.ID, QuestionID: question.ID}
	if err := s.db.WithContext(ctx).Create(&resp).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrIntegrity
		}
		return nil, err
	}
	return &resp, nil
}

// MultipleChoicesResult reports the committed rows of a batch submission.
type MultipleChoicesResult struct {
	UserID  uint   `json:"user"`
	Choices []uint `json:"choices"`
}

// CreateMultipleChoices records a batch of choice selections by user id,
// all referring to the same MULTIPLE_CHOICES question. The batch commits
// all-or-nothing.
func (s *ResponseService) CreateMultipleChoices(ctx context.Context, userID uint, choiceIDs []uint) (*MultipleChoicesResult, error) {
	if len(choiceIDs) == 0 {
		return nil, validation.New("choices", "Choices list must not be empty")
	}

	user, err := gorm.G[db.User](s.db).Where("id = ?", userID).First(ctx)
	if err == gorm.ErrRecordNotFound {
		return nil, validation.New("user", "User does not exist")
	} else if err != nil {
		return nil, err
	}

	var choices []db.Choice
	if err := s.db.WithContext(ctx).Where("id IN ?", choiceIDs).Find(&choices).Error; err != nil {
		return nil, err
	}

	found := make(map[uint]bool, len(choices))
	for _, choice := range choices {
		found[choice.ID] = true
	}
	var missing []uint
	seen := make(map[uint]bool, len(choiceIDs))
	for _, id := range choiceIDs {
		if !found[id] && !seen[id] {
			missing = append(missing, id)
			seen[id] = true
		}
	}
	if len(missing) > 0 {
		return nil, validation.New("choices", fmt.Sprintf("Some choices don't exist: %s", renderIDList(missing)))
	}

	questionIDs := make(map[uint]bool, 1)
	for _, choice := range choices {
		questionIDs[choice.QuestionID] = true
	}
	if len(questionIDs) > 1 {
		ids := make([]uint, 0, len(questionIDs))
		for id := range questionIDs {
			ids = append(ids, id)
		}
		return nil, validation.New("choices", fmt.Sprintf(
			"All choices must refer to one question. Referred questions: %s", renderIDList(ids)))
	}

	question, poll, err := s.questionWithPoll(ctx, choices[0].QuestionID)
	if err != nil {
		return nil, err
	}

	verr := validation.Run(
		func() *validation.Error { return ValidateReferredPollActive(poll, s.today()) },
		func() *validation.Error {
			if question.Type != db.QuestionTypeMultipleChoices {
				return validation.New("choices", "The referred question must be of type 3")
			}
			return nil
		},
		func() *validation.Error {
			// any earlier submission against this question blocks the batch,
			// even when it selected different choices
			var prior []uint
			err := s.db.WithContext(ctx).
				Model(&db.MultipleChoicesResponse{}).
				Joins("JOIN choices ON choices.id = multiple_choices_responses.choice_id").
				Where("multiple_choices_responses.user_id = ? AND choices.question_id = ?", user.ID, question.ID).
				Pluck("multiple_choices_responses.choice_id", &prior).Error
			if err != nil {
				return validation.New("choices", "Some choices are already set for the referred question")
			}
			if len(prior) > 0 {
				return validation.New("choices", fmt.Sprintf(
					"Some choices are already set for the referred question: %s", renderIDList(prior)))
			}
			return nil
		},
	)
	if verr != nil {
		return nil, verr
	}

	saved := make([]uint, 0, len(choiceIDs))
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range choiceIDs {
			resp := db.MultipleChoicesResponse{UserID: user.ID, ChoiceID: id}
			if err := tx.Create(&resp).Error; err != nil {
				return err
			}
			saved = append(saved, resp.ChoiceID)
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrIntegrity
		}
		return nil, err
	}

	return &MultipleChoicesResult{UserID: user.ID, Choices: saved}, nil
}
