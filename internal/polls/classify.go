package polls

import (
	"context"

	"gorm.io/gorm"

	"github.com/MaximZagorsk/polls-drf-api/pkg/db"
)

// answeredQuestionCond matches a question (aliased q) the user has responded
// to through any of the three response kinds. Takes three user id arguments.
const answeredQuestionCond = `(
	EXISTS (SELECT 1 FROM text_responses tr WHERE tr.question_id = q.id AND tr.user_id = ?)
	OR EXISTS (SELECT 1 FROM single_choice_responses scr WHERE scr.question_id = q.id AND scr.user_id = ?)
	OR EXISTS (SELECT 1 FROM multiple_choices_responses mcr
		JOIN choices c ON c.id = mcr.choice_id
		WHERE c.question_id = q.id AND mcr.user_id = ?))`

// candidatePollCond matches polls the user has engaged with at all.
const candidatePollCond = `EXISTS (SELECT 1 FROM questions q WHERE q.poll_id = polls.id AND ` +
	answeredQuestionCond + `)`

// unansweredQuestionCond is the correlated existence check for a question of
// the poll with no response by the user.
const unansweredQuestionCond = `EXISTS (SELECT 1 FROM questions q WHERE q.poll_id = polls.id AND NOT ` +
	answeredQuestionCond + `)`

// QuestionWithResponse is a question projected together with the user's
// response: the text, the chosen choice text, a list of choice texts, or nil.
type QuestionWithResponse struct {
	ID       uint            `json:"id"`
	Text     string          `json:"text"`
	Type     db.QuestionType `json:"type"`
	Response any             `json:"response"`
}

// PollWithResponses is a poll projected with the caller's responses.
type PollWithResponses struct {
	ID          uint                   `json:"id"`
	Name        string                 `json:"name"`
	StartDate   string                 `json:"start"`
	EndDate     string                 `json:"end"`
	Description string                 `json:"description"`
	Questions   []QuestionWithResponse `json:"questions"`
}

// FinishedPolls lists the polls in which the user has responded to every
// question.
func (s *ResponseService) FinishedPolls(ctx context.Context, user *db.User) ([]PollWithResponses, error) {
	return s.classifyPolls(ctx, user, true)
}

// UnfinishedPolls lists the polls the user has engaged with but not fully
// answered. Polls the user never touched appear in neither listing.
func (s *ResponseService) UnfinishedPolls(ctx context.Context, user *db.User) ([]PollWithResponses, error) {
	return s.classifyPolls(ctx, user, false)
}

func (s *ResponseService) classifyPolls(ctx context.Context, user *db.User, finished bool) ([]PollWithResponses, error) {
	u := user.ID

	query := s.db.WithContext(ctx).
		Model(&db.Poll{}).
		Where(candidatePollCond, u, u, u)
	if finished {
		query = query.Where("NOT "+unansweredQuestionCond, u, u, u)
	} else {
		query = query.Where(unansweredQuestionCond, u, u, u)
	}

	var matched []db.Poll
	if err := query.Order("polls.id").Find(&matched).Error; err != nil {
		return nil, err
	}

	result := make([]PollWithResponses, 0, len(matched))
	for _, poll := range matched {
		projected, err := s.projectPoll(ctx, user, &poll)
		if err != nil {
			return nil, err
		}
		result = append(result, *projected)
	}
	return result, nil
}

func (s *ResponseService) projectPoll(ctx context.Context, user *db.User, poll *db.Poll) (*PollWithResponses, error) {
	var questions []db.Question
	err := s.db.WithContext(ctx).
		Where("poll_id = ?", poll.ID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	projected := PollWithResponses{
		ID:          poll.ID,
		Name:        poll.Name,
		StartDate:   poll.StartDate.Format("2006-01-02"),
		EndDate:     poll.EndDate.Format("2006-01-02"),
		Description: poll.Description,
		Questions:   make([]QuestionWithResponse, 0, len(questions)),
	}
	for _, question := range questions {
		response, err := s.responseFor(ctx, user, &question)
		if err != nil {
			return nil, err
		}
		projected.Questions = append(projected.Questions, QuestionWithResponse{
			ID:       question.ID,
			Text:     question.Text,
			Type:     question.Type,
			Response: response,
		})
	}
	return &projected, nil
}

// responseFor resolves the user's response to one question, nil when absent.
func (s *ResponseService) responseFor(ctx context.Context, user *db.User, question *db.Question) (any, error) {
	switch question.Type {
	case db.QuestionTypeText:
		resp, err := gorm.G[db.TextResponse](s.db).
			Where("user_id = ? AND question_id = ?", user.ID, question.ID).
			First(ctx)
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		} else if err != nil {
			return nil, err
		}
		return resp.Text, nil

	case db.QuestionTypeSingleChoice:
		var texts []string
		err := s.db.WithContext(ctx).
			Model(&db.Choice{}).
			Joins("JOIN single_choice_responses scr ON scr.choice_id = choices.id").
			Where("scr.user_id = ? AND choices.question_id = ?", user.ID, question.ID).
			Pluck("choices.text", &texts).Error
		if err != nil {
			return nil, err
		}
		if len(texts) == 0 {
			return nil, nil
		}
		return texts[0], nil

	case db.QuestionTypeMultipleChoices:
		var texts []string
		err := s.db.WithContext(ctx).
			Model(&db.Choice{}).
			Joins("JOIN multiple_choices_responses mcr ON mcr.choice_id = choices.id").
			Where("mcr.user_id = ? AND choices.question_id = ?", user.ID, question.ID).
			Order("choices.id").
			Pluck("choices.text", &texts).Error
		if err != nil {
			return nil, err
		}
		if len(texts) == 0 {
			return nil, nil
		}
		return texts, nil
	}
	return nil, nil
}
