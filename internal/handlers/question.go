package handlers

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"gorm.io/gorm"

	"github.com/MaximZagorsk/polls-drf-api/config"
	"github.com/MaximZagorsk/polls-drf-api/internal/middleware"
	"github.com/MaximZagorsk/polls-drf-api/internal/polls"
	"github.com/MaximZagorsk/polls-drf-api/pkg/response"
	models "github.com/MaximZagorsk/polls-drf-api/pkg/db"
)

// QuestionHandler handles requests about questions
type QuestionHandler struct {
	config  *config.Config
	service *polls.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(cfg *config.Config, gdb *gorm.DB) *QuestionHandler {
	return &QuestionHandler{
		config:  cfg,
		service: polls.NewQuestionService(gdb),
	}
}

type QuestionBody struct {
	Poll *uint   `json:"poll"`
	Text *string `json:"text"`
	Type *int    `json:"type"`
}

func questionInfo(question models.Question, choices []models.Choice) map[string]any {
	choiceInfos := []map[string]any{}
	for _, choice := range choices {
		choiceInfos = append(choiceInfos, choiceInfo(choice))
	}
	return map[string]any{
		"id":      question.ID,
		"poll":    question.PollID,
		"text":    question.Text,
		"type":    int(question.Type),
		"choices": choiceInfos,
	}
}

// PostQuestion
//
// @Summary		Create a question
// @Description	Add a question to a poll that has not started
// @Tags			question requiresAuth requiresAdmin
// @Accept			json
// @Produce		json
// @Param			body	body		QuestionBody	true	"Question fields"
// @Success		201	{object}	apiResponses.BaseResponse
// @Failure		400	{object}	apiResponses.BadRequestError
// @Router			/question [post]
func (h *QuestionHandler) PostQuestion(w http.ResponseWriter, r *http.Request) {
	var body QuestionBody
	if !decodeJSONBody(w, r, &body) {
		return
	}
	if !requireField(w, "poll", body.Poll) ||
		!requireField(w, "text", body.Text) ||
		!requireField(w, "type", body.Type) {
		return
	}

	question, err := h.service.Create(r.Context(), polls.QuestionInput{
		PollID: *body.Poll,
		Text:   *body.Text,
		Type:   models.QuestionType(*body.Type),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Created(w).WithData(questionInfo(*question, nil)).Send()
}

// GetQuestionById
//
// @Summary		Get question by id
// @Description	Get one question with its choices; non-admin callers only see questions of active polls
// @Tags			question
// @Produce		json
// @Param			id	path		int	true	"Question ID"
// @Success		200	{object}	apiResponses.BaseResponse
// @Failure		400	{object}	apiResponses.BadRequestError
// @Failure		404	{object}	apiResponses.NotFoundError
// @Router			/question/{id} [get]
func (h *QuestionHandler) GetQuestionById(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "question")
	if !ok {
		return
	}

	question, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if !middleware.IsAdmin(r) {
		poll, err := h.service.Poll(r.Context(), question)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if verr := h.service.ValidateReferredActive(poll); verr != nil {
			response.ValidationError(w, verr.Errors())
			return
		}
	}

	choices, err := h.service.Choices(r.Context(), question.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Success(w).WithData(questionInfo(*question, choices)).Send()
}

// PutQuestionById
//
// @Summary		Update question by id
// @Description	Update a question of a poll that has not started
// @Tags			question requiresAuth requiresAdmin
// @Accept			json
// @Produce		json
// @Param			id	path		int	true	"Question ID"
// @Param			body	body		QuestionBody	true	"Question fields"
// @Success		200	{object}	apiResponses.BaseResponse
// @Failure		400	{object}	apiResponses.BadRequestError
// @Failure		404	{object}	apiResponses.NotFoundError
// @Router			/question/{id} [put]
func (h *QuestionHandler) PutQuestionById(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "question")
	if !ok {
		return
	}

	var body QuestionBody
	if !decodeJSONBody(w, r, &body) {
		return
	}

	upd := polls.QuestionUpdate{Text: body.Text}
	if body.Type != nil {
		t := models.QuestionType(*body.Type)
		upd.Type = &t
	}

	question, err := h.service.Update(r.Context(), id, upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	choices, err := h.service.Choices(r.Context(), question.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Success(w).WithData(questionInfo(*question, choices)).Send()
}

// DeleteQuestionById
//
// @Summary		Delete question by id
// @Description	Delete a question of a poll that has not started
// @Tags			question requiresAuth requiresAdmin
// @Param			id	path		int	true	"Question ID"
// @Success		204
// @Failure		404	{object}	apiResponses.NotFoundError
// @Router			/question/{id} [delete]
func (h *QuestionHandler) DeleteQuestionById(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "question")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.NewErr(w).WithStatus(http.StatusNoContent).Send()
}
