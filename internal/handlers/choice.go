package handlers

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"gorm.io/gorm"

	"github.com/MaximZagorsk/polls-drf-api/config"
	"github.com/MaximZagorsk/polls-drf-api/internal/polls"
	models "github.com/MaximZagorsk/polls-drf-api/pkg/db"
)

// ChoiceHandler handles requests about choices
type ChoiceHandler struct {
	config  *config.Config
	service *polls.ChoiceService
}

// NewChoiceHandler creates a new ChoiceHandler
func NewChoiceHandler(cfg *config.Config, gdb *gorm.DB) *ChoiceHandler {
	return &ChoiceHandler{
		config:  cfg,
		service: polls.NewChoiceService(gdb),
	}
}

type ChoiceBody struct {
	Question *uint   `json:"question"`
	Text     *string `json:"text"`
}

func choiceInfo(choice models.Choice) map[string]any {
	return map[string]any{
		"id":       choice.ID,
		"question": choice.QuestionID,
		"text":     choice.Text,
	}
}

// PostChoice
//
// @Summary		Create a choice
// @Description	Add a choice to a choice-based question of a poll that has not started
// @Tags			choice requiresAuth requiresAdmin
// @Accept			json
// @Produce		json
// @Param			body	body		ChoiceBody	true	"Choice fields"
// @Success		201	{object}	apiResponses.BaseResponse
// @Failure		400	{object}	apiResponses.BadRequestError
// @Router			/choice [post]
func (h *ChoiceHandler) PostChoice(w http.ResponseWriter, r *http.Request) {
	var body ChoiceBody
	if !decodeJSONBody(w, r, &body) {
		return
	}
	if !requireField(w, "question", body.Question) || !requireField(w, "text", body.Text) {
		return
	}

	choice, err := h.service.Create(r.Context(), polls.ChoiceInput{
		QuestionID: *body.Question,
		Text:       *body.Text,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Created(w).WithData(choiceInfo(*choice)).Send()
}

// GetChoiceById
//
// @Summary		Get choice by id
// @Tags			choice requiresAuth requiresAdmin
// @Produce		json
// @Param			id	path		int	true	"Choice ID"
// @Success		200	{object}	apiResponses.BaseResponse
// @Failure		400	{object}	apiResponses.BadRequestError
// @Failure		404	{object}	apiResponses.NotFoundError
// @Router			/choice/{id} [get]
func (h *ChoiceHandler) GetChoiceById(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "choice")
	if !ok {
		return
	}

	choice, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Success(w).WithData(choiceInfo(*choice)).Send()
}

// PutChoiceById
//
// @Summary		Update choice by id
// @Description	Update a choice of a poll that has not started
// @Tags			choice requiresAuth requiresAdmin
// @Accept			json
// @Produce		json
// @Param			id	path		int	true	"Choice ID"
// @Param			body	body		ChoiceBody	true	"Choice fields"
// @Success		200	{object}	apiResponses.BaseResponse
// @Failure		400	{object}	apiResponses.BadRequestError
// @Failure		404	{object}	apiResponses.NotFoundError
// @Router			/choice/{id} [put]
func (h *ChoiceHandler) PutChoiceById(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "choice")
	if !ok {
		return
	}

	var body ChoiceBody
	if !decodeJSONBody(w, r, &body) {
		return
	}

	choice, err := h.service.Update(r.Context(), id, polls.ChoiceUpdate{Text: body.Text})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Success(w).WithData(choiceInfo(*choice)).Send()
}

// DeleteChoiceById
//
// @Summary		Delete choice by id
// @Description	Delete a choice of a poll that has not started
// @Tags			choice requiresAuth requiresAdmin
// @Param			id	path		int	true	"Choice ID"
// @Success		204
// @Failure		404	{object}	apiResponses.NotFoundError
// @Router			/choice/{id} [delete]
func (h *ChoiceHandler) DeleteChoiceById(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "choice")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.NewErr(w).WithStatus(http.StatusNoContent).Send()
}
