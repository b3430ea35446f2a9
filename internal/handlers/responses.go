package handlers

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"gorm.io/gorm"

	"github.com/MaximZagorsk/polls-drf-api/config"
	"github.com/MaximZagorsk/polls-drf-api/internal/middleware"
	"github.com/MaximZagorsk/polls-drf-api/internal/polls"
)

// ResponseHandler handles response submission and the finished/unfinished
// poll listings. Every route behind it requires an anonymous credential.
type ResponseHandler struct {
	config  *config.Config
	service *polls.ResponseService
}

// NewResponseHandler creates a new ResponseHandler
func NewResponseHandler(cfg *config.Config, gdb *gorm.DB) *ResponseHandler {
	return &ResponseHandler{
		config:  cfg,
		service: polls.NewResponseService(gdb),
	}
}

type TextResponseBody struct {
	Question *uint   `json:"question"`
	Text     *string `json:"text"`
}

type SingleChoiceBody struct {
	Choice *uint `json:"choice"`
}

type MultipleChoicesBody struct {
	Choices []uint `json:"choices"`
}

// PostTextResponse
//
// @Summary		Submit a text response
// @Description	Answer a free-text question of an active poll
// @Tags			response requiresAuth
// @Accept			json
// @Produce		json
// @Param			body	body		TextResponseBody	true	"Response fields"
// @Success		201	{object}	apiResponses.BaseResponse
// @Failure		400	{object}	apiResponses.BadRequestError
// @Failure		401	{object}	apiResponses.UnauthorizedError
// @Router			/text-choice [post]
func (h *ResponseHandler) PostTextResponse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.AuthUser(r)
	if !ok {
		gecho.Unauthorized(w).WithMessage("Wrong Token").Send()
		return
	}

	var body TextResponseBody
	if !decodeJSONBody(w, r, &body) {
		return
	}
	if !requireField(w, "question", body.Question) || !requireField(w, "text", body.Text) {
		return
	}

	resp, err := h.service.CreateText(r.Context(), user, *body.Question, *body.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Created(w).WithData(map[string]any{
		"id":       resp.ID,
		"user":     resp.UserID,
		"question": resp.QuestionID,
		"text":     resp.Text,
	}).Send()
}

// PostSingleChoiceResponse
//
// @Summary		Submit a single-choice response
// @Description	Pick one choice of a single-choice question of an active poll
// @Tags			response requiresAuth
// @Accept			json
// @Produce		json
// @Param			body	body		SingleChoiceBody	true	"Response fields"
// @Success		201	{object}	apiResponses.BaseResponse
// @Failure		400	{object}	apiResponses.BadRequestError
// @Failure		401	{object}	apiResponses.UnauthorizedError
// @Router			/single-choice [post]
func (h *ResponseHandler) PostSingleChoiceResponse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.AuthUser(r)
	if !ok {
		gecho.Unauthorized(w).WithMessage("Wrong Token").Send()
		return
	}

	var body SingleChoiceBody
	if !decodeJSONBody(w, r, &body) {
		return
	}
	if !requireField(w, "choice", body.Choice) {
		return
	}

	resp, err := h.service.CreateSingleChoice(r.Context(), user, *body.Choice)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Created(w).WithData(map[string]any{
		"id":     resp.ID,
		"user":   resp.UserID,
		"choice": resp.ChoiceID,
	}).Send()
}

// PostMultipleChoicesResponse
//
// @Summary		Submit a multiple-choices response
// @Description	Pick several choices of one multiple-choices question of an active poll; the batch commits all-or-nothing
// @Tags			response requiresAuth
// @Accept			json
// @Produce		json
// @Param			body	body		MultipleChoicesBody	true	"Response fields"
// @Success		201	{object}	apiResponses.BaseResponse
// @Failure		400	{object}	apiResponses.BadRequestError
// @Failure		401	{object}	apiResponses.UnauthorizedError
// @Router			/multiple-choice [post]
func (h *ResponseHandler) PostMultipleChoicesResponse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.AuthUser(r)
	if !ok {
		gecho.Unauthorized(w).WithMessage("Wrong Token").Send()
		return
	}

	var body MultipleChoicesBody
	if !decodeJSONBody(w, r, &body) {
		return
	}

	result, err := h.service.CreateMultipleChoices(r.Context(), user.ID, body.Choices)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Created(w).WithData(result).Send()
}

// GetFinishedPolls
//
// @Summary		Get finished polls
// @Description	List the polls the caller has fully answered, with their responses
// @Tags			response requiresAuth
// @Produce		json
// @Success		200	{object}	apiResponses.BaseResponse
// @Failure		401	{object}	apiResponses.UnauthorizedError
// @Router			/finished-polls [get]
func (h *ResponseHandler) GetFinishedPolls(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.AuthUser(r)
	if !ok {
		gecho.Unauthorized(w).WithMessage("Wrong Token").Send()
		return
	}

	pollList, err := h.service.FinishedPolls(r.Context(), user)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Success(w).WithData(pollList).Send()
}

// GetUnfinishedPolls
//
// @Summary		Get unfinished polls
// @Description	List the polls the caller has started answering but not finished
// @Tags			response requiresAuth
// @Produce		json
// @Success		200	{object}	apiResponses.BaseResponse
// @Failure		401	{object}	apiResponses.UnauthorizedError
// @Router			/unfinished-polls [get]
func (h *ResponseHandler) GetUnfinishedPolls(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.AuthUser(r)
	if !ok {
		gecho.Unauthorized(w).WithMessage("Wrong Token").Send()
		return
	}

	pollList, err := h.service.UnfinishedPolls(r.Context(), user)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Success(w).WithData(pollList).Send()
}
