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

// PollHandler handles requests about polls
type PollHandler struct {
	config  *config.Config
	service *polls.PollService
}

// NewPollHandler creates a new PollHandler
func NewPollHandler(cfg *config.Config, gdb *gorm.DB) *PollHandler {
	return &PollHandler{
		config:  cfg,
		service: polls.NewPollService(gdb),
	}
}

type PollBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
}

func pollListInfo(poll models.Poll) map[string]any {
	return map[string]any{
		"id":          poll.ID,
		"name":        poll.Name,
		"description": poll.Description,
		"start":       poll.StartDate.Format(dateFormat),
		"end":         poll.EndDate.Format(dateFormat),
	}
}

func pollInfo(poll models.Poll, questionIDs []uint) map[string]any {
	info := pollListInfo(poll)
	info["questions"] = questionIDs
	return info
}

// GetPolls
//
// @Summary		Get all polls
// @Description	List every poll regardless of its date window
// @Tags			poll requiresAuth requiresAdmin
// @Produce		json
// @Success		200	{object}	apiResponses.BaseResponse
// @Failure		401	{object}	apiResponses.UnauthorizedError
// @Router			/polls [get]
func (h *PollHandler) GetPolls(w http.ResponseWriter, r *http.Request) {
	pollList, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	infos := []map[string]any{}
	for _, poll := range pollList {
		infos = append(infos, pollListInfo(poll))
	}

	gecho.Success(w).WithData(infos).Send()
}

// GetActivePolls
//
// @Summary		Get active polls
// @Description	List the polls currently accepting responses
// @Tags			poll
// @Produce		json
// @Success		200	{object}	apiResponses.BaseResponse
// @Router			/active-polls [get]
func (h *PollHandler) GetActivePolls(w http.ResponseWriter, r *http.Request) {
	pollList, err := h.service.ListActive(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	infos := []map[string]any{}
	for _, poll := range pollList {
		infos = append(infos, pollListInfo(poll))
	}

	gecho.Success(w).WithData(infos).Send()
}

// PostPoll
//
// @Summary		Create a poll
// @Description	Create a poll with a future start date
// @Tags			poll requiresAuth requiresAdmin
// @Accept			json
// @Produce		json
// @Param			body	body		PollBody	true	"Poll fields"
// @Success		201	{object}	apiResponses.BaseResponse
// @Failure		400	{object}	apiResponses.BadRequestError
// @Router			/poll [post]
func (h *PollHandler) PostPoll(w http.ResponseWriter, r *http.Request) {
	var body PollBody
	if !decodeJSONBody(w, r, &body) {
		return
	}
	if !requireField(w, "name", body.Name) ||
		!requireField(w, "start", body.Start) ||
		!requireField(w, "end", body.End) {
		return
	}

	start, ok := parseDate(w, "start", *body.Start)
	if !ok {
		return
	}
	end, ok := parseDate(w, "end", *body.End)
	if !ok {
		return
	}

	input := polls.PollInput{Name: *body.Name, StartDate: start, EndDate: end}
	if body.Description != nil {
		input.Description = *body.Description
	}

	poll, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Created(w).WithData(pollInfo(*poll, []uint{})).Send()
}

// GetPollById
//
// @Summary		Get poll by id
// @Description	Get one poll; non-admin callers only see active polls
// @Tags			poll
// @Produce		json
// @Param			id	path		int	true	"Poll ID"
// @Success		200	{object}	apiResponses.BaseResponse
// @Failure		400	{object}	apiResponses.BadRequestError
// @Failure		404	{object}	apiResponses.NotFoundError
// @Router			/poll/{id} [get]
func (h *PollHandler) GetPollById(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "poll")
	if !ok {
		return
	}

	poll, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// the temporal gate hides inactive polls from non-admin viewers even
	// though the object exists
	if !middleware.IsAdmin(r) {
		if verr := h.service.ValidateActive(poll); verr != nil {
			response.ValidationError(w, verr.Errors())
			return
		}
	}

	questionIDs, err := h.service.QuestionIDs(r.Context(), poll.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Success(w).WithData(pollInfo(*poll, questionIDs)).Send()
}

// PutPollById
//
// @Summary		Update poll by id
// @Description	Update a poll that has not started; the start date is immutable
// @Tags			poll requiresAuth requiresAdmin
// @Accept			json
// @Produce		json
// @Param			id	path		int	true	"Poll ID"
// @Param			body	body		PollBody	true	"Poll fields"
// @Success		200	{object}	apiResponses.BaseResponse
// @Failure		400	{object}	apiResponses.BadRequestError
// @Failure		404	{object}	apiResponses.NotFoundError
// @Router			/poll/{id} [put]
func (h *PollHandler) PutPollById(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "poll")
	if !ok {
		return
	}

	var body PollBody
	if !decodeJSONBody(w, r, &body) {
		return
	}

	upd := polls.PollUpdate{Name: body.Name, Description: body.Description}
	if body.Start != nil {
		start, ok := parseDate(w, "start", *body.Start)
		if !ok {
			return
		}
		upd.StartDate = &start
	}
	if body.End != nil {
		end, ok := parseDate(w, "end", *body.End)
		if !ok {
			return
		}
		upd.EndDate = &end
	}

	poll, err := h.service.Update(r.Context(), id, upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	questionIDs, err := h.service.QuestionIDs(r.Context(), poll.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.Success(w).WithData(pollInfo(*poll, questionIDs)).Send()
}

// DeletePollById
//
// @Summary		Delete poll by id
// @Description	Delete a poll together with its questions, choices and responses
// @Tags			poll requiresAuth requiresAdmin
// @Param			id	path		int	true	"Poll ID"
// @Success		204
// @Failure		404	{object}	apiResponses.NotFoundError
// @Router			/poll/{id} [delete]
func (h *PollHandler) DeletePollById(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "poll")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	gecho.NewErr(w).WithStatus(http.StatusNoContent).Send()
}
