package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MonkyMars/gecho"
	"gorm.io/gorm"

	"github.com/MaximZagorsk/polls-drf-api/internal/polls"
	"github.com/MaximZagorsk/polls-drf-api/internal/validation"
	"github.com/MaximZagorsk/polls-drf-api/pkg/logger"
	"github.com/MaximZagorsk/polls-drf-api/pkg/response"
)

const dateFormat = "2006-01-02"

// writeServiceError maps a service failure onto the error taxonomy:
// validation -> 400 field-keyed, not found -> 404, lost uniqueness race ->
// 409, anything else -> 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		response.ValidationError(w, verr.Errors())
	case errors.Is(err, gorm.ErrRecordNotFound):
		gecho.NotFound(w).Send()
	case errors.Is(err, polls.ErrIntegrity):
		gecho.NewErr(w).WithStatus(http.StatusConflict).WithMessage("Integrity error").Send()
	default:
		logger.Err(err.Error())
		gecho.InternalServerError(w).Send()
	}
}

// decodeJSONBody parses the request body into v, reporting malformed JSON to
// the client.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		gecho.BadRequest(w).WithMessage(fmt.Sprintf("Error while decoding json: %s", err.Error())).Send()
		return false
	}
	return true
}

// pathID parses the {id} path value, reporting bad input to the client.
func pathID(w http.ResponseWriter, r *http.Request, resource string) (uint, bool) {
	idStr := r.PathValue("id")
	id, err := strconv.ParseUint(idStr, 10, 0)
	if err != nil {
		gecho.BadRequest(w).WithMessage(fmt.Sprintf("Invalid %s ID, expected positive integer", resource)).Send()
		return 0, false
	}
	return uint(id), true
}

// requireField reports a missing required field as a field-keyed failure.
func requireField[T any](w http.ResponseWriter, field string, value *T) bool {
	if value == nil {
		response.ValidationError(w, validation.New(field, "This field is required.").Errors())
		return false
	}
	return true
}

// parseDate parses a YYYY-MM-DD input field.
func parseDate(w http.ResponseWriter, field, value string) (time.Time, bool) {
	date, err := time.Parse(dateFormat, value)
	if err != nil {
		response.ValidationError(w, validation.New(field,
			"Date has wrong format. Use one of these formats instead: YYYY-MM-DD.").Errors())
		return time.Time{}, false
	}
	return date, true
}
