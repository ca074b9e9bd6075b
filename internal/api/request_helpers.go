package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/api/shared"
)

// parseIDParam parses the {id} URL parameter as a UUID. On failure it writes
// a 400 response and reports false; the caller should return immediately.
func parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid id format")
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into req and runs the validation
// pipeline. On any failure it writes the error response and reports false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if errs := shared.ValidateRequest(req); errs != nil {
		shared.RespondWithValidationErrors(w, r, errs)
		return false
	}
	return true
}
