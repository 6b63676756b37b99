package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"agencysite/internal/httpx"

	"github.com/go-chi/chi/v5"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Routes mounts the inquiry endpoint on r.
func (h *HTTPHandler) Routes(r chi.Router) {
	r.Post("/contact", h.Submit)
}

// Submit handles POST /api/v1/contact
// @Summary Send an inquiry
// @Tags contact
// @Accept json
// @Produce json
// @Param request body Inquiry true "Inquiry"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Failure 429 {object} httpx.ErrorResponse
// @Router /api/v1/contact [post]
func (h *HTTPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in Inquiry
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	receipt, err := h.service.Submit(r.Context(), in)
	if err != nil {
		var invalid ValidationErrors
		if errors.As(err, &invalid) {
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid inquiry", toDetails(invalid))
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, receipt)
}

func toDetails(errs ValidationErrors) []httpx.ErrorDetail {
	details := make([]httpx.ErrorDetail, len(errs))
	for i, e := range errs {
		details[i] = httpx.ErrorDetail{Field: e.Field, Message: e.Message}
	}
	return details
}
