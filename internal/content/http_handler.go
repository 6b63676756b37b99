package content

import (
	"errors"
	"net/http"
	"strconv"

	"agencysite/internal/httpx"

	"github.com/go-chi/chi/v5"
)

type HTTPHandler struct {
	service *Lookup
	locale  string
}

func NewHTTPHandler(service *Lookup, locale string) *HTTPHandler {
	return &HTTPHandler{service: service, locale: locale}
}

// Routes mounts the read-only content API on r.
func (h *HTTPHandler) Routes(r chi.Router) {
	r.Get("/site", h.Site)
	r.Get("/categories/{kind}", h.Categories)
	r.Get("/content/{kind}", h.List)
	r.Get("/content/{kind}/{id}", h.Get)
	r.Get("/content/{kind}/{id}/related", h.Related)
}

// articleView adds the derived display values to an article.
type articleView struct {
	Article
	ReadTime    int    `json:"readTime"`
	DisplayDate string `json:"displayDate"`
}

func (h *HTTPHandler) present(rec Record) any {
	if a, ok := rec.(Article); ok {
		return articleView{
			Article:     a,
			ReadTime:    a.ReadTime(),
			DisplayDate: FormatDate(a.PublishedAt(), h.locale),
		}
	}
	return rec
}

func (h *HTTPHandler) presentAll(recs []Record) []any {
	out := make([]any, len(recs))
	for i, rec := range recs {
		out[i] = h.present(rec)
	}
	return out
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnknownKind):
		httpx.JSONError(w, r, http.StatusNotFound, "UNKNOWN_KIND", "Unknown content kind", nil)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Content not found", nil)
	case errors.Is(err, ErrInvalidCursor):
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_CURSOR", "Invalid cursor", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

// Site handles GET /api/v1/site
// @Summary Get site sections
// @Description Hero, about, contact and feature highlights
// @Tags content
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /api/v1/site [get]
func (h *HTTPHandler) Site(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, h.service.Site(), nil)
}

// Categories handles GET /api/v1/categories/{kind}
// @Summary List categories
// @Description Filterable categories of a kind, led by "All"
// @Tags content
// @Produce json
// @Param kind path string true "Content kind"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/categories/{kind} [get]
func (h *HTTPHandler) Categories(w http.ResponseWriter, r *http.Request) {
	kind, err := ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	categories, err := h.service.Categories(kind)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, categories, nil)
}

// List handles GET /api/v1/content/{kind}
// @Summary List content
// @Description One page of a kind's records, optionally filtered by category
// @Tags content
// @Produce json
// @Param kind path string true "Content kind"
// @Param category query string false "Category" default(All)
// @Param limit query int false "Page size" default(20)
// @Param cursor query string false "Pagination cursor"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/content/{kind} [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, err := ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))

	page, err := h.service.List(ListQuery{
		Kind:     kind,
		Category: query.Get("category"),
		Cursor:   query.Get("cursor"),
		Limit:    limit,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	meta := map[string]any{"total": page.Total}
	if page.NextCursor != "" {
		meta["next_cursor"] = page.NextCursor
	}
	httpx.JSONSuccess(w, r, h.presentAll(page.Items), meta)
}

// Get handles GET /api/v1/content/{kind}/{id}
// @Summary Resolve a record
// @Tags content
// @Produce json
// @Param kind path string true "Content kind"
// @Param id path string true "Record id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/content/{kind}/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, err := ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	rec, err := h.service.Get(kind, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, h.present(rec), nil)
}

// Related handles GET /api/v1/content/{kind}/{id}/related
// @Summary Related records
// @Description Up to n records sharing the record's category, backfilled from others
// @Tags content
// @Produce json
// @Param kind path string true "Content kind"
// @Param id path string true "Record id"
// @Param n query int false "How many" default(3)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/content/{kind}/{id}/related [get]
func (h *HTTPHandler) Related(w http.ResponseWriter, r *http.Request) {
	kind, err := ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	n := RelatedCount
	if raw := r.URL.Query().Get("n"); raw != "" {
		n, err = strconv.Atoi(raw)
		if err != nil || n < 0 {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "n must be a non-negative integer", nil)
			return
		}
		n = min(n, MaxPageSize)
	}

	related, err := h.service.Related(kind, chi.URLParam(r, "id"), n)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, h.presentAll(related), nil)
}
