package reviews

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/studynova/ingest/internal/auth"
	"github.com/studynova/ingest/pkg/handlers"
	"github.com/studynova/ingest/pkg/pagination"
	"github.com/studynova/ingest/pkg/routes"
)

// Handler provides HTTP endpoints for review operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a review handler with the specified configuration.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "reviews"),
		pagination: pagination,
	}
}

// Routes returns the review endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/reviews",
		Tags:        []string{"Reviews"},
		Description: "Pending review editing and decisions",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "PUT", Pattern: "/{id}/records/{index}", Handler: h.UpdateRecord, OpenAPI: Spec.UpdateRecord},
			{Method: "POST", Pattern: "/{id}/records", Handler: h.AddRecord, OpenAPI: Spec.AddRecord},
			{Method: "DELETE", Pattern: "/{id}/records/{index}", Handler: h.RemoveRecord, OpenAPI: Spec.RemoveRecord},
			{Method: "POST", Pattern: "/{id}/decision", Handler: h.Decide, OpenAPI: Spec.Decide},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	review, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, review)
}

func (h *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	if err := auth.RequireAdmin(r.Context()); err != nil {
		handlers.RespondError(w, h.logger, auth.MapHTTPStatus(err), err)
		return
	}

	id, index, err := recordPath(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd UpdateRecordCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	review, err := h.sys.UpdateRecord(r.Context(), id, index, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, review)
}

func (h *Handler) AddRecord(w http.ResponseWriter, r *http.Request) {
	if err := auth.RequireAdmin(r.Context()); err != nil {
		handlers.RespondError(w, h.logger, auth.MapHTTPStatus(err), err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	review, err := h.sys.AddRecord(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, review)
}

func (h *Handler) RemoveRecord(w http.ResponseWriter, r *http.Request) {
	if err := auth.RequireAdmin(r.Context()); err != nil {
		handlers.RespondError(w, h.logger, auth.MapHTTPStatus(err), err)
		return
	}

	id, index, err := recordPath(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	review, err := h.sys.RemoveRecord(r.Context(), id, index)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, review)
}

func (h *Handler) Decide(w http.ResponseWriter, r *http.Request) {
	if err := auth.RequireAdmin(r.Context()); err != nil {
		handlers.RespondError(w, h.logger, auth.MapHTTPStatus(err), err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd DecideCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	decision, err := h.sys.Decide(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, decision)
}

func recordPath(r *http.Request) (uuid.UUID, int, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, 0, err
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		return uuid.Nil, 0, err
	}

	return id, index, nil
}
