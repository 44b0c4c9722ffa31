package cataloghandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sipeka/internal/domain/catalog"
	"sipeka/internal/transport/http/api"
	"sipeka/internal/transport/http/middleware"
	"sipeka/internal/transport/http/shared"
)

type Handler struct {
	Service  *catalog.Service
	Resolver shared.CallerResolver
}

func NewHandler(service *catalog.Service, resolver shared.CallerResolver) *Handler {
	return &Handler{Service: service, Resolver: resolver}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/indicators", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{indicatorID}", func(r chi.Router) {
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
		})
	})
}

type indicatorRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	page := shared.ParsePagination(r, 50, 200)
	indicators, total, err := h.Service.ListIndicatorsPage(r.Context(), caller, page.Limit, page.Offset)
	if err != nil {
		api.Problem(w, err, "indicator_list_failed", reqID)
		return
	}
	api.Success(w, map[string]any{"items": indicators, "total": total}, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	var req indicatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", reqID)
		return
	}

	indicator, err := h.Service.CreateIndicator(r.Context(), caller, req.Name, req.Description)
	if err != nil {
		api.Problem(w, err, "indicator_create_failed", reqID)
		return
	}
	api.Created(w, indicator, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	var req indicatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", reqID)
		return
	}

	if err := h.Service.UpdateIndicator(r.Context(), caller, chi.URLParam(r, "indicatorID"), req.Name, req.Description); err != nil {
		api.Problem(w, err, "indicator_update_failed", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	if err := h.Service.DeleteIndicator(r.Context(), caller, chi.URLParam(r, "indicatorID")); err != nil {
		api.Problem(w, err, "indicator_delete_failed", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}
