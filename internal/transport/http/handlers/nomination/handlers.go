package nominationhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sipeka/internal/domain/nomination"
	"sipeka/internal/transport/http/api"
	"sipeka/internal/transport/http/middleware"
	"sipeka/internal/transport/http/shared"
)

type Handler struct {
	Service  *nomination.Service
	Resolver shared.CallerResolver
}

func NewHandler(service *nomination.Service, resolver shared.CallerResolver) *Handler {
	return &Handler{Service: service, Resolver: resolver}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/nominations", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/pending", h.handleListPending)
		r.Get("/mine", h.handleListOwn)
	})
}

type createRequest struct {
	EmployeeID string `json:"employeeId"`
	Period     string `json:"period"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", reqID)
		return
	}

	nom, err := h.Service.Create(r.Context(), caller, req.EmployeeID, req.Period)
	if err != nil {
		api.Problem(w, err, "nomination_create_failed", reqID)
		return
	}
	api.Created(w, nom, reqID)
}

func (h *Handler) handleListPending(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	nominations, err := h.Service.ListPendingForReview(r.Context(), caller)
	if err != nil {
		api.Problem(w, err, "nomination_list_failed", reqID)
		return
	}
	api.Success(w, nominations, reqID)
}

func (h *Handler) handleListOwn(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	nominations, err := h.Service.ListOwn(r.Context(), caller)
	if err != nil {
		api.Problem(w, err, "nomination_list_failed", reqID)
		return
	}
	api.Success(w, nominations, reqID)
}
