package evaluationhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sipeka/internal/domain/evaluation"
	"sipeka/internal/transport/http/api"
	"sipeka/internal/transport/http/middleware"
	"sipeka/internal/transport/http/shared"
)

type Handler struct {
	Service  *evaluation.Service
	Resolver shared.CallerResolver
}

func NewHandler(service *evaluation.Service, resolver shared.CallerResolver) *Handler {
	return &Handler{Service: service, Resolver: resolver}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/evaluations", func(r chi.Router) {
		r.Post("/", h.handleSubmit)
		r.Get("/", h.handleListAll)
		r.Get("/mine", h.handleListMine)
	})
}

type submitRequest struct {
	NominationID string                  `json:"nominationId"`
	Scores       []evaluation.ScoreInput `json:"scores"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", reqID)
		return
	}

	eval, err := h.Service.Submit(r.Context(), caller, req.NominationID, req.Scores)
	if err != nil {
		api.Problem(w, err, "evaluation_submit_failed", reqID)
		return
	}
	api.Created(w, eval, reqID)
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	results, err := h.Service.ListAllResults(r.Context(), caller)
	if err != nil {
		api.Problem(w, err, "evaluation_list_failed", reqID)
		return
	}
	api.Success(w, results, reqID)
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	results, err := h.Service.ListMine(r.Context(), caller)
	if err != nil {
		api.Problem(w, err, "evaluation_list_failed", reqID)
		return
	}
	api.Success(w, results, reqID)
}
