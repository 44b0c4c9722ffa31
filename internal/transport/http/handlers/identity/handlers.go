package identityhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sipeka/internal/domain/identity"
	"sipeka/internal/transport/http/api"
	"sipeka/internal/transport/http/middleware"
	"sipeka/internal/transport/http/shared"
)

type Handler struct {
	Service *identity.Service
}

func NewHandler(service *identity.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/me", h.handleMe)
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.handleListUsers)
		r.Put("/{userID}/role", h.handleAssignRole)
	})
	r.Post("/invitations", h.handleInvite)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Service)
	if !ok {
		return
	}
	api.Success(w, caller, reqID)
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Service)
	if !ok {
		return
	}

	if role := r.URL.Query().Get("role"); role != "" {
		users, err := h.Service.ListUsersByRole(r.Context(), caller, role)
		if err != nil {
			api.Problem(w, err, "user_list_failed", reqID)
			return
		}
		api.Success(w, map[string]any{"items": users, "total": len(users)}, reqID)
		return
	}

	page := shared.ParsePagination(r, 50, 200)
	users, err := h.Service.ListUsers(r.Context(), caller, page.Limit, page.Offset)
	if err != nil {
		api.Problem(w, err, "user_list_failed", reqID)
		return
	}
	total, err := h.Service.CountUsers(r.Context(), caller)
	if err != nil {
		api.Problem(w, err, "user_list_failed", reqID)
		return
	}
	api.Success(w, map[string]any{"items": users, "total": total}, reqID)
}

type assignRoleRequest struct {
	Role   string `json:"role"`
	UnitID string `json:"unitId"`
}

func (h *Handler) handleAssignRole(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Service)
	if !ok {
		return
	}

	var req assignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", reqID)
		return
	}

	if err := h.Service.AssignRole(r.Context(), caller, chi.URLParam(r, "userID"), req.Role, req.UnitID); err != nil {
		api.Problem(w, err, "role_assign_failed", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

type inviteRequest struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	UnitID string `json:"unitId"`
}

func (h *Handler) handleInvite(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Service)
	if !ok {
		return
	}

	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", reqID)
		return
	}

	receipt, err := h.Service.Invite(r.Context(), caller, req.Email, req.Role, req.UnitID)
	if err != nil {
		api.Problem(w, err, "invite_failed", reqID)
		return
	}
	api.Created(w, receipt, reqID)
}
