package directoryhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sipeka/internal/domain/directory"
	"sipeka/internal/transport/http/api"
	"sipeka/internal/transport/http/middleware"
	"sipeka/internal/transport/http/shared"
)

type Handler struct {
	Service  *directory.Service
	Resolver shared.CallerResolver
}

func NewHandler(service *directory.Service, resolver shared.CallerResolver) *Handler {
	return &Handler{Service: service, Resolver: resolver}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/units", func(r chi.Router) {
		r.Get("/", h.handleListUnits)
		r.Post("/", h.handleCreateUnit)
		r.Route("/{unitID}", func(r chi.Router) {
			r.Put("/", h.handleRenameUnit)
			r.Delete("/", h.handleDeleteUnit)
		})
	})
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Get("/mine", h.handleListMyEmployees)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Put("/", h.handleUpdateEmployee)
			r.Delete("/", h.handleDeleteEmployee)
		})
	})
}

type unitRequest struct {
	Name string `json:"name"`
}

func (h *Handler) handleListUnits(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	page := shared.ParsePagination(r, 50, 200)
	units, total, err := h.Service.ListUnitsPage(r.Context(), caller, page.Limit, page.Offset)
	if err != nil {
		api.Problem(w, err, "unit_list_failed", reqID)
		return
	}
	api.Success(w, map[string]any{"items": units, "total": total}, reqID)
}

func (h *Handler) handleCreateUnit(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	var req unitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", reqID)
		return
	}

	unit, err := h.Service.CreateUnit(r.Context(), caller, req.Name)
	if err != nil {
		api.Problem(w, err, "unit_create_failed", reqID)
		return
	}
	api.Created(w, unit, reqID)
}

func (h *Handler) handleRenameUnit(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	var req unitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", reqID)
		return
	}

	if err := h.Service.RenameUnit(r.Context(), caller, chi.URLParam(r, "unitID"), req.Name); err != nil {
		api.Problem(w, err, "unit_rename_failed", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

func (h *Handler) handleDeleteUnit(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	if err := h.Service.DeleteUnit(r.Context(), caller, chi.URLParam(r, "unitID")); err != nil {
		api.Problem(w, err, "unit_delete_failed", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

type employeeRequest struct {
	Name   string `json:"name"`
	NIP    string `json:"nip"`
	UnitID string `json:"unitId"`
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	page := shared.ParsePagination(r, 50, 200)
	unitID := r.URL.Query().Get("unitId")
	employees, total, err := h.Service.ListEmployees(r.Context(), caller, unitID, page.Limit, page.Offset)
	if err != nil {
		api.Problem(w, err, "employee_list_failed", reqID)
		return
	}
	api.Success(w, map[string]any{"items": employees, "total": total}, reqID)
}

func (h *Handler) handleListMyEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	employees, err := h.Service.ListMyEmployees(r.Context(), caller)
	if err != nil {
		api.Problem(w, err, "employee_list_failed", reqID)
		return
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", reqID)
		return
	}

	employee, err := h.Service.CreateEmployee(r.Context(), caller, req.Name, req.NIP, req.UnitID)
	if err != nil {
		api.Problem(w, err, "employee_create_failed", reqID)
		return
	}
	api.Created(w, employee, reqID)
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", reqID)
		return
	}

	if err := h.Service.UpdateEmployee(r.Context(), caller, chi.URLParam(r, "employeeID"), req.Name, req.NIP, req.UnitID); err != nil {
		api.Problem(w, err, "employee_update_failed", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	result, err := h.Service.DeleteEmployee(r.Context(), caller, chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Problem(w, err, "employee_delete_failed", reqID)
		return
	}
	api.Success(w, result, reqID)
}
