package reportshandler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sipeka/internal/domain/reports"
	"sipeka/internal/transport/http/api"
	"sipeka/internal/transport/http/middleware"
	"sipeka/internal/transport/http/shared"
)

type Handler struct {
	Service  *reports.Service
	Resolver shared.CallerResolver
}

func NewHandler(service *reports.Service, resolver shared.CallerResolver) *Handler {
	return &Handler{Service: service, Resolver: resolver}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/summary", h.handleSummary)
		r.Get("/export/pdf", h.handleExportPDF)
		r.Get("/export/xlsx", h.handleExportXLSX)
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	summary, err := h.Service.Summary(r.Context(), caller)
	if err != nil {
		api.Problem(w, err, "report_summary_failed", reqID)
		return
	}
	api.Success(w, summary, reqID)
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	payload, err := h.Service.ExportPDF(r.Context(), caller)
	if err != nil {
		api.Problem(w, err, "report_export_failed", reqID)
		return
	}
	writeAttachment(w, payload, "application/pdf", "pdf")
}

func (h *Handler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.Caller(w, r, h.Resolver)
	if !ok {
		return
	}

	payload, err := h.Service.ExportXLSX(r.Context(), caller)
	if err != nil {
		api.Problem(w, err, "report_export_failed", reqID)
		return
	}
	writeAttachment(w, payload, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx")
}

func writeAttachment(w http.ResponseWriter, payload []byte, contentType, ext string) {
	filename := fmt.Sprintf("riwayat-penilaian-%s.%s", time.Now().Format("2006-01-02"), ext)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
