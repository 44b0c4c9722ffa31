package webhookhandler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	svix "github.com/svix/svix-webhooks/go"

	"sipeka/internal/domain/identity"
	"sipeka/internal/platform/metrics"
	"sipeka/internal/transport/http/api"
	"sipeka/internal/transport/http/middleware"
)

type Handler struct {
	Service *identity.Service
	Secret  string
	Issuer  string
}

func NewHandler(service *identity.Service, secret, issuer string) *Handler {
	return &Handler{Service: service, Secret: secret, Issuer: issuer}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/webhooks/identity", h.handleIdentityEvent)
}

func (h *Handler) handleIdentityEvent(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		metrics.WebhookEvents.WithLabelValues("read_failed").Inc()
		api.Fail(w, http.StatusBadRequest, "invalid_body", "could not read payload", reqID)
		return
	}

	wh, err := svix.NewWebhook(h.Secret)
	if err != nil {
		slog.Error("webhook verifier init failed", "err", err)
		metrics.WebhookEvents.WithLabelValues("config_error").Inc()
		api.Fail(w, http.StatusInternalServerError, "webhook_config_error", "internal error", reqID)
		return
	}
	if err := wh.Verify(payload, r.Header); err != nil {
		metrics.WebhookEvents.WithLabelValues("rejected").Inc()
		api.Fail(w, http.StatusBadRequest, "invalid_signature", "signature verification failed", reqID)
		return
	}

	var event identity.ProviderEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		metrics.WebhookEvents.WithLabelValues("malformed").Inc()
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "could not parse event", reqID)
		return
	}

	tokenIdentifier := h.Issuer + "|" + event.Data.ID
	if err := h.Service.SyncFromProvider(r.Context(), tokenIdentifier, event); err != nil {
		slog.Error("identity sync failed", "event", event.Type, "err", err)
		metrics.WebhookEvents.WithLabelValues("sync_failed").Inc()
		api.Problem(w, err, "identity_sync_failed", reqID)
		return
	}

	metrics.WebhookEvents.WithLabelValues("processed").Inc()
	api.Success(w, map[string]string{"status": "processed"}, reqID)
}
