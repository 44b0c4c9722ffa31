// Package clerk talks to the identity provider's management API. Only
// the invitation endpoint is used; everything else about identity flows
// into the service through the provider's webhook.
package clerk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sipeka/internal/apperr"
	"sipeka/internal/domain/identity"
	"sipeka/internal/platform/config"
)

type noopInviter struct{}

func (noopInviter) Invite(ctx context.Context, email, role, unitID string) (identity.InvitationReceipt, error) {
	return identity.InvitationReceipt{}, apperr.Validation("undangan belum dikonfigurasi di server ini")
}

type client struct {
	baseURL     string
	secretKey   string
	redirectURL string
	http        *http.Client
}

func New(cfg config.Config) identity.Inviter {
	if strings.TrimSpace(cfg.ClerkSecretKey) == "" {
		return noopInviter{}
	}
	return &client{
		baseURL:     strings.TrimRight(cfg.ClerkAPIURL, "/"),
		secretKey:   cfg.ClerkSecretKey,
		redirectURL: cfg.InviteRedirectURL,
		http:        &http.Client{Timeout: 15 * time.Second},
	}
}

type invitationRequest struct {
	EmailAddress   string            `json:"email_address"`
	RedirectURL    string            `json:"redirect_url,omitempty"`
	PublicMetadata map[string]string `json:"public_metadata"`
}

type invitationResponse struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
	Status       string `json:"status"`
}

type errorResponse struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *client) Invite(ctx context.Context, email, role, unitID string) (identity.InvitationReceipt, error) {
	metadata := map[string]string{"role": role}
	if unitID != "" {
		metadata["unitId"] = unitID
	}

	body, err := json.Marshal(invitationRequest{
		EmailAddress:   email,
		RedirectURL:    c.redirectURL,
		PublicMetadata: metadata,
	})
	if err != nil {
		return identity.InvitationReceipt{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/invitations", bytes.NewReader(body))
	if err != nil {
		return identity.InvitationReceipt{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return identity.InvitationReceipt{}, fmt.Errorf("invitation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return identity.InvitationReceipt{}, translateError(resp.StatusCode, payload)
	}

	var parsed invitationResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return identity.InvitationReceipt{}, fmt.Errorf("decode invitation response: %w", err)
	}
	return identity.InvitationReceipt{
		ID:     parsed.ID,
		Email:  parsed.EmailAddress,
		Status: parsed.Status,
	}, nil
}

// translateError maps known provider error codes onto the local
// taxonomy; anything unrecognized stays a generic error so it is never
// silently swallowed.
func translateError(status int, payload []byte) error {
	var parsed errorResponse
	if err := json.Unmarshal(payload, &parsed); err == nil && len(parsed.Errors) > 0 {
		first := parsed.Errors[0]
		switch first.Code {
		case "duplicate_record":
			return apperr.Conflict("email ini sudah diundang atau sudah memiliki akun")
		case "form_param_format_invalid", "invalid_email":
			return apperr.Validation("format email tidak valid")
		}
		return fmt.Errorf("provider rejected invitation (%s): %s", first.Code, first.Message)
	}
	return fmt.Errorf("provider rejected invitation: http %d", status)
}
