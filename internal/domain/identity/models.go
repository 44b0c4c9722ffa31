package identity

import (
	"context"
	"time"
)

// User is the resolved caller handed to every workflow operation.
// UnitID is empty for admins and for accounts not yet assigned a unit.
type User struct {
	ID              string    `json:"id"`
	TokenIdentifier string    `json:"-"`
	Name            string    `json:"name"`
	Image           string    `json:"image"`
	Role            string    `json:"role"`
	UnitID          string    `json:"unitId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ProviderEvent is one identity-provider lifecycle event, already
// signature-verified by the webhook transport.
type ProviderEvent struct {
	Type string           `json:"type"`
	Data ProviderUserData `json:"data"`
}

type ProviderUserData struct {
	ID             string           `json:"id"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	ImageURL       string           `json:"image_url"`
	PublicMetadata ProviderMetadata `json:"public_metadata"`
}

type ProviderMetadata struct {
	Role   string `json:"role"`
	UnitID string `json:"unitId"`
}

type InvitationReceipt struct {
	ID     string `json:"id"`
	Email  string `json:"emailAddress"`
	Status string `json:"status"`
}

// Inviter issues an invitation through the identity provider.
type Inviter interface {
	Invite(ctx context.Context, email, role, unitID string) (InvitationReceipt, error)
}
