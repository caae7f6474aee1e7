// Package identity describes the display identity of a marketplace party.
// The identities themselves are owned by another subsystem; this package only
// defines the shape and the lookup port the messaging core consumes.
package identity

import (
	"context"
	"strings"

	"tradehub/internal/domain/shared/party"
)

type Identity struct {
	PartyType party.Type
	PartyID   uint
	FirstName string
	LastName  string
	Username  string
	AvatarRef string
}

// DisplayName prefers the full name and falls back to the username.
func (i *Identity) DisplayName() string {
	if i == nil {
		return ""
	}
	name := strings.TrimSpace(strings.TrimSpace(i.FirstName) + " " + strings.TrimSpace(i.LastName))
	if name != "" {
		return name
	}
	return i.Username
}

// Resolver looks up a party's identity. A missing party yields (nil, nil).
type Resolver interface {
	Resolve(ctx context.Context, partyType party.Type, id uint) (*Identity, error)
}
