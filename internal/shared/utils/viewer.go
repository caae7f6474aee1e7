package utils

import (
	"github.com/gin-gonic/gin"

	"tradehub/internal/domain/shared/party"
	"tradehub/internal/shared/constants"
)

// SetViewer stores the authenticated party on the request context.
func SetViewer(c *gin.Context, v party.Viewer) {
	c.Set(constants.ContextKeyPartyType, v.Type)
	c.Set(constants.ContextKeyPartyID, v.ID)
}

// GetViewer returns the party set by the auth middleware.
func GetViewer(c *gin.Context) (party.Viewer, bool) {
	t, ok := c.Get(constants.ContextKeyPartyType)
	if !ok {
		return party.Viewer{}, false
	}
	partyType, ok := t.(party.Type)
	if !ok || !partyType.IsValid() {
		return party.Viewer{}, false
	}

	id, _ := c.Get(constants.ContextKeyPartyID)
	partyID, _ := id.(uint)
	return party.Viewer{Type: partyType, ID: partyID}, true
}
