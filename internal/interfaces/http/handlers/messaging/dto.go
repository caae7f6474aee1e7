package messaging

import (
	"tradehub/internal/application/messaging/usecases"
	"tradehub/internal/domain/shared/party"
)

// SendMessageRequest names the counterparty. A user fills company_id, a
// company fills user_id; the sender's own side comes from the token.
type SendMessageRequest struct {
	UserID    uint   `json:"user_id"`
	CompanyID uint   `json:"company_id"`
	Text      string `json:"text" binding:"notblank"`
}

func (r *SendMessageRequest) ToCommand(viewer party.Viewer) usecases.SendMessageCommand {
	cmd := usecases.SendMessageCommand{
		SenderType: viewer.Type,
		SenderID:   viewer.ID,
		Text:       r.Text,
	}
	switch viewer.Type {
	case party.TypeUser:
		cmd.UserID = viewer.ID
		cmd.CompanyID = r.CompanyID
	case party.TypeCompany:
		cmd.UserID = r.UserID
		cmd.CompanyID = viewer.ID
	}
	return cmd
}
