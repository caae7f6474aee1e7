package conversation

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidParties       = errors.New("conversation requires both a user and a company")
	ErrSenderNotParticipant = errors.New("sender is not a party to this conversation")
)
