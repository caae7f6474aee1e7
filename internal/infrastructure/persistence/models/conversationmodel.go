package models

import "tradehub/internal/shared/constants"

// ConversationModel is one row per (user, company) pair. The unique index is
// what keeps concurrent first messages from creating two threads.
type ConversationModel struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_conversation_pair,priority:1;index"`
	CompanyID uint  `gorm:"not null;uniqueIndex:idx_conversation_pair,priority:2;index"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (ConversationModel) TableName() string {
	return constants.TableConversations
}

type MessageModel struct {
	ID             uint   `gorm:"primaryKey"`
	ConversationID uint   `gorm:"not null;index:idx_messages_order,priority:1"`
	SenderType     string `gorm:"size:20;not null"`
	SenderID       uint   `gorm:"not null"`
	Body           string `gorm:"type:text;not null"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index:idx_messages_order,priority:2"`
	ReadAt         *int64
}

func (MessageModel) TableName() string {
	return constants.TableMessages
}
