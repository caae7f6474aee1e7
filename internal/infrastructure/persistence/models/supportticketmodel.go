package models

import "tradehub/internal/shared/constants"

// SupportTicketModel has exactly one of UserID and CompanyID set.
type SupportTicketModel struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     *uint  `gorm:"index"`
	CompanyID  *uint  `gorm:"index"`
	Subject    string `gorm:"size:200;not null"`
	Status     string `gorm:"size:20;not null;index"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
	LastReadAt *int64
	ClosedAt   *int64
}

func (SupportTicketModel) TableName() string {
	return constants.TableSupportTickets
}

type SupportMessageModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index:idx_support_messages_order,priority:1"`
	SenderType string `gorm:"size:20;not null"`
	SenderID   *uint
	Body       string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index:idx_support_messages_order,priority:2"`
}

func (SupportMessageModel) TableName() string {
	return constants.TableSupportMessages
}
