package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tradehub/internal/domain/conversation"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/infrastructure/persistence/mappers"
	"tradehub/internal/infrastructure/persistence/models"
	"tradehub/internal/shared/biztime"
	db "tradehub/internal/shared/db"
)

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.ConversationMapper
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewConversationMapper(),
	}
}

// Append inserts msg unread and moves the conversation's updated_at to the
// message time in the same transaction. It joins the caller's transaction
// when ctx carries one.
func (r *MessageRepository) Append(ctx context.Context, msg *conversation.Message) error {
	model := r.mapper.MessageToModel(msg)
	model.ReadAt = nil

	var err error
	if db.InTransaction(ctx) {
		err = r.append(db.GetTxFromContext(ctx, r.db), model)
	} else {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return r.append(tx, model)
		})
	}
	if err != nil {
		return err
	}

	return msg.SetID(model.ID)
}

func (r *MessageRepository) append(tx *gorm.DB, model *models.MessageModel) error {
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	if err := tx.
		Model(&models.ConversationModel{}).
		Where("id = ?", model.ConversationID).
		Update("updated_at", model.CreatedAt).Error; err != nil {
		return fmt.Errorf("failed to touch conversation: %w", err)
	}
	return nil
}

func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID uint) ([]*conversation.Message, error) {
	var messageModels []models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("conversation_id = ?", conversationID).
		Scopes(db.Chronological("")).
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*conversation.Message, 0, len(messageModels))
	for i := range messageModels {
		msg, err := r.mapper.MessageToDomain(&messageModels[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// MarkRead is a single UPDATE; repeating it finds nothing left to mark.
func (r *MessageRepository) MarkRead(ctx context.Context, conversationID uint, viewer party.Type) (int64, error) {
	sender := viewer.Counterpart()
	if sender == "" {
		return 0, fmt.Errorf("party %s cannot read conversations", viewer)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.MessageModel{}).
		Where("conversation_id = ? AND sender_type = ? AND read_at IS NULL", conversationID, sender.String()).
		Update("read_at", biztime.ToMillis(biztime.NowUTC()))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", result.Error)
	}

	return result.RowsAffected, nil
}
