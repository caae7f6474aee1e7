package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tradehub/internal/domain/conversation"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/infrastructure/persistence/mappers"
	"tradehub/internal/infrastructure/persistence/models"
	"tradehub/internal/shared/biztime"
	apperrors "tradehub/internal/shared/errors"
	db "tradehub/internal/shared/db"
)

const (
	lastMessageBodySQL = "(SELECT m.body FROM messages m WHERE m.conversation_id = c.id ORDER BY m.created_at DESC, m.id DESC LIMIT 1)"
	lastMessageAtSQL   = "(SELECT m.created_at FROM messages m WHERE m.conversation_id = c.id ORDER BY m.created_at DESC, m.id DESC LIMIT 1)"
	unreadMessagesSQL  = "(SELECT COUNT(*) FROM messages m WHERE m.conversation_id = c.id AND m.sender_type = ? AND m.read_at IS NULL)"
)

// conversationSummaryRow is the scan target for the annotated listing query.
type conversationSummaryRow struct {
	ID          uint
	UserID      uint
	CompanyID   uint
	CreatedAt   int64
	UpdatedAt   int64
	LastBody    *string
	LastAt      *int64
	UnreadCount int64
}

type ConversationRepository struct {
	db     *gorm.DB
	mapper mappers.ConversationMapper
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{
		db:     db,
		mapper: mappers.NewConversationMapper(),
	}
}

// FindOrCreate selects the pair's conversation and inserts it when missing.
// A unique-index violation means a concurrent caller won the insert, so the
// row is re-selected instead of reporting an error. It always runs on its
// own connection: a failed insert would poison an enclosing transaction.
func (r *ConversationRepository) FindOrCreate(ctx context.Context, userID, companyID uint) (*conversation.Conversation, error) {
	conn := r.db.WithContext(ctx)

	existing, err := r.findByPair(conn, userID, companyID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, conversation.ErrConversationNotFound) {
		return nil, err
	}

	c, err := conversation.NewConversation(userID, companyID)
	if err != nil {
		return nil, err
	}

	model := r.mapper.ToModel(c)
	if err := conn.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return r.findByPair(conn, userID, companyID)
		}
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ConversationRepository) findByPair(conn *gorm.DB, userID, companyID uint) (*conversation.Conversation, error) {
	var model models.ConversationModel
	if err := conn.
		Where("user_id = ? AND company_id = ?", userID, companyID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, conversation.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ConversationRepository) GetByID(ctx context.Context, id uint) (*conversation.Conversation, error) {
	var model models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, conversation.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// ListForUser returns the user's conversations, counting unread messages
// sent by the company side.
func (r *ConversationRepository) ListForUser(ctx context.Context, userID uint) ([]*conversation.Summary, error) {
	return r.listFor(ctx, party.TypeUser, userID)
}

// ListForCompany returns the company's conversations, counting unread
// messages sent by the user side.
func (r *ConversationRepository) ListForCompany(ctx context.Context, companyID uint) ([]*conversation.Summary, error) {
	return r.listFor(ctx, party.TypeCompany, companyID)
}

func (r *ConversationRepository) listFor(ctx context.Context, side party.Type, id uint) ([]*conversation.Summary, error) {
	column := "c.user_id"
	if side == party.TypeCompany {
		column = "c.company_id"
	}

	var rows []conversationSummaryRow
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Table(models.ConversationModel{}.TableName()+" AS c").
		Select(
			"c.id, c.user_id, c.company_id, c.created_at, c.updated_at, "+
				lastMessageBodySQL+" AS last_body, "+
				lastMessageAtSQL+" AS last_at, "+
				unreadMessagesSQL+" AS unread_count",
			side.Counterpart().String(),
		).
		Where(column+" = ?", id).
		Scopes(db.RecentlyUpdated("c")).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations for %s %d: %w", side, id, err)
	}

	summaries := make([]*conversation.Summary, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		c, err := r.mapper.ToDomain(&models.ConversationModel{
			ID:        row.ID,
			UserID:    row.UserID,
			CompanyID: row.CompanyID,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &conversation.Summary{
			Conversation: c,
			LastBody:     row.LastBody,
			LastAt:       biztime.FromMillisPtr(row.LastAt),
			UnreadCount:  row.UnreadCount,
		})
	}

	return summaries, nil
}
