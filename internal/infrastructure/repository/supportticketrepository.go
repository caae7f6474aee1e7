package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
	vo "tradehub/internal/domain/support/valueobjects"
	"tradehub/internal/infrastructure/persistence/mappers"
	"tradehub/internal/infrastructure/persistence/models"
	"tradehub/internal/shared/biztime"
	db "tradehub/internal/shared/db"
)

const (
	lastSupportBodySQL = "(SELECT sm.body FROM support_messages sm WHERE sm.ticket_id = t.id ORDER BY sm.created_at DESC, sm.id DESC LIMIT 1)"
	lastSupportAtSQL   = "(SELECT sm.created_at FROM support_messages sm WHERE sm.ticket_id = t.id ORDER BY sm.created_at DESC, sm.id DESC LIMIT 1)"
	// Admin replies newer than the owner's read boundary; a never-read
	// ticket counts from the epoch. Both sides are millisecond timestamps, so
	// a reply stored in the same millisecond as last_read_at counts as read
	// even when it committed after the read. Only a reply racing the open
	// within that millisecond can be missed.
	unreadSupportSQL = "(SELECT COUNT(*) FROM support_messages sm WHERE sm.ticket_id = t.id AND sm.sender_type = ? AND sm.created_at > COALESCE(t.last_read_at, 0))"
)

type supportTicketSummaryRow struct {
	models.SupportTicketModel
	LastBody    *string
	LastAt      *int64
	UnreadCount int64
}

type SupportTicketRepository struct {
	db     *gorm.DB
	mapper mappers.SupportTicketMapper
}

func NewSupportTicketRepository(db *gorm.DB) *SupportTicketRepository {
	return &SupportTicketRepository{
		db:     db,
		mapper: mappers.NewSupportTicketMapper(),
	}
}

func (r *SupportTicketRepository) Create(ctx context.Context, t *support.Ticket, first *support.Message) error {
	ticketModel := r.mapper.ToModel(t)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ticketModel).Error; err != nil {
			return fmt.Errorf("failed to create support ticket: %w", err)
		}
		if first == nil {
			return nil
		}

		if err := first.SetTicketID(ticketModel.ID); err != nil {
			return err
		}
		messageModel := r.mapper.MessageToModel(first)
		if err := tx.Create(messageModel).Error; err != nil {
			return fmt.Errorf("failed to create support message: %w", err)
		}
		return first.SetID(messageModel.ID)
	})
	if err != nil {
		return err
	}

	return t.SetID(ticketModel.ID)
}

func (r *SupportTicketRepository) GetByID(ctx context.Context, id uint) (*support.Ticket, error) {
	var model models.SupportTicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, support.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get support ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SupportTicketRepository) ListForOwner(ctx context.Context, ownerType party.Type, ownerID uint) ([]*support.TicketSummary, error) {
	var column string
	switch ownerType {
	case party.TypeUser:
		column = "t.user_id"
	case party.TypeCompany:
		column = "t.company_id"
	default:
		return nil, support.ErrInvalidOwner
	}

	var rows []supportTicketSummaryRow
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Table(models.SupportTicketModel{}.TableName()+" AS t").
		Select(
			"t.*, "+
				lastSupportBodySQL+" AS last_body, "+
				lastSupportAtSQL+" AS last_at, "+
				unreadSupportSQL+" AS unread_count",
			party.TypeAdmin.String(),
		).
		Where(column+" = ?", ownerID).
		Scopes(db.RecentlyUpdated("t")).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list support tickets for %s %d: %w", ownerType, ownerID, err)
	}

	summaries := make([]*support.TicketSummary, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		t, err := r.mapper.ToDomain(&row.SupportTicketModel)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &support.TicketSummary{
			Ticket:      t,
			LastBody:    row.LastBody,
			LastAt:      biztime.FromMillisPtr(row.LastAt),
			UnreadCount: row.UnreadCount,
		})
	}

	return summaries, nil
}

// List backs the admin queue, most recently active first.
func (r *SupportTicketRepository) List(ctx context.Context, filter support.TicketFilter) ([]*support.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.SupportTicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.OwnerType != nil {
		switch *filter.OwnerType {
		case party.TypeUser:
			query = query.Where("user_id IS NOT NULL")
		case party.TypeCompany:
			query = query.Where("company_id IS NOT NULL")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count support tickets: %w", err)
	}

	var ticketModels []models.SupportTicketModel
	if err := query.
		Scopes(db.RecentlyUpdated(""), db.Paginate(filter.Page, filter.PageSize)).
		Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list support tickets: %w", err)
	}

	tickets := make([]*support.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

// AppendMessage writes the ticket's new status and the message in one
// transaction. The status write is conditional on the stored ticket not
// being closed, so a concurrent close wins over a late reply.
func (r *SupportTicketRepository) AppendMessage(ctx context.Context, t *support.Ticket, msg *support.Message) error {
	messageModel := r.mapper.MessageToModel(msg)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&models.SupportTicketModel{}).
			Where("id = ? AND status <> ?", t.ID(), vo.StatusClosed.String()).
			Updates(map[string]interface{}{
				"status":     t.Status().String(),
				"updated_at": messageModel.CreatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update support ticket status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			if err := r.checkWritable(tx, t.ID()); err != nil {
				return err
			}
		}

		if err := tx.Create(messageModel).Error; err != nil {
			return fmt.Errorf("failed to insert support message: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return msg.SetID(messageModel.ID)
}

// checkWritable explains a conditional update that matched nothing. Some
// drivers report zero rows when the written values equal the stored ones,
// so an open ticket is not an error here.
func (r *SupportTicketRepository) checkWritable(tx *gorm.DB, ticketID uint) error {
	var model models.SupportTicketModel
	if err := tx.Select("id", "status").First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return support.ErrTicketNotFound
		}
		return fmt.Errorf("failed to load support ticket: %w", err)
	}
	if model.Status == vo.StatusClosed.String() {
		return support.ErrTicketClosed
	}
	return nil
}

func (r *SupportTicketRepository) ListMessages(ctx context.Context, ticketID uint) ([]*support.Message, error) {
	var messageModels []models.SupportMessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Scopes(db.Chronological("")).
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list support messages: %w", err)
	}

	messages := make([]*support.Message, 0, len(messageModels))
	for i := range messageModels {
		msg, err := r.mapper.MessageToDomain(&messageModels[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// MarkRead moves last_read_at only. UpdateColumn keeps updated_at intact so
// reading a ticket does not reorder the inbox.
func (r *SupportTicketRepository) MarkRead(ctx context.Context, ticketID uint, at time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.SupportTicketModel{}).
		Where("id = ?", ticketID).
		UpdateColumn("last_read_at", biztime.ToMillis(at)).Error; err != nil {
		return fmt.Errorf("failed to mark support ticket read: %w", err)
	}

	return nil
}

// Close persists the moderation close. It is a no-op for tickets that are
// already closed.
func (r *SupportTicketRepository) Close(ctx context.Context, t *support.Ticket) error {
	if !t.Status().IsClosed() {
		return fmt.Errorf("ticket %d has not been closed", t.ID())
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Model(&models.SupportTicketModel{}).
		Where("id = ? AND status <> ?", t.ID(), vo.StatusClosed.String()).
		Updates(map[string]interface{}{
			"status":     vo.StatusClosed.String(),
			"closed_at":  biztime.ToMillisPtr(t.ClosedAt()),
			"updated_at": biztime.ToMillis(t.UpdatedAt()),
		}).Error; err != nil {
		return fmt.Errorf("failed to close support ticket: %w", err)
	}

	return nil
}
