// Package identity resolves party display identities from the account tables
// owned by the accounts subsystem.
package identity

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "tradehub/internal/domain/identity"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/infrastructure/persistence/models"
	db "tradehub/internal/shared/db"
)

// profileRow is the column subset shared by users and companies.
type profileRow struct {
	ID        uint
	FirstName string
	LastName  string
	Username  string
	Avatar    *string
}

type GormResolver struct {
	db *gorm.DB
}

func NewGormResolver(db *gorm.DB) *GormResolver {
	return &GormResolver{db: db}
}

// Resolve returns nil, nil for unknown ids and for admins, which have no
// public profile.
func (r *GormResolver) Resolve(ctx context.Context, partyType party.Type, id uint) (*domain.Identity, error) {
	var table string
	switch partyType {
	case party.TypeUser:
		table = models.UserModel{}.TableName()
	case party.TypeCompany:
		table = models.CompanyModel{}.TableName()
	default:
		return nil, nil
	}
	if id == 0 {
		return nil, nil
	}

	var row profileRow
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Table(table).
		Select("id", "first_name", "last_name", "username", "avatar").
		Where("id = ?", id).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve %s %d: %w", partyType, id, err)
	}

	identity := &domain.Identity{
		PartyType: partyType,
		PartyID:   row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Username:  row.Username,
	}
	if row.Avatar != nil {
		identity.AvatarRef = *row.Avatar
	}
	return identity, nil
}
