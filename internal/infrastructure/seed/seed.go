// Package seed loads development identity fixtures into the local users and
// companies tables.
package seed

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tradehub/internal/infrastructure/persistence/models"
)

type Profile struct {
	ID        uint    `yaml:"id"`
	FirstName string  `yaml:"first_name"`
	LastName  string  `yaml:"last_name"`
	Username  string  `yaml:"username"`
	Avatar    *string `yaml:"avatar"`
}

type Fixtures struct {
	Users     []Profile `yaml:"users"`
	Companies []Profile `yaml:"companies"`
}

// Parse decodes a fixtures document and rejects entries without an id.
func Parse(r io.Reader) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	for i, p := range f.Users {
		if p.ID == 0 {
			return nil, fmt.Errorf("users[%d]: id is required", i)
		}
	}
	for i, p := range f.Companies {
		if p.ID == 0 {
			return nil, fmt.Errorf("companies[%d]: id is required", i)
		}
	}
	return &f, nil
}

// Apply upserts every profile by id inside one transaction.
func Apply(ctx context.Context, db *gorm.DB, f *Fixtures) error {
	users := make([]models.UserModel, 0, len(f.Users))
	for _, p := range f.Users {
		users = append(users, models.UserModel{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName, Username: p.Username, Avatar: p.Avatar})
	}
	companies := make([]models.CompanyModel, 0, len(f.Companies))
	for _, p := range f.Companies {
		companies = append(companies, models.CompanyModel{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName, Username: p.Username, Avatar: p.Avatar})
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		})
		if len(users) > 0 {
			if err := upsert.Create(&users).Error; err != nil {
				return fmt.Errorf("failed to seed users: %w", err)
			}
		}
		if len(companies) > 0 {
			if err := upsert.Create(&companies).Error; err != nil {
				return fmt.Errorf("failed to seed companies: %w", err)
			}
		}
		return nil
	})
}
