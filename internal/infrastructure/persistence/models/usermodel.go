package models

import "tradehub/internal/shared/constants"

// UserModel and CompanyModel map the profile columns of tables owned by the
// accounts subsystem. They are read-only here; only the seed command and
// tests write them.
type UserModel struct {
	ID        uint    `gorm:"primarykey"`
	FirstName string  `gorm:"size:100"`
	LastName  string  `gorm:"size:100"`
	Username  string  `gorm:"size:100;uniqueIndex"`
	Avatar    *string `gorm:"size:500"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

type CompanyModel struct {
	ID        uint    `gorm:"primarykey"`
	FirstName string  `gorm:"size:100"`
	LastName  string  `gorm:"size:100"`
	Username  string  `gorm:"size:100;uniqueIndex"`
	Avatar    *string `gorm:"size:500"`
}

func (CompanyModel) TableName() string {
	return constants.TableCompanies
}
