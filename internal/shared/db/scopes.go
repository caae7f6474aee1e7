package db

import (
	"gorm.io/gorm"
)

// Chronological orders rows by (created_at, id) ascending. id breaks ties
// between rows inserted within the same millisecond, giving a total order.
//
// Example usage:
//
//	db.Where("conversation_id = ?", id).Scopes(db.Chronological("")).Find(&rows)
func Chronological(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(qualify(alias, "created_at") + " ASC").Order(qualify(alias, "id") + " ASC")
	}
}

// RecentlyUpdated orders rows by (updated_at, id) descending.
func RecentlyUpdated(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(qualify(alias, "updated_at") + " DESC").Order(qualify(alias, "id") + " DESC")
	}
}

// Paginate applies LIMIT/OFFSET for 1-based pages. pageSize <= 0 disables it.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}

func qualify(alias, column string) string {
	if alias == "" {
		return column
	}
	return alias + "." + column
}
