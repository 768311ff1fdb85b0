package db

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows of one user.
//
//	db.Model(&models.CertificateModel{}).Scopes(db.OwnedBy(userID)).Count(&n)
func OwnedBy(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// Paginate applies LIMIT/OFFSET for 1-based pages. A non-positive pageSize
// disables pagination.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
