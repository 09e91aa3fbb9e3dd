package scope

import "gorm.io/gorm"

// OrderByIdAsc sorts by surrogate id, which is insertion order for autoincrement tables.
func OrderByIdAsc(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
