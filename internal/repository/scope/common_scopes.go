package scope

import "gorm.io/gorm"

func OrderByIDAsc(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// OrderByDateThenID gives experiment listings a deterministic order.
func OrderByDateThenID(db *gorm.DB) *gorm.DB {
	return db.Order("date ASC").Order("id ASC")
}
