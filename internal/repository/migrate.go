package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// owns. The row models are private, so migration lives here rather than in
// the database package.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&adminModel{},
		&uploadModel{},
		&boardModel{},
		&boardImageModel{},
		&bannerModel{},
	)
}
