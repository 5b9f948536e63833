package database

import (
	"gorm.io/gorm"

	"rf-wms/models"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.ActivityLog{},
		&models.DataRecord{},
		&models.FileLog{},
	)
}
