package store

import (
	"fmt"

	"gorm.io/gorm"

	"cashcompass/models"
)

// AutoMigrate creates the five tables with their FK actions and the unique
// email index. Parents are listed before children so the constraints can be
// applied in one pass.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.IncomeSource{},
		&models.Allocation{},
		&models.Expense{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
