package models

import "time"

// User is the aggregate root: every other entity belongs to exactly one user.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	FullName     string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time

	// Declared so AutoMigrate emits the FK constraints; reads never traverse
	// these slices, they go through explicit store queries instead.
	Categories    []Category     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	IncomeSources []IncomeSource `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Allocations   []Allocation   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Expenses      []Expense      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
