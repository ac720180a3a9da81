package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allocation assigns part of an income source to a category, either as a
// fixed amount or a variable share. AllocationType is a free-form label.
type Allocation struct {
	ID              uint            `gorm:"primaryKey"`
	UserID          uint            `gorm:"index;not null"`
	IncomeID        uint            `gorm:"index;not null"`
	CategoryID      uint            `gorm:"index;not null"`
	AllocationType  string          `gorm:"size:64;not null"`
	AllocationValue decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	CreatedAt       time.Time
}
