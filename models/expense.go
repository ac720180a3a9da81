package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spend against a category. ExpenseDate is always held
// in UTC; zone-less client input is interpreted as UTC, never shifted.
type Expense struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"index;not null"`
	CategoryID  uint            `gorm:"index;not null"`
	ExpenseName string          `gorm:"size:255;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	ExpenseDate time.Time       `gorm:"not null"`
	Notes       *string         `gorm:"size:512"`
	CreatedAt   time.Time
}
