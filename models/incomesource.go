package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeSource represents a recurring income stream (salary, freelance, ...).
// Amounts are fixed-point numeric(18,2); never binary floating point.
type IncomeSource struct {
	ID           uint            `gorm:"primaryKey"`
	UserID       uint            `gorm:"index;not null"`
	SourceName   string          `gorm:"size:255;not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	PayFrequency string          `gorm:"size:64"`
	NextPayDate  time.Time
	CreatedAt    time.Time

	// Allocations drawn against this income have no meaning without it.
	Allocations []Allocation `gorm:"foreignKey:IncomeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
