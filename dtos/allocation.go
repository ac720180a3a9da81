package dtos

import (
	"time"

	"github.com/shopspring/decimal"

	"cashcompass/models"
)

type AllocationCreateInput struct {
	AllocationValue decimal.Decimal `json:"allocationValue"`
	UserID          uint            `json:"userId" binding:"required"`
	IncomeID        uint            `json:"incomeId" binding:"required"`
	CategoryID      uint            `json:"categoryId" binding:"required"`
	AllocationType  string          `json:"allocationType" binding:"required"`
}

// AllocationUpdateInput may re-point the income source and category the
// allocation is drawn against; the owning userId is fixed at creation.
type AllocationUpdateInput struct {
	AllocationValue decimal.Decimal `json:"allocationValue"`
	IncomeID        uint            `json:"incomeId" binding:"required"`
	CategoryID      uint            `json:"categoryId" binding:"required"`
	AllocationType  string          `json:"allocationType" binding:"required"`
}

type AllocationOutput struct {
	AllocationID    uint            `json:"allocationId"`
	AllocationValue decimal.Decimal `json:"allocationValue"`
	UserID          uint            `json:"userId"`
	IncomeID        uint            `json:"incomeId"`
	CategoryID      uint            `json:"categoryId"`
	AllocationType  string          `json:"allocationType"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func NewAllocationOutput(a *models.Allocation) AllocationOutput {
	return AllocationOutput{
		AllocationID:    a.ID,
		AllocationValue: a.AllocationValue,
		UserID:          a.UserID,
		IncomeID:        a.IncomeID,
		CategoryID:      a.CategoryID,
		AllocationType:  a.AllocationType,
		CreatedAt:       a.CreatedAt,
	}
}

func NewAllocationOutputs(allocations []models.Allocation) []AllocationOutput {
	out := make([]AllocationOutput, 0, len(allocations))
	for i := range allocations {
		out = append(out, NewAllocationOutput(&allocations[i]))
	}
	return out
}
