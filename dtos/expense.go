package dtos

import (
	"time"

	"github.com/shopspring/decimal"

	"cashcompass/models"
)

type ExpenseCreateInput struct {
	ExpenseName string          `json:"expenseName" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
	UserID      uint            `json:"userId" binding:"required"`
	ExpenseDate string          `json:"expenseDate" binding:"required"`
	Notes       *string         `json:"notes"`
}

type ExpenseUpdateInput struct {
	ExpenseName string          `json:"expenseName" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
	ExpenseDate string          `json:"expenseDate" binding:"required"`
	Notes       *string         `json:"notes"`
}

type ExpenseOutput struct {
	ExpenseID   uint            `json:"expenseId"`
	ExpenseName string          `json:"expenseName"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  uint            `json:"categoryId"`
	UserID      uint            `json:"userId"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Notes       *string         `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func NewExpenseOutput(e *models.Expense) ExpenseOutput {
	return ExpenseOutput{
		ExpenseID:   e.ID,
		ExpenseName: e.ExpenseName,
		Amount:      e.Amount,
		CategoryID:  e.CategoryID,
		UserID:      e.UserID,
		ExpenseDate: e.ExpenseDate.UTC(),
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
}

func NewExpenseOutputs(expenses []models.Expense) []ExpenseOutput {
	out := make([]ExpenseOutput, 0, len(expenses))
	for i := range expenses {
		out = append(out, NewExpenseOutput(&expenses[i]))
	}
	return out
}
