package dtos

import (
	"time"

	"github.com/shopspring/decimal"

	"cashcompass/models"
)

type IncomeSourceCreateInput struct {
	SourceName   string          `json:"sourceName" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
	UserID       uint            `json:"userId" binding:"required"`
	PayFrequency string          `json:"payFrequency"`
	NextPayDate  string          `json:"nextPayDate" binding:"required"`
}

type IncomeSourceUpdateInput struct {
	SourceName   string          `json:"sourceName" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
	PayFrequency string          `json:"payFrequency"`
	NextPayDate  string          `json:"nextPayDate" binding:"required"`
}

type IncomeSourceOutput struct {
	IncomeID     uint            `json:"incomeId"`
	SourceName   string          `json:"sourceName"`
	Amount       decimal.Decimal `json:"amount"`
	UserID       uint            `json:"userId"`
	PayFrequency string          `json:"payFrequency"`
	NextPayDate  time.Time       `json:"nextPayDate"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func NewIncomeSourceOutput(src *models.IncomeSource) IncomeSourceOutput {
	return IncomeSourceOutput{
		IncomeID:     src.ID,
		SourceName:   src.SourceName,
		Amount:       src.Amount,
		UserID:       src.UserID,
		PayFrequency: src.PayFrequency,
		NextPayDate:  src.NextPayDate,
		CreatedAt:    src.CreatedAt,
	}
}

func NewIncomeSourceOutputs(sources []models.IncomeSource) []IncomeSourceOutput {
	out := make([]IncomeSourceOutput, 0, len(sources))
	for i := range sources {
		out = append(out, NewIncomeSourceOutput(&sources[i]))
	}
	return out
}
