package dtos

import "cashcompass/models"

type CategoryCreateInput struct {
	CategoryName string  `json:"categoryName" binding:"required"`
	Description  *string `json:"description"`
	UserID       uint    `json:"userId" binding:"required"`
}

// CategoryUpdateInput deliberately has no userId: ownership is fixed at
// creation. Nil description keeps the stored value.
type CategoryUpdateInput struct {
	CategoryName string  `json:"categoryName" binding:"required"`
	Description  *string `json:"description"`
}

type CategoryOutput struct {
	CategoryID   uint   `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
	UserID       uint   `json:"userId"`
}

func NewCategoryOutput(c *models.Category) CategoryOutput {
	return CategoryOutput{
		CategoryID:   c.ID,
		CategoryName: c.Name,
		Description:  c.Description,
		UserID:       c.UserID,
	}
}

func NewCategoryOutputs(categories []models.Category) []CategoryOutput {
	out := make([]CategoryOutput, 0, len(categories))
	for i := range categories {
		out = append(out, NewCategoryOutput(&categories[i]))
	}
	return out
}
