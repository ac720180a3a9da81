package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashcompass/dtos"
	"cashcompass/models"
	"cashcompass/store"
)

func (s *server) listExpenses(c *gin.Context) {
	limit, offset := parsePage(c)
	expenses, err := s.st.ListExpenses(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewExpenseOutputs(expenses))
}

func (s *server) getExpense(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	e, err := s.st.GetExpense(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewExpenseOutput(e))
}

func (s *server) listExpensesByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	expenses, err := s.st.ListExpensesByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewExpenseOutputs(expenses))
}

func (s *server) listExpensesByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	expenses, err := s.st.ListExpensesByCategory(c.Request.Context(), categoryID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewExpenseOutputs(expenses))
}

func (s *server) createExpense(c *gin.Context) {
	var in dtos.ExpenseCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	date, err := dtos.ParseTimestamp(in.ExpenseDate)
	if err != nil {
		writeValidationError(c, err)
		return
	}
	e := &models.Expense{
		UserID:      in.UserID,
		CategoryID:  in.CategoryID,
		ExpenseName: in.ExpenseName,
		Amount:      in.Amount,
		ExpenseDate: date,
		Notes:       in.Notes,
	}
	if err := s.st.CreateExpense(c.Request.Context(), e); err != nil {
		writeError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/expenses/%d", e.ID))
	c.JSON(http.StatusCreated, dtos.NewExpenseOutput(e))
}

func (s *server) updateExpense(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in dtos.ExpenseUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	date, err := dtos.ParseTimestamp(in.ExpenseDate)
	if err != nil {
		writeValidationError(c, err)
		return
	}
	e, err := s.st.UpdateExpense(c.Request.Context(), id, store.ExpenseUpdate{
		ExpenseName: in.ExpenseName,
		Amount:      in.Amount,
		CategoryID:  in.CategoryID,
		ExpenseDate: date,
		Notes:       in.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewExpenseOutput(e))
}

func (s *server) deleteExpense(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.st.DeleteExpense(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
