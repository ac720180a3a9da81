package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashcompass/dtos"
	"cashcompass/models"
	"cashcompass/store"
)

func (s *server) listIncomeSources(c *gin.Context) {
	limit, offset := parsePage(c)
	sources, err := s.st.ListIncomeSources(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewIncomeSourceOutputs(sources))
}

func (s *server) getIncomeSource(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	src, err := s.st.GetIncomeSource(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewIncomeSourceOutput(src))
}

func (s *server) listIncomeSourcesByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	sources, err := s.st.ListIncomeSourcesByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewIncomeSourceOutputs(sources))
}

func (s *server) createIncomeSource(c *gin.Context) {
	var in dtos.IncomeSourceCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	nextPay, err := dtos.ParseTimestamp(in.NextPayDate)
	if err != nil {
		writeValidationError(c, err)
		return
	}
	src := &models.IncomeSource{
		UserID:       in.UserID,
		SourceName:   in.SourceName,
		Amount:       in.Amount,
		PayFrequency: in.PayFrequency,
		NextPayDate:  nextPay,
	}
	if err := s.st.CreateIncomeSource(c.Request.Context(), src); err != nil {
		writeError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/incomesources/%d", src.ID))
	c.JSON(http.StatusCreated, dtos.NewIncomeSourceOutput(src))
}

func (s *server) updateIncomeSource(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in dtos.IncomeSourceUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	nextPay, err := dtos.ParseTimestamp(in.NextPayDate)
	if err != nil {
		writeValidationError(c, err)
		return
	}
	src, err := s.st.UpdateIncomeSource(c.Request.Context(), id, store.IncomeSourceUpdate{
		SourceName:   in.SourceName,
		Amount:       in.Amount,
		PayFrequency: in.PayFrequency,
		NextPayDate:  nextPay,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewIncomeSourceOutput(src))
}

func (s *server) deleteIncomeSource(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.st.DeleteIncomeSource(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
