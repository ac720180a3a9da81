package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashcompass/dtos"
	"cashcompass/models"
	"cashcompass/store"
)

func (s *server) listAllocations(c *gin.Context) {
	limit, offset := parsePage(c)
	allocs, err := s.st.ListAllocations(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewAllocationOutputs(allocs))
}

func (s *server) getAllocation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := s.st.GetAllocation(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewAllocationOutput(a))
}

func (s *server) listAllocationsByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	allocs, err := s.st.ListAllocationsByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewAllocationOutputs(allocs))
}

func (s *server) listAllocationsByIncome(c *gin.Context) {
	incomeID, ok := pathID(c, "incomeId")
	if !ok {
		return
	}
	allocs, err := s.st.ListAllocationsByIncome(c.Request.Context(), incomeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewAllocationOutputs(allocs))
}

func (s *server) createAllocation(c *gin.Context) {
	var in dtos.AllocationCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	a := &models.Allocation{
		UserID:          in.UserID,
		IncomeID:        in.IncomeID,
		CategoryID:      in.CategoryID,
		AllocationType:  in.AllocationType,
		AllocationValue: in.AllocationValue,
	}
	if err := s.st.CreateAllocation(c.Request.Context(), a); err != nil {
		writeError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/allocations/%d", a.ID))
	c.JSON(http.StatusCreated, dtos.NewAllocationOutput(a))
}

func (s *server) updateAllocation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in dtos.AllocationUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	a, err := s.st.UpdateAllocation(c.Request.Context(), id, store.AllocationUpdate{
		IncomeID:        in.IncomeID,
		CategoryID:      in.CategoryID,
		AllocationType:  in.AllocationType,
		AllocationValue: in.AllocationValue,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewAllocationOutput(a))
}

func (s *server) deleteAllocation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.st.DeleteAllocation(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
