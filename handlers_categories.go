package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashcompass/dtos"
	"cashcompass/models"
	"cashcompass/store"
)

func (s *server) listCategories(c *gin.Context) {
	limit, offset := parsePage(c)
	cats, err := s.st.ListCategories(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewCategoryOutputs(cats))
}

func (s *server) getCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cat, err := s.st.GetCategory(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewCategoryOutput(cat))
}

func (s *server) listCategoriesByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	cats, err := s.st.ListCategoriesByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewCategoryOutputs(cats))
}

func (s *server) createCategory(c *gin.Context) {
	var in dtos.CategoryCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	cat := &models.Category{
		UserID: in.UserID,
		Name:   in.CategoryName,
	}
	if in.Description != nil {
		cat.Description = *in.Description
	}
	if err := s.st.CreateCategory(c.Request.Context(), cat); err != nil {
		writeError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/categories/%d", cat.ID))
	c.JSON(http.StatusCreated, dtos.NewCategoryOutput(cat))
}

func (s *server) updateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in dtos.CategoryUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	cat, err := s.st.UpdateCategory(c.Request.Context(), id, store.CategoryUpdate{
		Name:        in.CategoryName,
		Description: in.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewCategoryOutput(cat))
}

func (s *server) deleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.st.DeleteCategory(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
