package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashcompass/dtos"
	"cashcompass/models"
	"cashcompass/store"
)

func (s *server) listUsers(c *gin.Context) {
	limit, offset := parsePage(c)
	users, err := s.st.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewUserOutputs(users))
}

func (s *server) getUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := s.st.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewUserOutput(u))
}

func (s *server) createUser(c *gin.Context) {
	var in dtos.UserCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	u := &models.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.st.CreateUser(c.Request.Context(), u); err != nil {
		writeError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/users/%d", u.ID))
	c.JSON(http.StatusCreated, dtos.NewUserOutput(u))
}

func (s *server) updateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in dtos.UserUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	u, err := s.st.UpdateUser(c.Request.Context(), id, store.UserUpdate{
		FullName: in.FullName,
		Email:    in.Email,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewUserOutput(u))
}

func (s *server) deleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.st.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
