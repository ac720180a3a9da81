// Package dtos defines the wire-visible projections of each entity, one
// struct per operation: create inputs never carry server-assigned fields,
// update inputs carry only the mutable subset (and never the owning user
// id), outputs carry every foreign key a client needs plus server-assigned
// fields — and never the password hash.
package dtos

import (
	"time"

	"cashcompass/models"
)

type UserCreateInput struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UserUpdateInput struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type UserOutput struct {
	UserID    uint      `json:"userId"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserOutput(u *models.User) UserOutput {
	return UserOutput{
		UserID:    u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserOutputs(users []models.User) []UserOutput {
	out := make([]UserOutput, 0, len(users))
	for i := range users {
		out = append(out, NewUserOutput(&users[i]))
	}
	return out
}
