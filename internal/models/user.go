// Package models defines data structures for the application.
package models

import (
	"time"
)

// Role is a user's authorization role.
type Role string

// User roles
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a user in the system.
type User struct {
	ID           int64     `json:"id" bson:"_id" example:"1"`
	Name         string    `json:"name" bson:"name" example:"Alice Smith"`
	Email        string    `json:"email" bson:"email" example:"alice@example.com"`
	Username     string    `json:"username" bson:"username" example:"alice"`
	PasswordHash string    `json:"-" bson:"passwordHash"` // "-" = never include in JSON response
	Role         Role      `json:"role" bson:"role" example:"USER"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,notblank" example:"Alice Smith"`
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Username string `json:"username" binding:"required,username,max=50" example:"alice"`
	Password string `json:"password" binding:"required,notblank,maxbytes=72" example:"pw123"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"pw123"`
}
