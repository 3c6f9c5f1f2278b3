package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

// User statuses
const (
	UserStatusActive = "active"
	UserStatusFraud  = "fraud"
)

// User represents an account in the registry. Accounts are created on first
// sign-in; credentials live at the external identity provider, never here.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
	Role       string             `bson:"role" json:"role"`
	Status     string             `bson:"status" json:"status"`
	ExternalID string             `bson:"externalId,omitempty" json:"externalId,omitempty"`
	PhotoURL   string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// RoleUpdateRequest is the body of PATCH /users/role/{id}.
type RoleUpdateRequest struct {
	Role string `json:"role" validate:"required,oneof=user agent admin"`
}
