package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property statuses
const (
	PropertyStatusPending      = "pending"
	PropertyStatusVerified     = "verified"
	PropertyStatusFraudRemoved = "fraud-removed"
)

// Property represents a listing submitted by an agent. Every listing starts
// "pending" and any edit sends it back to "pending" for re-review.
type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title" validate:"required"`
	Location     string             `bson:"location" json:"location" validate:"required"`
	Image        string             `bson:"image" json:"image" validate:"required"`
	PriceMin     float64            `bson:"priceMin" json:"priceMin" validate:"required"`
	PriceMax     float64            `bson:"priceMax" json:"priceMax" validate:"required"`
	AgentName    string             `bson:"agentName" json:"agentName" validate:"required"`
	AgentEmail   string             `bson:"agentEmail" json:"agentEmail" validate:"required,email"`
	Status       string             `bson:"status" json:"status"`
	IsAdvertised bool               `bson:"isAdvertised" json:"isAdvertised"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// StatusUpdateRequest is the body of PATCH /properties/status/{id}.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending verified fraud-removed"`
}

// AdvertisedProperty is the reduced shape served by the homepage carousel view.
type AdvertisedProperty struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Image     string             `bson:"image" json:"image"`
	Title     string             `bson:"title" json:"title"`
	Location  string             `bson:"location" json:"location"`
	PriceMin  float64            `bson:"priceMin" json:"priceMin"`
	PriceMax  float64            `bson:"priceMax" json:"priceMax"`
	Status    string             `bson:"status" json:"status"`
	AgentName string             `bson:"agentName" json:"agentName"`
}
