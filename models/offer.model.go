package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Offer statuses
const (
	OfferStatusPending  = "pending"
	OfferStatusAccepted = "accepted"
	OfferStatusRejected = "rejected"
)

// Offer is a buyer's proposed price for a listing. PriceMin/PriceMax are
// denormalized copies of the property's range taken at submission time.
type Offer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PropertyID    string             `bson:"propertyId" json:"propertyId" validate:"required"`
	PropertyTitle string             `bson:"propertyTitle,omitempty" json:"propertyTitle,omitempty"`
	BuyerEmail    string             `bson:"buyerEmail" json:"buyerEmail" validate:"required,email"`
	BuyerName     string             `bson:"buyerName,omitempty" json:"buyerName,omitempty"`
	AgentEmail    string             `bson:"agentEmail" json:"agentEmail" validate:"required,email"`
	OfferAmount   float64            `bson:"offerAmount" json:"offerAmount" validate:"required"`
	PriceMin      float64            `bson:"priceMin" json:"priceMin" validate:"required"`
	PriceMax      float64            `bson:"priceMax" json:"priceMax" validate:"required"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// OfferStatusUpdateRequest is the body of PATCH /offers/{id}. PropertyID scopes
// the sibling-rejection cascade when an offer is accepted.
type OfferStatusUpdateRequest struct {
	Status     string `json:"status" validate:"required,oneof=accepted rejected"`
	PropertyID string `json:"propertyId" validate:"required"`
}
