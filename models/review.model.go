package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user's comment on a property. A user may review the same
// property more than once.
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail  string             `bson:"userEmail" json:"userEmail" validate:"required,email"`
	UserName   string             `bson:"userName,omitempty" json:"userName,omitempty"`
	PropertyID string             `bson:"propertyId" json:"propertyId" validate:"required"`
	Rating     float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Comment    string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
