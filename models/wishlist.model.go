package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StringID is a property reference that decodes from either a JSON string or
// a JSON number, normalizing to its string form. Stored and compared as a
// plain string.
type StringID string

func (s *StringID) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*s = StringID(v)
	case json.Number:
		*s = StringID(v.String())
	default:
		return fmt.Errorf("propertyId must be a string or number")
	}
	return nil
}

// WishlistItem is one saved listing for one user. The (userEmail, propertyId)
// pair is kept unique by a pre-insert existence check.
type WishlistItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail  string             `bson:"userEmail" json:"userEmail" validate:"required,email"`
	PropertyID StringID           `bson:"propertyId" json:"propertyId" validate:"required"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
