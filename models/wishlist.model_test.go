package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWishlistPropertyIDAcceptsString(t *testing.T) {
	var item WishlistItem
	err := json.Unmarshal([]byte(`{"userEmail":"buyer@example.com","propertyId":"6740f0a1b2c3d4e5f6a7b8c9"}`), &item)
	assert.NoError(t, err)
	assert.Equal(t, StringID("6740f0a1b2c3d4e5f6a7b8c9"), item.PropertyID)
}

func TestWishlistPropertyIDNormalizesNumber(t *testing.T) {
	var item WishlistItem
	err := json.Unmarshal([]byte(`{"userEmail":"buyer@example.com","propertyId":12345}`), &item)
	assert.NoError(t, err)
	assert.Equal(t, StringID("12345"), item.PropertyID)
}

func TestWishlistPropertyIDRejectsOtherShapes(t *testing.T) {
	var item WishlistItem
	err := json.Unmarshal([]byte(`{"userEmail":"buyer@example.com","propertyId":{"nested":true}}`), &item)
	assert.Error(t, err)
}
