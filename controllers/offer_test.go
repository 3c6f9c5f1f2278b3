package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func offerPayload() map[string]interface{} {
	return map[string]interface{}{
		"propertyId":  "6740f0a1b2c3d4e5f6a7b8c9",
		"buyerEmail":  "buyer@example.com",
		"agentEmail":  "rahim@example.com",
		"offerAmount": 125000,
		"priceMin":    100000,
		"priceMax":    150000,
	}
}

func postOffer(t *testing.T, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	oc := &OfferController{}

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/offers", bytes.NewReader(body))
	w := httptest.NewRecorder()
	oc.SubmitOffer(w, req)
	return w
}

func TestSubmitOfferRejectsBelowRange(t *testing.T) {
	payload := offerPayload()
	payload["offerAmount"] = 99999
	w := postOffer(t, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitOfferRejectsAboveRange(t *testing.T) {
	payload := offerPayload()
	payload["offerAmount"] = 150001
	w := postOffer(t, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitOfferRejectsMissingBuyer(t *testing.T) {
	payload := offerPayload()
	delete(payload, "buyerEmail")
	w := postOffer(t, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOfferStatusRejectsUnknownStatus(t *testing.T) {
	oc := &OfferController{}

	body, _ := json.Marshal(map[string]string{
		"status":     "withdrawn",
		"propertyId": "6740f0a1b2c3d4e5f6a7b8c9",
	})
	req := httptest.NewRequest("PATCH", "/offers/6740f0a1b2c3d4e5f6a7b8c0", bytes.NewReader(body))
	req = withMuxVars(req, map[string]string{"id": "6740f0a1b2c3d4e5f6a7b8c0"})
	w := httptest.NewRecorder()
	oc.UpdateOfferStatus(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSiblingRejectionFilterScopesToProperty(t *testing.T) {
	accepted := primitive.NewObjectID()
	filter := SiblingRejectionFilter(accepted, "prop-123")

	// The accepted offer itself is excluded, everything else on the same
	// property is in scope, offers on other properties are untouched.
	assert.Equal(t, bson.M{"$ne": accepted}, filter["_id"])
	assert.Equal(t, "prop-123", filter["propertyId"])
	assert.Len(t, filter, 2)
}
