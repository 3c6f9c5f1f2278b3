package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddReviewRequiresUserAndProperty(t *testing.T) {
	rc := &ReviewController{}

	body, _ := json.Marshal(map[string]interface{}{
		"rating":  4.5,
		"comment": "Great neighbourhood",
	})
	req := httptest.NewRequest("POST", "/reviews", bytes.NewReader(body))
	w := httptest.NewRecorder()
	rc.AddReview(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteReviewRejectsMalformedID(t *testing.T) {
	rc := &ReviewController{}

	req := httptest.NewRequest("DELETE", "/reviews/xyz", nil)
	req = withMuxVars(req, map[string]string{"id": "xyz"})
	w := httptest.NewRecorder()
	rc.DeleteReview(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
