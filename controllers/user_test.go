package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mrarifat21/bashabari-server-side/models"
)

func TestNormalizeNewUserClearsClientID(t *testing.T) {
	crafted := primitive.NewObjectID()
	user := NormalizeNewUser(models.User{
		ID:    crafted,
		Name:  "Rahim Uddin",
		Email: "rahim@example.com",
	})

	assert.True(t, user.ID.IsZero())
	assert.Equal(t, "rahim@example.com", user.Email)
}

func TestNormalizeNewUserAppliesDefaults(t *testing.T) {
	user := NormalizeNewUser(models.User{Email: "rahim@example.com"})

	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, models.UserStatusActive, user.Status)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestNormalizeNewUserKeepsProvidedProfile(t *testing.T) {
	user := NormalizeNewUser(models.User{
		Email:  "rahim@example.com",
		Role:   models.RoleAgent,
		Status: models.UserStatusActive,
	})

	assert.Equal(t, models.RoleAgent, user.Role)
}

func TestRegisterRejectsMissingEmail(t *testing.T) {
	uc := &UserController{}

	body, _ := json.Marshal(map[string]string{"name": "Rahim Uddin"})
	req := httptest.NewRequest("POST", "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()
	uc.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	uc := &UserController{}

	body, _ := json.Marshal(map[string]string{"role": "superuser"})
	req := httptest.NewRequest("PATCH", "/users/role/6740f0a1b2c3d4e5f6a7b8c9", bytes.NewReader(body))
	req = withMuxVars(req, map[string]string{"id": "6740f0a1b2c3d4e5f6a7b8c9"})
	w := httptest.NewRecorder()
	uc.UpdateRole(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUserRejectsMalformedID(t *testing.T) {
	uc := &UserController{}

	req := httptest.NewRequest("DELETE", "/users/whoever", nil)
	req = withMuxVars(req, map[string]string{"id": "whoever"})
	w := httptest.NewRecorder()
	uc.DeleteUser(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
