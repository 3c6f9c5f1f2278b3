package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mrarifat21/bashabari-server-side/models"
	"github.com/mrarifat21/bashabari-server-side/utils"
)

// AuthController mints API tokens for emails that already authenticated at
// the identity provider. The role claim is always read from the registry.
type AuthController struct {
	UserCollection *mongo.Collection
}

// NewAuthController creates a new AuthController
func NewAuthController(client *mongo.Client) *AuthController {
	return &AuthController{
		UserCollection: client.Database(utils.DatabaseName).Collection("users"),
	}
}

// IssueToken handles POST /jwt
func (ac *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(body); err != nil {
		writeValidationError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Unregistered emails still get a token, with the default role.
	role := models.RoleUser
	var user models.User
	err := ac.UserCollection.FindOne(ctx, bson.M{"email": body.Email}).Decode(&user)
	if err == nil && user.Role != "" {
		role = user.Role
	} else if err != nil && err != mongo.ErrNoDocuments {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := utils.GenerateJWT(body.Email, role)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
