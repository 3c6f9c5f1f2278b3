package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mrarifat21/bashabari-server-side/models"
	"github.com/mrarifat21/bashabari-server-side/utils"
)

// UserController handles the user registry
type UserController struct {
	UserCollection     *mongo.Collection
	PropertyCollection *mongo.Collection
	IdentityService    *utils.IdentityService
}

// NewUserController creates a new UserController. The property collection is
// needed for the fraud-flag cascade.
func NewUserController(client *mongo.Client, identityService *utils.IdentityService) *UserController {
	db := client.Database(utils.DatabaseName)
	return &UserController{
		UserCollection:     db.Collection("users"),
		PropertyCollection: db.Collection("properties"),
		IdentityService:    identityService,
	}
}

// NormalizeNewUser applies server-side defaults to a registration payload.
// The document id is always generated server-side, never taken from the
// client.
func NormalizeNewUser(user models.User) models.User {
	user.ID = primitive.NilObjectID
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	user.CreatedAt = time.Now()
	return user
}

// Register handles POST /users: idempotent register-if-absent keyed by email.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(user); err != nil {
		writeValidationError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := uc.UserCollection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":  "User already exists",
			"inserted": false,
		})
		return
	}

	user = NormalizeNewUser(user)

	result, err := uc.UserCollection.InsertOne(ctx, user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "User added",
		"inserted": true,
		"result":   result,
	})
}

// ListUsers handles GET /users (admin): unfiltered dump, no pagination.
func (uc *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := uc.UserCollection.Find(ctx, bson.M{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching users")
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		writeError(w, http.StatusInternalServerError, "Error reading users")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// GetUser handles GET /users/{email}
func (uc *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := uc.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// GetRole handles GET /users/{email}/role. A record with no role stored
// reads as "user".
func (uc *UserController) GetRole(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := uc.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}
	writeJSON(w, http.StatusOK, map[string]string{"role": role})
}

// UpdateRole handles PATCH /users/role/{id} (admin)
func (uc *UserController) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var body models.RoleUpdateRequest
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

	result, err := uc.UserCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"role": body.Role},
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error updating role")
		return
	}
	if result.MatchedCount == 0 {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Role updated",
		"modified": result.ModifiedCount,
	})
}

// FlagFraud handles PATCH /users/fraud/{id} (admin): marks the user fraud and
// bulk-marks their properties fraud-removed. Two independent writes; a failed
// second phase leaves the user flagged with listings still live, so both
// phases are reported.
func (uc *UserController) FlagFraud(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = uc.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	userResult, err := uc.UserCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": models.UserStatusFraud},
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error flagging user")
		return
	}

	propResult, err := uc.PropertyCollection.UpdateMany(ctx, bson.M{"agentEmail": user.Email}, bson.M{
		"$set": bson.M{"status": models.PropertyStatusFraudRemoved},
	})
	if err != nil {
		logrus.WithError(err).WithField("email", user.Email).
			Error("Fraud cascade failed: user flagged but listings not removed")
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":       "User flagged, property cascade failed",
			"userModified":  userResult.ModifiedCount,
			"cascadeError":  err.Error(),
			"propsModified": 0,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "User flagged as fraud",
		"userModified":  userResult.ModifiedCount,
		"propsMatched":  propResult.MatchedCount,
		"propsModified": propResult.ModifiedCount,
	})
}

// DeleteUser handles DELETE /users/{id} (admin): removes the local record,
// then best-effort deletes the identity provider account. The local delete is
// never rolled back; a provider failure is reported as a partial result.
func (uc *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var user models.User
	err = uc.UserCollection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error deleting user")
		return
	}

	provider := map[string]interface{}{"deleted": true}
	if err := uc.IdentityService.DeleteAccount(ctx, user.ExternalID); err != nil {
		logrus.WithError(err).WithField("email", user.Email).
			Warn("Identity provider deletion failed after local delete")
		provider["deleted"] = false
		provider["error"] = err.Error()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "User deleted",
		"deleted":  true,
		"provider": provider,
	})
}
