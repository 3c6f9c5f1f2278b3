package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mrarifat21/bashabari-server-side/models"
	"github.com/mrarifat21/bashabari-server-side/utils"
)

// PropertyController handles the property catalog
type PropertyController struct {
	Collection *mongo.Collection
}

// NewPropertyController creates a new PropertyController
func NewPropertyController(client *mongo.Client) *PropertyController {
	return &PropertyController{
		Collection: client.Database(utils.DatabaseName).Collection("properties"),
	}
}

// BuildPropertyPatch sanitizes an update payload: the id and creation stamp
// are immutable, and every edit sends the listing back to pending for
// re-review no matter what status the patch carried.
func BuildPropertyPatch(patch bson.M) bson.M {
	delete(patch, "_id")
	delete(patch, "id")
	delete(patch, "createdAt")
	patch["status"] = models.PropertyStatusPending
	return patch
}

// CreateProperty handles POST /properties (agent)
func (pc *PropertyController) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(property); err != nil {
		writeValidationError(w, err)
		return
	}

	// Client input never decides the initial status or the creation stamp.
	property.ID = primitive.NilObjectID
	property.Status = models.PropertyStatusPending
	property.IsAdvertised = false
	property.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := pc.Collection.InsertOne(ctx, property)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error creating property")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// ListProperties handles GET /properties[?status=], newest first.
func (pc *PropertyController) ListProperties(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := pc.Collection.Find(ctx, filter, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching properties")
		return
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	for cursor.Next(ctx) {
		var property models.Property
		if err := cursor.Decode(&property); err != nil {
			continue
		}
		properties = append(properties, property)
	}
	if err := cursor.Err(); err != nil {
		writeError(w, http.StatusInternalServerError, "Error reading properties")
		return
	}

	writeJSON(w, http.StatusOK, properties)
}

// ListByAgent handles GET /properties/agent?email=
func (pc *PropertyController) ListByAgent(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := pc.Collection.Find(ctx, bson.M{"agentEmail": email}, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching properties")
		return
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	for cursor.Next(ctx) {
		var property models.Property
		if err := cursor.Decode(&property); err != nil {
			continue
		}
		properties = append(properties, property)
	}
	if err := cursor.Err(); err != nil {
		writeError(w, http.StatusInternalServerError, "Error reading properties")
		return
	}

	writeJSON(w, http.StatusOK, properties)
}

// GetProperty handles GET /properties/{id}
func (pc *PropertyController) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var property models.Property
	err = pc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "Property not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, property)
}

// UpdateProperty handles PATCH /properties/{id} (agent): merges the patch and
// always resets status to pending.
func (pc *PropertyController) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	var patch bson.M
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := pc.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": BuildPropertyPatch(patch),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error updating property")
		return
	}
	if result.MatchedCount == 0 {
		writeError(w, http.StatusNotFound, "Property not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Property updated, pending re-review",
		"modified": result.ModifiedCount,
	})
}

// UpdateStatus handles PATCH /properties/status/{id} (admin). Unconditional
// overwrite, no transition restrictions beyond the known values.
func (pc *PropertyController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	var body models.StatusUpdateRequest
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

	result, err := pc.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": body.Status},
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error updating status")
		return
	}
	if result.MatchedCount == 0 {
		writeError(w, http.StatusNotFound, "Property not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Status updated",
		"modified": result.ModifiedCount,
	})
}

// DeleteProperty handles DELETE /properties/{id} (agent). Unconditional; no
// dependent offers/wishlist/reviews are touched.
func (pc *PropertyController) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := pc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error deleting property")
		return
	}
	if result.DeletedCount == 0 {
		writeError(w, http.StatusNotFound, "Property not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Property deleted"})
}

// Advertise handles PATCH /advertise/{id} (admin). One-way flag; reports not
// found when nothing was modified (absent or already advertised). There is no
// un-advertise.
func (pc *PropertyController) Advertise(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := pc.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"isAdvertised": true},
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error advertising property")
		return
	}
	if result.ModifiedCount == 0 {
		writeError(w, http.StatusNotFound, "Property not found or already advertised")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Property advertised"})
}
