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

	"github.com/mrarifat21/bashabari-server-side/models"
	"github.com/mrarifat21/bashabari-server-side/utils"
)

// WishlistController handles per-user saved listings
type WishlistController struct {
	Collection *mongo.Collection
}

// NewWishlistController creates a new WishlistController
func NewWishlistController(client *mongo.Client) *WishlistController {
	return &WishlistController{
		Collection: client.Database(utils.DatabaseName).Collection("wishlists"),
	}
}

// DuplicateWishlistFilter selects existing rows for a (userEmail, propertyId)
// pair; any match makes an add a conflict.
func DuplicateWishlistFilter(userEmail, propertyID string) bson.M {
	return bson.M{
		"userEmail":  userEmail,
		"propertyId": propertyID,
	}
}

// AddToWishlist handles POST /wishlist. Check-then-insert keeps the
// (userEmail, propertyId) pair unique; two concurrent identical requests can
// still both pass the check.
func (wc *WishlistController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var item models.WishlistItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(item); err != nil {
		writeValidationError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := wc.Collection.CountDocuments(ctx, DuplicateWishlistFilter(item.UserEmail, string(item.PropertyID)))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error checking wishlist")
		return
	}
	if count > 0 {
		writeError(w, http.StatusConflict, "Property already in wishlist")
		return
	}

	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()

	if _, err := wc.Collection.InsertOne(ctx, item); err != nil {
		writeError(w, http.StatusInternalServerError, "Error adding to wishlist")
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// ListWishlist handles GET /wishlist?email=
func (wc *WishlistController) ListWishlist(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := wc.Collection.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching wishlist")
		return
	}
	defer cursor.Close(ctx)

	items := []models.WishlistItem{}
	for cursor.Next(ctx) {
		var item models.WishlistItem
		if err := cursor.Decode(&item); err != nil {
			continue
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		writeError(w, http.StatusInternalServerError, "Error reading wishlist")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// CheckWishlist handles GET /wishlist/check?email=&propertyId=, the boolean
// lookup the front-end uses to toggle the save button.
func (wc *WishlistController) CheckWishlist(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	propertyID := r.URL.Query().Get("propertyId")
	if email == "" || propertyID == "" {
		writeError(w, http.StatusBadRequest, "email and propertyId query parameters required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := wc.Collection.CountDocuments(ctx, DuplicateWishlistFilter(email, propertyID))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error checking wishlist")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"exists": count > 0})
}

// GetWishlistItem handles GET /wishlist/{id}
func (wc *WishlistController) GetWishlistItem(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid wishlist ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var item models.WishlistItem
	err = wc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "Wishlist item not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// RemoveFromWishlist handles DELETE /wishlist/{id}
func (wc *WishlistController) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid wishlist ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := wc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error removing from wishlist")
		return
	}
	if result.DeletedCount == 0 {
		writeError(w, http.StatusNotFound, "Wishlist item not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Removed from wishlist"})
}
