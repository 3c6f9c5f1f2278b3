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
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mrarifat21/bashabari-server-side/models"
	"github.com/mrarifat21/bashabari-server-side/utils"
)

// LatestReviewsLimit caps the homepage review feed.
const LatestReviewsLimit = 3

// ReviewController handles property reviews
type ReviewController struct {
	Collection *mongo.Collection
}

// NewReviewController creates a new ReviewController
func NewReviewController(client *mongo.Client) *ReviewController {
	return &ReviewController{
		Collection: client.Database(utils.DatabaseName).Collection("reviews"),
	}
}

// AddReview handles POST /reviews. Rating and comment are stored as given; a
// user may review the same property more than once.
func (rc *ReviewController) AddReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(review); err != nil {
		writeValidationError(w, err)
		return
	}

	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rc.Collection.InsertOne(ctx, review); err != nil {
		writeError(w, http.StatusInternalServerError, "Error adding review")
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// ListByProperty handles GET /reviews/property/{propertyId}, newest first.
func (rc *ReviewController) ListByProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]
	rc.list(w, bson.M{"propertyId": propertyID})
}

// ListByUser handles GET /reviews/user?email=
func (rc *ReviewController) ListByUser(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter required")
		return
	}
	rc.list(w, bson.M{"userEmail": email})
}

// ListLatest handles GET /reviews/latest: the newest three reviews for the
// homepage, behind the short-TTL cache when redis is configured.
func (rc *ReviewController) ListLatest(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cached := []models.Review{}
	hit, err := utils.GetCached(ctx, utils.CacheKeyLatestReviews, &cached)
	if err != nil {
		logrus.WithError(err).Warn("Homepage cache read failed")
	}
	if hit {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(LatestReviewsLimit)
	cursor, err := rc.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching reviews")
		return
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		writeError(w, http.StatusInternalServerError, "Error reading reviews")
		return
	}

	if err := utils.SetCached(ctx, utils.CacheKeyLatestReviews, reviews, utils.HomeCacheTTL); err != nil {
		logrus.WithError(err).Warn("Homepage cache write failed")
	}

	writeJSON(w, http.StatusOK, reviews)
}

// ListAll handles GET /admin/reviews (admin)
func (rc *ReviewController) ListAll(w http.ResponseWriter, r *http.Request) {
	rc.list(w, bson.M{})
}

func (rc *ReviewController) list(w http.ResponseWriter, filter bson.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := rc.Collection.Find(ctx, filter, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching reviews")
		return
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	for cursor.Next(ctx) {
		var review models.Review
		if err := cursor.Decode(&review); err != nil {
			continue
		}
		reviews = append(reviews, review)
	}
	if err := cursor.Err(); err != nil {
		writeError(w, http.StatusInternalServerError, "Error reading reviews")
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

// DeleteReview handles DELETE /reviews/{id} (admin)
func (rc *ReviewController) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := rc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error deleting review")
		return
	}
	if result.DeletedCount == 0 {
		writeError(w, http.StatusNotFound, "Review not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Review deleted"})
}
