package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mrarifat21/bashabari-server-side/models"
	"github.com/mrarifat21/bashabari-server-side/utils"
)

// AdvertisedLimit caps the homepage carousel.
const AdvertisedLimit = 4

// ListingController serves the composed read views joining properties with
// the user registry.
type ListingController struct {
	Collection *mongo.Collection
}

// NewListingController creates a new ListingController
func NewListingController(client *mongo.Client) *ListingController {
	return &ListingController{
		Collection: client.Database(utils.DatabaseName).Collection("properties"),
	}
}

// AdvertisedPipeline builds the homepage carousel aggregation: advertised and
// verified listings, minus fraud-flagged agents, newest four, reduced shape
// with the agent name taken from the joined user record.
func AdvertisedPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"isAdvertised": true,
			"status":       models.PropertyStatusVerified,
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "agentEmail",
			"foreignField": "email",
			"as":           "agent",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$agent",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$match", Value: bson.M{
			"agent.status": bson.M{"$ne": models.UserStatusFraud},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$limit", Value: AdvertisedLimit}},
		bson.D{{Key: "$project", Value: bson.M{
			"image":     1,
			"title":     1,
			"location":  1,
			"priceMin":  1,
			"priceMax":  1,
			"status":    1,
			"agentName": "$agent.name",
		}}},
	}
}

// VerifiedByAgentsPipeline builds the all-verified-listings view. A listing
// survives when its agent holds the agent role and is not fraud-flagged, or
// when no agent record matched at all: deleting a user must not silently hide
// their past listings.
func VerifiedByAgentsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status": models.PropertyStatusVerified,
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "agentEmail",
			"foreignField": "email",
			"as":           "agent",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$agent",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"agent": bson.M{"$exists": false}},
				bson.M{
					"agent.role":   models.RoleAgent,
					"agent.status": bson.M{"$ne": models.UserStatusFraud},
				},
			},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
}

// GetAdvertised handles GET /properties/advertised, behind the short-TTL
// homepage cache when redis is configured.
func (lc *ListingController) GetAdvertised(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cached := []models.AdvertisedProperty{}
	hit, err := utils.GetCached(ctx, utils.CacheKeyAdvertised, &cached)
	if err != nil {
		logrus.WithError(err).Warn("Homepage cache read failed")
	}
	if hit {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	cursor, err := lc.Collection.Aggregate(ctx, AdvertisedPipeline())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching advertised properties")
		return
	}
	defer cursor.Close(ctx)

	results := []models.AdvertisedProperty{}
	if err := cursor.All(ctx, &results); err != nil {
		writeError(w, http.StatusInternalServerError, "Error reading advertised properties")
		return
	}

	if err := utils.SetCached(ctx, utils.CacheKeyAdvertised, results, utils.HomeCacheTTL); err != nil {
		logrus.WithError(err).Warn("Homepage cache write failed")
	}

	writeJSON(w, http.StatusOK, results)
}

// GetVerifiedByAgents handles GET /verified-properties-by-agents, unbounded.
func (lc *ListingController) GetVerifiedByAgents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := lc.Collection.Aggregate(ctx, VerifiedByAgentsPipeline())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching verified properties")
		return
	}
	defer cursor.Close(ctx)

	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		writeError(w, http.StatusInternalServerError, "Error reading verified properties")
		return
	}

	writeJSON(w, http.StatusOK, results)
}
