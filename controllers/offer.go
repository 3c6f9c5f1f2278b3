// controllers/offer.go
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

// OfferController handles buyer offers and the agent decision workflow
type OfferController struct {
	Collection   *mongo.Collection
	EmailService *utils.EmailService
}

// NewOfferController creates a new OfferController
func NewOfferController(client *mongo.Client, emailService *utils.EmailService) *OfferController {
	return &OfferController{
		Collection:   client.Database(utils.DatabaseName).Collection("offers"),
		EmailService: emailService,
	}
}

// SubmitOffer handles POST /offers. The amount is checked against the price
// range submitted with the offer, which is the client's copy of the
// property's range taken at submission time.
func (oc *OfferController) SubmitOffer(w http.ResponseWriter, r *http.Request) {
	var offer models.Offer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(offer); err != nil {
		writeValidationError(w, err)
		return
	}
	if !utils.OfferWithinRange(offer.OfferAmount, offer.PriceMin, offer.PriceMax) {
		writeError(w, http.StatusBadRequest, "Offer amount must be within the property's price range")
		return
	}

	offer.ID = primitive.NilObjectID
	offer.Status = models.OfferStatusPending
	offer.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := oc.Collection.InsertOne(ctx, offer)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error submitting offer")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// ListForBuyer handles GET /offers/buyer?email=
func (oc *OfferController) ListForBuyer(w http.ResponseWriter, r *http.Request) {
	oc.listByField(w, r, "buyerEmail")
}

// ListForAgent handles GET /offers/agent?email=
func (oc *OfferController) ListForAgent(w http.ResponseWriter, r *http.Request) {
	oc.listByField(w, r, "agentEmail")
}

func (oc *OfferController) listByField(w http.ResponseWriter, r *http.Request, field string) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := oc.Collection.Find(ctx, bson.M{field: email}, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching offers")
		return
	}
	defer cursor.Close(ctx)

	offers := []models.Offer{}
	for cursor.Next(ctx) {
		var offer models.Offer
		if err := cursor.Decode(&offer); err != nil {
			continue
		}
		offers = append(offers, offer)
	}
	if err := cursor.Err(); err != nil {
		writeError(w, http.StatusInternalServerError, "Error reading offers")
		return
	}

	writeJSON(w, http.StatusOK, offers)
}

// GetOffer handles GET /offers/{id}
func (oc *OfferController) GetOffer(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var offer models.Offer
	err = oc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&offer)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "Offer not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, offer)
}

// SiblingRejectionFilter selects every other offer on the same property for
// the bulk rejection that follows an acceptance.
func SiblingRejectionFilter(acceptedID primitive.ObjectID, propertyID string) bson.M {
	return bson.M{
		"_id":        bson.M{"$ne": acceptedID},
		"propertyId": propertyID,
	}
}

// UpdateOfferStatus handles PATCH /offers/{id} (agent). Accepting an offer
// triggers a second bulk write rejecting its siblings. The two writes are
// sequential and independently failing; both phases report their counts.
func (oc *OfferController) UpdateOfferStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	var body models.OfferStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(body); err != nil {
		writeValidationError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := oc.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": body.Status},
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error updating offer")
		return
	}
	if result.MatchedCount == 0 {
		writeError(w, http.StatusNotFound, "Offer not found")
		return
	}

	response := map[string]interface{}{
		"message":          "Offer " + body.Status,
		"offerModified":    result.ModifiedCount,
		"siblingsRejected": int64(0),
	}

	if body.Status == models.OfferStatusAccepted {
		siblings, err := oc.Collection.UpdateMany(ctx,
			SiblingRejectionFilter(id, body.PropertyID),
			bson.M{"$set": bson.M{"status": models.OfferStatusRejected}},
		)
		if err != nil {
			logrus.WithError(err).WithField("propertyId", body.PropertyID).
				Error("Sibling rejection failed: offer accepted but siblings still pending")
			response["message"] = "Offer accepted, sibling rejection failed"
			response["cascadeError"] = err.Error()
			writeJSON(w, http.StatusOK, response)
			return
		}
		response["siblingsRejected"] = siblings.ModifiedCount
	}

	oc.notifyBuyer(id, body.Status)

	writeJSON(w, http.StatusOK, response)
}

// notifyBuyer mails the offer's buyer about the decision, off the request
// path. Delivery failures are logged, never surfaced to the agent.
func (oc *OfferController) notifyBuyer(id primitive.ObjectID, status string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var offer models.Offer
		if err := oc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&offer); err != nil {
			logrus.WithError(err).Warn("Could not load offer for buyer notification")
			return
		}
		if err := oc.EmailService.SendOfferDecisionEmail(offer.BuyerEmail, offer.PropertyTitle, status, offer.OfferAmount); err != nil {
			logrus.WithError(err).WithField("buyer", offer.BuyerEmail).Warn("Failed to send offer decision email")
		}
	}()
}
