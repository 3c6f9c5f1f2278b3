package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func stageValue(t *testing.T, stage bson.D, name string) interface{} {
	t.Helper()
	assert.Len(t, stage, 1)
	assert.Equal(t, name, stage[0].Key)
	return stage[0].Value
}

func TestAdvertisedPipelineShape(t *testing.T) {
	pipeline := AdvertisedPipeline()
	assert.Len(t, pipeline, 7)

	match := stageValue(t, pipeline[0], "$match").(bson.M)
	assert.Equal(t, true, match["isAdvertised"])
	assert.Equal(t, "verified", match["status"])

	lookup := stageValue(t, pipeline[1], "$lookup").(bson.M)
	assert.Equal(t, "users", lookup["from"])
	assert.Equal(t, "agentEmail", lookup["localField"])
	assert.Equal(t, "email", lookup["foreignField"])

	unwind := stageValue(t, pipeline[2], "$unwind").(bson.M)
	assert.Equal(t, true, unwind["preserveNullAndEmptyArrays"])

	fraudFilter := stageValue(t, pipeline[3], "$match").(bson.M)
	assert.Equal(t, bson.M{"$ne": "fraud"}, fraudFilter["agent.status"])

	sort := stageValue(t, pipeline[4], "$sort").(bson.D)
	assert.Equal(t, "createdAt", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)

	assert.Equal(t, AdvertisedLimit, stageValue(t, pipeline[5], "$limit"))

	project := stageValue(t, pipeline[6], "$project").(bson.M)
	for _, field := range []string{"image", "title", "location", "priceMin", "priceMax", "status"} {
		assert.Contains(t, project, field)
	}
	assert.Equal(t, "$agent.name", project["agentName"])
}

func TestVerifiedByAgentsPipelineKeepsOrphans(t *testing.T) {
	pipeline := VerifiedByAgentsPipeline()
	assert.Len(t, pipeline, 5)

	match := stageValue(t, pipeline[0], "$match").(bson.M)
	assert.Equal(t, "verified", match["status"])

	keep := stageValue(t, pipeline[3], "$match").(bson.M)
	branches := keep["$or"].(bson.A)
	assert.Len(t, branches, 2)

	// Listings whose agent record was deleted stay visible.
	orphan := branches[0].(bson.M)
	assert.Equal(t, bson.M{"$exists": false}, orphan["agent"])

	live := branches[1].(bson.M)
	assert.Equal(t, "agent", live["agent.role"])
	assert.Equal(t, bson.M{"$ne": "fraud"}, live["agent.status"])

	// No limit stage: this view is unbounded.
	sort := stageValue(t, pipeline[4], "$sort").(bson.D)
	assert.Equal(t, "createdAt", sort[0].Key)
}
