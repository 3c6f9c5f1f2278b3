package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrarifat21/bashabari-server-side/models"
)

func validProperty() models.Property {
	return models.Property{
		Title:      "Lakeside Apartment",
		Location:   "Dhanmondi, Dhaka",
		Image:      "https://example.com/lakeside.jpg",
		PriceMin:   120000,
		PriceMax:   150000,
		AgentName:  "Rahim Uddin",
		AgentEmail: "rahim@example.com",
	}
}

func TestPropertyValidationPasses(t *testing.T) {
	assert.NoError(t, ValidateStruct(validProperty()))
}

func TestPropertyValidationRequiresEveryField(t *testing.T) {
	cases := map[string]func(*models.Property){
		"title":      func(p *models.Property) { p.Title = "" },
		"location":   func(p *models.Property) { p.Location = "" },
		"image":      func(p *models.Property) { p.Image = "" },
		"priceMin":   func(p *models.Property) { p.PriceMin = 0 },
		"priceMax":   func(p *models.Property) { p.PriceMax = 0 },
		"agentName":  func(p *models.Property) { p.AgentName = "" },
		"agentEmail": func(p *models.Property) { p.AgentEmail = "" },
	}

	for field, clear := range cases {
		t.Run(field, func(t *testing.T) {
			p := validProperty()
			clear(&p)
			err := ValidateStruct(p)
			assert.Error(t, err)

			details := GetValidationErrors(err)
			assert.NotEmpty(t, details)
			assert.Equal(t, "required", details[0].Tag)
		})
	}
}

func TestPropertyValidationRejectsBadAgentEmail(t *testing.T) {
	p := validProperty()
	p.AgentEmail = "not-an-email"
	assert.Error(t, ValidateStruct(p))
}

func TestRoleUpdateValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(models.RoleUpdateRequest{Role: "agent"}))
	assert.NoError(t, ValidateStruct(models.RoleUpdateRequest{Role: "admin"}))
	assert.Error(t, ValidateStruct(models.RoleUpdateRequest{Role: "superuser"}))
	assert.Error(t, ValidateStruct(models.RoleUpdateRequest{}))
}

func TestStatusUpdateValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(models.StatusUpdateRequest{Status: "verified"}))
	assert.NoError(t, ValidateStruct(models.StatusUpdateRequest{Status: "fraud-removed"}))
	assert.Error(t, ValidateStruct(models.StatusUpdateRequest{Status: "approved"}))
}

func TestOfferWithinRange(t *testing.T) {
	assert.False(t, OfferWithinRange(99999, 100000, 150000))
	assert.True(t, OfferWithinRange(100000, 100000, 150000))
	assert.True(t, OfferWithinRange(125000, 100000, 150000))
	assert.True(t, OfferWithinRange(150000, 100000, 150000))
	assert.False(t, OfferWithinRange(150001, 100000, 150000))
}
