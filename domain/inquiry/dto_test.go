package inquiry

import (
	"testing"

	"github.com/psychsphere/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToInquiryModel(t *testing.T) {
	t.Run("defaults the source when omitted", func(t *testing.T) {
		model := ToInquiryModel(&CreateInquiryRequest{
			Name:    "Jo",
			Email:   "jo@example.com",
			Message: "Hello there",
		})

		assert.Equal(t, DefaultSource, model.Source)
	})

	t.Run("keeps an explicit source", func(t *testing.T) {
		model := ToInquiryModel(&CreateInquiryRequest{
			Name:    "Jo",
			Email:   "jo@example.com",
			Message: "Hello there",
			Source:  "landing-page",
		})

		assert.Equal(t, "landing-page", model.Source)
	})

	t.Run("nil request yields nil model", func(t *testing.T) {
		assert.Nil(t, ToInquiryModel(nil))
	})
}

func TestToInquiryRecord(t *testing.T) {
	t.Run("renders the store identifier as hex", func(t *testing.T) {
		id := primitive.NewObjectID()
		record := ToInquiryRecord(&models.Inquiry{
			ID:      id,
			Name:    "Jo",
			Email:   "jo@example.com",
			Message: "Hello there",
			Source:  "website",
		})

		assert.Equal(t, id.Hex(), record.ID)
		assert.Len(t, record.ID, 24)
	})

	t.Run("zero identifier renders empty, never panics", func(t *testing.T) {
		record := ToInquiryRecord(&models.Inquiry{Name: "Jo"})
		assert.Empty(t, record.ID)
	})
}
