package inquiry

import (
	"context"
	"fmt"

	"github.com/psychsphere/backend/internal/models"
	"github.com/psychsphere/backend/internal/store"
	apperrors "github.com/psychsphere/backend/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InquiryRepository interface {
	// Insert appends a new record to the inquiry collection and returns the
	// store-assigned identifier as a string.
	Insert(ctx context.Context, inquiry *models.Inquiry) (string, error)
	// List returns up to limit inquiry records, in no guaranteed order.
	List(ctx context.Context, limit int64) ([]*models.Inquiry, error)
}

type inquiryRepository struct {
	store *store.Store
}

func NewInquiryRepository(st *store.Store) InquiryRepository {
	return &inquiryRepository{store: st}
}

func (r *inquiryRepository) Insert(ctx context.Context, inquiry *models.Inquiry) (string, error) {
	if r.store == nil {
		return "", apperrors.NewDatabaseError("document store is not configured", nil)
	}

	result, err := r.store.Collection(models.InquiryCollection).InsertOne(ctx, inquiry)
	if err != nil {
		return "", apperrors.NewDatabaseError("unable to store inquiry", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}

	// Custom _id types still render as plain text.
	return fmt.Sprintf("%v", result.InsertedID), nil
}

func (r *inquiryRepository) List(ctx context.Context, limit int64) ([]*models.Inquiry, error) {
	if r.store == nil {
		return nil, apperrors.NewDatabaseError("document store is not configured", nil)
	}

	cursor, err := r.store.Collection(models.InquiryCollection).Find(ctx, bson.D{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch inquiries", err)
	}

	var inquiries []*models.Inquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, apperrors.NewDatabaseError("unable to decode inquiries", err)
	}

	return inquiries, nil
}
