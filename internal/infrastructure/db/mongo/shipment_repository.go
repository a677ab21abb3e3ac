package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
	"github.com/dqexpress/courier-tracking/internal/core/ports"
)

const collectionShipments = "shipments"

// publicProjection is the restricted column set exposed to anonymous
// tracking lookups, mirroring the store's public tracking procedure.
// Coordinates and anything added later stay internal.
var publicProjection = bson.M{
	"_id":        1,
	"status":     1,
	"location":   1,
	"created_at": 1,
	"updated_at": 1,
}

type ShipmentRepository struct {
	col *mongo.Collection
}

func NewShipmentRepository(db *mongo.Database) *ShipmentRepository {
	return &ShipmentRepository{col: db.Collection(collectionShipments)}
}

// Create inserts a new shipment document. The tracking identifier is the
// document key, so a duplicate insert fails on the unique _id constraint.
func (r *ShipmentRepository) Create(ctx context.Context, s *domain.Shipment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateShipment
		}
		return err
	}
	return nil
}

// FindByID retrieves the full shipment record.
func (r *ShipmentRepository) FindByID(ctx context.Context, id string) (*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Shipment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindPublic retrieves a shipment through the restricted public projection.
func (r *ShipmentRepository) FindPublic(ctx context.Context, id string) (*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetProjection(publicProjection)

	var s domain.Shipment
	err := r.col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns a page of shipments ordered by creation time descending and
// the total count of matches.
func (r *ShipmentRepository) List(ctx context.Context, filter ports.ListShipmentsFilter) ([]*domain.Shipment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := int64(filter.Page-1) * int64(filter.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []*domain.Shipment
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update patches status and/or location and bumps updated_at, returning the
// document as it is after the update.
func (r *ShipmentRepository) Update(ctx context.Context, id string, patch ports.ShipmentPatch) (*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var s domain.Shipment
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Delete removes a shipment by id.
func (r *ShipmentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrShipmentNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the shipments collection.
// _id is unique by construction; the status/created_at index backs the
// dashboard list query.
func (r *ShipmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
