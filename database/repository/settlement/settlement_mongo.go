package settlementRepo

import (
	"context"
	"fmt"
	"time"

	"nestcare/database"
	"nestcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSettlementRepo implements SettlementRepository using MongoDB.
type MongoSettlementRepo struct {
	coll *mongo.Collection
}

// NewMongoSettlementRepo creates a new instance of SettlementRepository using MongoDB.
func NewMongoSettlementRepo() SettlementRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("settlements")
	repo := &MongoSettlementRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoSettlementRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "recorded_at", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new settlement record.
func (r *MongoSettlementRepo) Create(record *models.SettlementRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to create settlement record: %w", err)
	}
	return nil
}

// GetByBookingID retrieves the settlement record for a booking.
func (r *MongoSettlementRepo) GetByBookingID(bookingID string) (*models.SettlementRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var record models.SettlementRecord
	if err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to fetch settlement for booking %s: %w", bookingID, err)
	}
	return &record, nil
}

// TotalAdminRevenue sums platform revenue recorded since the given time.
func (r *MongoSettlementRepo) TotalAdminRevenue(since time.Time) (float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"recorded_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$admin_total_revenue"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate settlements: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("failed to decode settlement aggregate: %w", err)
		}
	}
	return result.Total, nil
}
