package clientRepo

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

// MongoClientProfileRepo implements ClientProfileRepository using MongoDB.
type MongoClientProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoClientProfileRepo creates a new instance of ClientProfileRepository using MongoDB.
func NewMongoClientProfileRepo() ClientProfileRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("client_profiles")
	repo := &MongoClientProfileRepo{coll: coll}

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
func (r *MongoClientProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a client profile by its unique ID.
func (r *MongoClientProfileRepo) GetByID(id string) (*models.ClientProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.ClientProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to fetch client profile with id %s: %w", id, err)
	}
	return &profile, nil
}

// Upsert inserts or replaces a client profile document.
func (r *MongoClientProfileRepo) Upsert(profile *models.ClientProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": profile.ID}, profile, opts); err != nil {
		return fmt.Errorf("failed to upsert client profile with id %s: %w", profile.ID, err)
	}
	return nil
}

// Delete removes a client profile document by its ID.
func (r *MongoClientProfileRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete client profile with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("client profile with id %s not found", id)
	}
	return nil
}
