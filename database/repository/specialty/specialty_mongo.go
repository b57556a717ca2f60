package specialtyRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSpecialtyRepo implements SpecialtyRepository using MongoDB.
type MongoSpecialtyRepo struct {
	coll *mongo.Collection
}

// NewMongoSpecialtyRepo creates a new instance of SpecialtyRepository using MongoDB.
func NewMongoSpecialtyRepo() SpecialtyRepository {
	repo := &MongoSpecialtyRepo{coll: database.Collection("specialties")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSpecialtyRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoSpecialtyRepo) findOne(filter bson.M) (*models.Specialty, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var specialty models.Specialty
	if err := r.coll.FindOne(ctx, filter).Decode(&specialty); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch specialty: %w", err)
	}
	return &specialty, nil
}

// GetActiveByID retrieves an active specialty by ID.
func (r *MongoSpecialtyRepo) GetActiveByID(id string) (*models.Specialty, error) {
	return r.findOne(bson.M{"id": id, "isActive": true})
}

// GetByID retrieves a specialty regardless of active state.
func (r *MongoSpecialtyRepo) GetByID(id string) (*models.Specialty, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByName retrieves a specialty by exact name.
func (r *MongoSpecialtyRepo) GetByName(name string) (*models.Specialty, error) {
	return r.findOne(bson.M{"name": name})
}

func (r *MongoSpecialtyRepo) findMany(filter bson.M, opts *options.FindOptions) ([]models.Specialty, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialties: %w", err)
	}
	defer cursor.Close(ctx)

	var specialties []models.Specialty
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, fmt.Errorf("failed to decode specialties: %w", err)
	}
	return specialties, nil
}

// ListActive returns active specialties sorted by (category, name).
func (r *MongoSpecialtyRepo) ListActive(category string) ([]models.Specialty, error) {
	filter := bson.M{"isActive": true}
	if category != "" {
		filter["category"] = primitive.Regex{Pattern: regexp.QuoteMeta(category), Options: "i"}
	}
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	return r.findMany(filter, opts)
}

// ListActiveByIDs returns the active specialties matching the given IDs.
func (r *MongoSpecialtyRepo) ListActiveByIDs(ids []string) ([]models.Specialty, error) {
	if len(ids) == 0 {
		return []models.Specialty{}, nil
	}
	return r.findMany(bson.M{"id": bson.M{"$in": ids}, "isActive": true}, nil)
}

func adminFilter(criteria AdminListCriteria) bson.M {
	filter := bson.M{}
	if criteria.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(criteria.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"category": pattern},
		}
	}
	if criteria.IsActive != nil {
		filter["isActive"] = *criteria.IsActive
	}
	return filter
}

// ListAll returns specialties for the admin view.
func (r *MongoSpecialtyRepo) ListAll(criteria AdminListCriteria) ([]models.Specialty, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}).
		SetSkip(int64(criteria.Skip)).
		SetLimit(int64(criteria.Limit))
	return r.findMany(adminFilter(criteria), opts)
}

// CountAll counts specialties matching the admin criteria filters.
func (r *MongoSpecialtyRepo) CountAll(criteria AdminListCriteria) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, adminFilter(criteria))
	if err != nil {
		return 0, fmt.Errorf("failed to count specialties: %w", err)
	}
	return total, nil
}

// Create inserts a new specialty.
func (r *MongoSpecialtyRepo) Create(specialty *models.Specialty) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	specialty.CreatedAt = now
	specialty.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, specialty)
	if err != nil {
		return fmt.Errorf("failed to create specialty: %w", err)
	}
	return nil
}

// Update modifies an existing specialty.
func (r *MongoSpecialtyRepo) Update(specialty *models.Specialty) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	specialty.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": specialty.ID}, bson.M{"$set": specialty})
	if err != nil {
		return fmt.Errorf("failed to update specialty with id %s: %w", specialty.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("specialty with id %s not found", specialty.ID)
	}
	return nil
}

// Delete removes a specialty permanently.
func (r *MongoSpecialtyRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete specialty with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("specialty with id %s not found", id)
	}
	return nil
}
