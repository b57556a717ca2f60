package mentorRepo

import (
	"context"
	"fmt"
	"time"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMentorRepo implements MentorRepository using MongoDB.
type MongoMentorRepo struct {
	coll *mongo.Collection
}

// NewMongoMentorRepo creates a new instance of MentorRepository using MongoDB.
func NewMongoMentorRepo() MentorRepository {
	repo := &MongoMentorRepo{coll: database.Collection("mentors")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoMentorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialties", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
		{Keys: bson.D{{Key: "isApproved", Value: 1}, {Key: "isActive", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// visibleFilter restricts a filter to approved, active mentors.
func visibleFilter(extra bson.M) bson.M {
	filter := bson.M{"isApproved": true, "isActive": true}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

func (r *MongoMentorRepo) findOne(filter bson.M) (*models.Mentor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var mentor models.Mentor
	if err := r.coll.FindOne(ctx, filter).Decode(&mentor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch mentor: %w", err)
	}
	return &mentor, nil
}

// GetByID retrieves a mentor by its unique ID.
func (r *MongoMentorRepo) GetByID(id string) (*models.Mentor, error) {
	return r.findOne(bson.M{"id": id})
}

// GetApprovedByID retrieves an approved, active mentor by ID.
func (r *MongoMentorRepo) GetApprovedByID(id string) (*models.Mentor, error) {
	return r.findOne(visibleFilter(bson.M{"id": id}))
}

// GetByUserID retrieves the mentor profile owned by a user.
func (r *MongoMentorRepo) GetByUserID(userID string) (*models.Mentor, error) {
	return r.findOne(bson.M{"userId": userID})
}

func listFilter(criteria ListCriteria) bson.M {
	extra := bson.M{}
	if criteria.SpecialtyID != "" {
		extra["specialties"] = criteria.SpecialtyID
	}
	return visibleFilter(extra)
}

// List returns approved, active mentors matching the criteria.
func (r *MongoMentorRepo) List(criteria ListCriteria) ([]models.Mentor, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	sortBy := criteria.SortBy
	if !AllowedSortFields[sortBy] {
		sortBy = "rating"
	}
	sortOrder := criteria.SortOrder
	if sortOrder != 1 {
		sortOrder = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: sortOrder}}).
		SetSkip(int64(criteria.Skip)).
		SetLimit(int64(criteria.Limit))

	cursor, err := r.coll.Find(ctx, listFilter(criteria), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	defer cursor.Close(ctx)

	var mentors []models.Mentor
	if err := cursor.All(ctx, &mentors); err != nil {
		return nil, fmt.Errorf("failed to decode mentors: %w", err)
	}
	return mentors, nil
}

// Count counts approved, active mentors matching the criteria filters.
func (r *MongoMentorRepo) Count(criteria ListCriteria) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, listFilter(criteria))
	if err != nil {
		return 0, fmt.Errorf("failed to count mentors: %w", err)
	}
	return total, nil
}

// ListFeatured returns top-rated mentors, best first.
func (r *MongoMentorRepo) ListFeatured(limit int) ([]models.Mentor, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := visibleFilter(bson.M{
		"rating":        bson.M{"$gte": 4},
		"totalSessions": bson.M{"$gte": 1},
	})
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "totalSessions", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured mentors: %w", err)
	}
	defer cursor.Close(ctx)

	var mentors []models.Mentor
	if err := cursor.All(ctx, &mentors); err != nil {
		return nil, fmt.Errorf("failed to decode mentors: %w", err)
	}
	return mentors, nil
}

// ListPending returns mentors awaiting approval, oldest first.
func (r *MongoMentorRepo) ListPending() ([]models.Mentor, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"isApproved": false, "isActive": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending mentors: %w", err)
	}
	defer cursor.Close(ctx)

	var mentors []models.Mentor
	if err := cursor.All(ctx, &mentors); err != nil {
		return nil, fmt.Errorf("failed to decode mentors: %w", err)
	}
	return mentors, nil
}

// CountBySpecialty counts approved, active mentors offering a specialty.
func (r *MongoMentorRepo) CountBySpecialty(specialtyID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, visibleFilter(bson.M{"specialties": specialtyID}))
	if err != nil {
		return 0, fmt.Errorf("failed to count mentors for specialty %s: %w", specialtyID, err)
	}
	return total, nil
}

// Create inserts a new mentor profile.
func (r *MongoMentorRepo) Create(mentor *models.Mentor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	mentor.CreatedAt = now
	mentor.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, mentor)
	if err != nil {
		return fmt.Errorf("failed to create mentor: %w", err)
	}
	return nil
}

// Update modifies an existing mentor profile.
func (r *MongoMentorRepo) Update(mentor *models.Mentor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	mentor.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": mentor.ID}, bson.M{"$set": mentor})
	if err != nil {
		return fmt.Errorf("failed to update mentor with id %s: %w", mentor.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("mentor with id %s not found", mentor.ID)
	}
	return nil
}

// SetApproved flips the approval flag on a mentor profile.
func (r *MongoMentorRepo) SetApproved(id string, approved bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isApproved": approved, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update approval for mentor %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("mentor with id %s not found", id)
	}
	return nil
}
