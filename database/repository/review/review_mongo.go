package reviewRepo

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

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	repo := &MongoReviewRepo{coll: database.Collection("reviews")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mentorId", Value: 1}}},
		{Keys: bson.D{{Key: "studentId", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) findMany(filter bson.M, opts *options.FindOptions) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// ListByMentor returns one page of a mentor's reviews.
func (r *MongoReviewRepo) ListByMentor(mentorID string, criteria ListCriteria) ([]models.Review, error) {
	sortBy := criteria.SortBy
	if sortBy != "rating" {
		sortBy = "createdAt"
	}
	sortOrder := criteria.SortOrder
	if sortOrder != 1 {
		sortOrder = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: sortOrder}}).
		SetSkip(int64(criteria.Skip)).
		SetLimit(int64(criteria.Limit))
	return r.findMany(bson.M{"mentorId": mentorID}, opts)
}

// ListAllByMentor returns every review for a mentor.
func (r *MongoReviewRepo) ListAllByMentor(mentorID string) ([]models.Review, error) {
	return r.findMany(bson.M{"mentorId": mentorID}, nil)
}

// ListRecentByMentor returns the mentor's newest reviews, capped at limit.
func (r *MongoReviewRepo) ListRecentByMentor(mentorID string, limit int) ([]models.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.findMany(bson.M{"mentorId": mentorID}, opts)
}
