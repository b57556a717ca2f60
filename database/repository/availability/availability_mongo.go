// File: database/repository/availability/availability_mongo.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"mentorhub/database"
	"mentorhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWeeklySlotStore implements WeeklySlotStore using MongoDB.
type MongoWeeklySlotStore struct {
	coll *mongo.Collection
}

// NewMongoWeeklySlotStore creates a new WeeklySlotStore backed by MongoDB.
func NewMongoWeeklySlotStore() WeeklySlotStore {
	repo := &MongoWeeklySlotStore{coll: database.Collection("availability")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for the (mentorId, dayOfWeek) and
// (mentorId, isActive) query paths.
func (r *MongoWeeklySlotStore) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "mentorId", Value: 1}, {Key: "dayOfWeek", Value: 1}}},
		{Keys: bson.D{{Key: "mentorId", Value: 1}, {Key: "isActive", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// FindByMentor returns the mentor's weekly slots sorted by (dayOfWeek, startTime).
func (r *MongoWeeklySlotStore) FindByMentor(ctx context.Context, mentorID string, activeOnly bool) ([]models.WeeklySlot, error) {
	filter := bson.M{"mentorId": mentorID}
	if activeOnly {
		filter["isActive"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for mentor %s: %w", mentorID, err)
	}
	defer cursor.Close(ctx)

	slots := []models.WeeklySlot{}
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode availability for mentor %s: %w", mentorID, err)
	}
	return slots, nil
}

// ReplaceAll swaps the mentor's entire slot set inside a transaction so the
// delete-then-insert pair is never observed half-applied.
func (r *MongoWeeklySlotStore) ReplaceAll(ctx context.Context, mentorID string, slots []models.WeeklySlot) ([]models.WeeklySlot, error) {
	now := time.Now()
	docs := make([]interface{}, 0, len(slots))
	for i := range slots {
		if slots[i].ID == "" {
			slots[i].ID = uuid.New().String()
		}
		slots[i].MentorID = mentorID
		slots[i].CreatedAt = now
		slots[i].UpdatedAt = now
		docs = append(docs, slots[i])
	}

	session, err := r.coll.Database().Client().StartSession()
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.coll.DeleteMany(sc, bson.M{"mentorId": mentorID}); err != nil {
			return nil, fmt.Errorf("failed to clear availability for mentor %s: %w", mentorID, err)
		}
		if len(docs) == 0 {
			return nil, nil
		}
		if _, err := r.coll.InsertMany(sc, docs); err != nil {
			return nil, fmt.Errorf("failed to insert availability for mentor %s: %w", mentorID, err)
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return slots, nil
}
