package tourRepo

import (
	"context"
	"fmt"
	"time"

	"aptiva/database"
	"aptiva/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTourRepo implements TourRepository using MongoDB.
type MongoTourRepo struct {
	coll *mongo.Collection
}

// NewMongoTourRepo constructs a new instance of MongoTourRepo.
func NewMongoTourRepo() TourRepository {
	db := database.MongoClient.Database("aptiva")
	return &MongoTourRepo{coll: db.Collection("tours")}
}

func (repo *MongoTourRepo) Create(rec *models.TourRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec.CreatedAt = time.Now()
	if _, err := repo.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("error inserting tour record: %w", err)
	}
	return nil
}

func (repo *MongoTourRepo) GetByID(id string) (*models.TourRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var rec models.TourRecord
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("tour %s not found", id)
		}
		return nil, fmt.Errorf("error fetching tour %s: %w", id, err)
	}
	return &rec, nil
}

func (repo *MongoTourRepo) ListUpcoming(userID string, from time.Time, daysAhead int) ([]models.TourRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	until := from.AddDate(0, 0, daysAhead)
	filter := bson.M{
		"userId": userID,
		"start":  bson.M{"$gte": from, "$lt": until},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing tours for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var recs []models.TourRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("error decoding tour records: %w", err)
	}
	return recs, nil
}

func (repo *MongoTourRepo) UpdateStatus(id string, status models.BookingStatus) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating tour %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("tour %s not found", id)
	}
	return nil
}
