package listingRepo

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

// MongoListingRepo implements ListingRepository using MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo constructs a new instance of MongoListingRepo.
func NewMongoListingRepo() ListingRepository {
	db := database.MongoClient.Database("aptiva")
	return &MongoListingRepo{coll: db.Collection("listings")}
}

func (repo *MongoListingRepo) GetByID(id string) (*models.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var listing models.Listing
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("listing %s not found", id)
		}
		return nil, fmt.Errorf("error fetching listing %s: %w", id, err)
	}
	return &listing, nil
}

func (repo *MongoListingRepo) Search(q models.ListingQuery) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"market": models.MarketLocal}
	if q.City != "" {
		filter["city"] = q.City
	}
	if q.MaxPrice > 0 {
		filter["price"] = bson.M{"$lte": q.MaxPrice}
	}
	if q.MinBedrooms > 0 {
		filter["bedrooms"] = bson.M{"$gte": q.MinBedrooms}
	}

	limit := int64(q.Limit)
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "price", Value: 1}}).
		SetLimit(limit)

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error searching listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("error decoding listings: %w", err)
	}
	return listings, nil
}

func (repo *MongoListingRepo) Create(listing *models.Listing) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt
	if _, err := repo.coll.InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("error inserting listing: %w", err)
	}
	return nil
}

func (repo *MongoListingRepo) Update(listing *models.Listing) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	listing.UpdatedAt = time.Now()
	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": listing.ID}, listing)
	if err != nil {
		return fmt.Errorf("error updating listing %s: %w", listing.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("listing %s not found", listing.ID)
	}
	return nil
}

func (repo *MongoListingRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting listing %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("listing %s not found", id)
	}
	return nil
}
