package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/overstimulation/wellness-dashboard-team-project/apperror"
	"github.com/overstimulation/wellness-dashboard-team-project/db"
	"github.com/overstimulation/wellness-dashboard-team-project/models"
)

// WeightEntryStore keeps the standalone weight journal.
type WeightEntryStore struct {
	coll *mongo.Collection
}

func NewWeightEntryStore(m *db.Mongo) *WeightEntryStore {
	return &WeightEntryStore{coll: m.Collection(db.WeightEntriesCollection)}
}

func (s *WeightEntryStore) Create(ctx context.Context, entry *models.WeightEntry) error {
	res, err := s.coll.InsertOne(ctx, entry)
	if err != nil {
		return apperror.Storage("weight entry create", err)
	}
	entry.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *WeightEntryStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.WeightEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateISO", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, apperror.Storage("weight entry list", err)
	}
	defer cursor.Close(ctx)

	entries := []models.WeightEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, apperror.Storage("weight entry decode", err)
	}
	return entries, nil
}

func (s *WeightEntryStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	if _, err := s.coll.DeleteMany(ctx, bson.M{"user": userID}); err != nil {
		return apperror.Storage("weight entry purge", err)
	}
	return nil
}
