package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/overstimulation/wellness-dashboard-team-project/apperror"
	"github.com/overstimulation/wellness-dashboard-team-project/db"
	"github.com/overstimulation/wellness-dashboard-team-project/models"
)

// DailyLogStore persists one log document per (user, date). The unique
// compound index created at startup backs the upsert semantics.
type DailyLogStore struct {
	coll *mongo.Collection
}

func NewDailyLogStore(m *db.Mongo) *DailyLogStore {
	return &DailyLogStore{coll: m.Collection(db.DailyLogsCollection)}
}

// Upsert merges the supplied fields into the (user, date) document, creating
// it when absent. The whole merge is a single FindOneAndUpdate, so two
// concurrent submissions for the same day converge to one record with
// last-write-wins per field.
func (s *DailyLogStore) Upsert(ctx context.Context, userID primitive.ObjectID, date string, update models.DailyLogUpdate) (*models.DailyLog, error) {
	now := time.Now()

	set := bson.M{"updatedAt": now}
	if update.DisplayDate != "" {
		set["displayDate"] = update.DisplayDate
	}
	if update.Weight != nil {
		set["weight"] = *update.Weight
	}
	if update.Calories != nil {
		set["calories"] = *update.Calories
	}
	if update.Water != nil {
		set["water"] = *update.Water
	}
	if update.Mood != nil {
		set["mood"] = *update.Mood
	}
	if update.Sleep != nil {
		set["sleep"] = *update.Sleep
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}

	filter := bson.M{"user": userID, "date": date}
	change := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var entry models.DailyLog
	if err := s.coll.FindOneAndUpdate(ctx, filter, change, opts).Decode(&entry); err != nil {
		return nil, apperror.Storage("daily log upsert", err)
	}
	return &entry, nil
}

// ListByUser returns all of a user's logs, newest date first.
func (s *DailyLogStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.DailyLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, apperror.Storage("daily log list", err)
	}
	defer cursor.Close(ctx)

	entries := []models.DailyLog{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, apperror.Storage("daily log decode", err)
	}
	return entries, nil
}

// Delete removes one entry by id.
func (s *DailyLogStore) Delete(ctx context.Context, entryID primitive.ObjectID) (*models.DailyLog, error) {
	var deleted models.DailyLog
	err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": entryID}).Decode(&deleted)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("daily log", entryID.Hex())
		}
		return nil, apperror.Storage("daily log delete", err)
	}
	return &deleted, nil
}

// DeleteByUser removes all of a user's logs (account deletion).
func (s *DailyLogStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	if _, err := s.coll.DeleteMany(ctx, bson.M{"user": userID}); err != nil {
		return apperror.Storage("daily log purge", err)
	}
	return nil
}
