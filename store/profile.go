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

// ProfileStore persists the per-user biometric profile.
type ProfileStore struct {
	coll *mongo.Collection
}

func NewProfileStore(m *db.Mongo) *ProfileStore {
	return &ProfileStore{coll: m.Collection(db.ProfilesCollection)}
}

func (s *ProfileStore) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.coll.FindOne(ctx, bson.M{"user": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("profile", userID.Hex())
		}
		return nil, apperror.Storage("profile lookup", err)
	}
	return &profile, nil
}

// Upsert merges the supplied profile fields into the user's document,
// creating it when absent, and returns the merged result.
func (s *ProfileStore) Upsert(ctx context.Context, userID primitive.ObjectID, fields bson.M) (*models.UserProfile, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	change := bson.M{"$set": fields}

	var profile models.UserProfile
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"user": userID}, change, opts).Decode(&profile)
	if err != nil {
		return nil, apperror.Storage("profile upsert", err)
	}
	return &profile, nil
}

func (s *ProfileStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	if _, err := s.coll.DeleteMany(ctx, bson.M{"user": userID}); err != nil {
		return apperror.Storage("profile delete", err)
	}
	return nil
}
