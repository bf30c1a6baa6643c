package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/overstimulation/wellness-dashboard-team-project/apperror"
	"github.com/overstimulation/wellness-dashboard-team-project/db"
	"github.com/overstimulation/wellness-dashboard-team-project/models"
)

// UserStore handles account documents, including the streak fields.
type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(m *db.Mongo) *UserStore {
	return &UserStore{coll: m.Collection(db.UsersCollection)}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("user", "email already registered")
		}
		return apperror.Storage("user create", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("user", id.Hex())
		}
		return nil, apperror.Storage("user lookup", err)
	}
	return &user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("user", email)
		}
		return nil, apperror.Storage("user lookup", err)
	}
	return &user, nil
}

// SetProfileID links a profile document to the user.
func (s *UserStore) SetProfileID(ctx context.Context, userID, profileID primitive.ObjectID) error {
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"profile": profileID}})
	if err != nil {
		return apperror.Storage("user profile link", err)
	}
	return nil
}

// UpdateStreakIf writes the new streak state only if the user's lastLogDate
// still equals priorLastLogDate. The condition makes the read-evaluate-write
// cycle an optimistic single conditional update: a concurrent submission
// that advanced the streak first causes this write to miss, and the caller
// re-reads and re-evaluates.
func (s *UserStore) UpdateStreakIf(ctx context.Context, userID primitive.ObjectID, priorLastLogDate string, streak int, lastLogDate string) (bool, error) {
	filter := bson.M{"_id": userID}
	if priorLastLogDate == "" {
		filter["$or"] = []bson.M{
			{"lastLogDate": bson.M{"$exists": false}},
			{"lastLogDate": ""},
		}
	} else {
		filter["lastLogDate"] = priorLastLogDate
	}

	update := bson.M{"$set": bson.M{"streak": streak, "lastLogDate": lastLogDate}}
	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, apperror.Storage("streak update", err)
	}
	return res.MatchedCount == 1, nil
}

// Delete removes the account document.
func (s *UserStore) Delete(ctx context.Context, userID primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return apperror.Storage("user delete", err)
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("user", userID.Hex())
	}
	return nil
}

// DeleteByEmail removes an account by email, ignoring absence. Used by the
// demo seeder to reset the demo user.
func (s *UserStore) DeleteByEmail(ctx context.Context, email string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"email": email}); err != nil {
		return apperror.Storage("user delete", err)
	}
	return nil
}
