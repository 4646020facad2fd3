// Package mongostore implements the repository interfaces on MongoDB.
package mongostore

import (
	"context"
	"time"

	"movieflix/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	usersCollection           = "users"
	refreshTokensCollection   = "refresh_tokens"
	forgotPasswordsCollection = "forgot_passwords"
	moviesCollection          = "movies"
	countersCollection        = "counters"
)

// NewStore returns all repositories backed by db.
func NewStore(db *mongo.Database) *repository.Store {
	return &repository.Store{
		Users:           NewUserRepository(db),
		RefreshTokens:   NewRefreshTokenRepository(db),
		ForgotPasswords: NewForgotPasswordRepository(db),
		Movies:          NewMovieRepository(db),
	}
}

// sequence hands out increasing int64 IDs per collection from the counters collection.
type sequence struct {
	collection *mongo.Collection
}

func newSequence(db *mongo.Database) *sequence {
	return &sequence{collection: db.Collection(countersCollection)}
}

type counter struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}

// Next returns the next ID for name, starting at 1.
func (s *sequence) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counter
	err := s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, err
	}
	return c.Seq, nil
}

// ensureIndexes creates the given indexes, ignoring failures.
func ensureIndexes(collection *mongo.Collection, indexes []mongo.IndexModel) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
