package mongostore

import (
	"context"
	"errors"
	"time"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/models"
	"movieflix/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// refreshTokenRepository implements repository.RefreshTokenRepository using MongoDB.
type refreshTokenRepository struct {
	collection *mongo.Collection
	seq        *sequence
}

// NewRefreshTokenRepository creates a new RefreshTokenRepository.
// Expired tokens are kept until DeleteExpired runs so that callers can tell
// an expired token from an unknown one.
func NewRefreshTokenRepository(db *mongo.Database) repository.RefreshTokenRepository {
	collection := db.Collection(refreshTokensCollection)

	ensureIndexes(collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "expiresAt", Value: 1}},
		},
	})

	return &refreshTokenRepository{collection: collection, seq: newSequence(db)}
}

// Create inserts a new refresh token into the database.
func (r *refreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	id, err := r.seq.Next(ctx, refreshTokensCollection)
	if err != nil {
		return err
	}

	token.ID = id
	token.CreatedAt = time.Now().UTC()
	token.ExpiresAt = token.ExpiresAt.UTC()

	if _, err := r.collection.InsertOne(ctx, token); err != nil {
		token.ID = 0
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrRefreshTokenAlreadyExists
		}
		return err
	}
	return nil
}

// FindByToken finds a refresh token by its token string.
func (r *refreshTokenRepository) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	return r.findOne(ctx, bson.M{"token": token})
}

// FindByUserID finds the refresh token owned by a user.
func (r *refreshTokenRepository) FindByUserID(ctx context.Context, userID int64) (*models.RefreshToken, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *refreshTokenRepository) findOne(ctx context.Context, filter bson.M) (*models.RefreshToken, error) {
	var refreshToken models.RefreshToken

	err := r.collection.FindOne(ctx, filter).Decode(&refreshToken)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRefreshTokenNotFound
		}
		return nil, err
	}

	return &refreshToken, nil
}

// DeleteByToken removes a refresh token by its token string.
func (r *refreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"token": token})
	return err
}

// DeleteByUserID removes all refresh tokens for a user.
func (r *refreshTokenRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

// DeleteExpired removes tokens that expired before the given time.
func (r *refreshTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lt": before.UTC()}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
