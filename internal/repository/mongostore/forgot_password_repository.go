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

type forgotPasswordRepository struct {
	collection *mongo.Collection
	seq        *sequence
}

// NewForgotPasswordRepository creates a new ForgotPasswordRepository.
func NewForgotPasswordRepository(db *mongo.Database) repository.ForgotPasswordRepository {
	collection := db.Collection(forgotPasswordsCollection)

	ensureIndexes(collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "otp", Value: 1}, {Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "expiresAt", Value: 1}}},
	})

	return &forgotPasswordRepository{collection: collection, seq: newSequence(db)}
}

func (r *forgotPasswordRepository) Create(ctx context.Context, fp *models.ForgotPassword) error {
	id, err := r.seq.Next(ctx, forgotPasswordsCollection)
	if err != nil {
		return err
	}

	fp.ID = id
	fp.CreatedAt = time.Now().UTC()
	fp.ExpiresAt = fp.ExpiresAt.UTC()

	if _, err := r.collection.InsertOne(ctx, fp); err != nil {
		fp.ID = 0
		return err
	}
	return nil
}

// FindByOTPAndUserID returns the newest record matching the code and user.
func (r *forgotPasswordRepository) FindByOTPAndUserID(ctx context.Context, otp int, userID int64) (*models.ForgotPassword, error) {
	var fp models.ForgotPassword

	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{"otp": otp, "userId": userID}, opts).Decode(&fp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOtpInvalid
		}
		return nil, err
	}

	return &fp, nil
}

func (r *forgotPasswordRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *forgotPasswordRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

func (r *forgotPasswordRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lt": before.UTC()}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
