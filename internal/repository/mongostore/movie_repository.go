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

var movieSortKeys = map[repository.MovieSortField]string{
	repository.SortByID:          "_id",
	repository.SortByReleaseYear: "releaseYear",
	repository.SortByTitle:       "title",
	repository.SortByGenre:       "genre",
	repository.SortByDirector:    "director",
	repository.SortByStudio:      "studio",
	repository.SortByPoster:      "poster",
}

// movieRepository implements repository.MovieRepository using MongoDB
type movieRepository struct {
	collection *mongo.Collection
	seq        *sequence
}

// NewMovieRepository creates a new MovieRepository
func NewMovieRepository(db *mongo.Database) repository.MovieRepository {
	collection := db.Collection(moviesCollection)

	ensureIndexes(collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "releaseYear", Value: 1}}},
	})

	return &movieRepository{collection: collection, seq: newSequence(db)}
}

// Create inserts a new movie
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	id, err := r.seq.Next(ctx, moviesCollection)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	movie.ID = id
	movie.Cast = models.UniqueCast(movie.Cast)
	movie.CreatedAt = now
	movie.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, movie); err != nil {
		movie.ID = 0
		return err
	}
	return nil
}

// FindByID finds a movie by its ID
func (r *movieRepository) FindByID(ctx context.Context, id int64) (*models.Movie, error) {
	var movie models.Movie

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, err
	}

	return &movie, nil
}

// FindAll returns every movie ordered by ID
func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	return r.find(ctx, opts)
}

// FindPage returns one page of movies and the total count
func (r *movieRepository) FindPage(ctx context.Context, page repository.PageRequest) ([]models.Movie, int64, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	key, ok := movieSortKeys[page.SortField()]
	if !ok {
		return nil, 0, apperrors.ErrInvalidSortField
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	direction := 1
	if !page.Ascending {
		direction = -1
	}
	sort := bson.D{{Key: key, Value: direction}}
	if key != "_id" {
		sort = append(sort, bson.E{Key: "_id", Value: 1})
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Size))

	movies, err := r.find(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	return movies, total, nil
}

func (r *movieRepository) find(ctx context.Context, opts *options.FindOptions) ([]models.Movie, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	movies := []models.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Update replaces the movie's fields and cast
func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	movie.Cast = models.UniqueCast(movie.Cast)
	movie.UpdatedAt = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": movie.ID}, bson.M{
		"$set": bson.M{
			"releaseYear": movie.ReleaseYear,
			"title":       movie.Title,
			"genre":       movie.Genre,
			"director":    movie.Director,
			"studio":      movie.Studio,
			"poster":      movie.Poster,
			"cast":        movie.Cast,
			"updatedAt":   movie.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrMovieNotFound
	}
	return nil
}

// Delete removes a movie
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrMovieNotFound
	}
	return nil
}
