package sqlstore

import (
	"context"
	"errors"
	"time"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/models"
	"movieflix/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var movieSortColumns = map[repository.MovieSortField]string{
	repository.SortByID:          "id",
	repository.SortByReleaseYear: "release_year",
	repository.SortByTitle:       "title",
	repository.SortByGenre:       "genre",
	repository.SortByDirector:    "director",
	repository.SortByStudio:      "studio",
	repository.SortByPoster:      "poster",
}

type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new MovieRepository.
func NewMovieRepository(db *gorm.DB) repository.MovieRepository {
	return &movieRepository{db: db}
}

func preloadCast(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create inserts a movie together with its cast.
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	now := time.Now().UTC()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	row := movieRow{
		ReleaseYear: movie.ReleaseYear,
		Title:       movie.Title,
		Genre:       movie.Genre,
		Director:    movie.Director,
		Studio:      movie.Studio,
		Poster:      movie.Poster,
		Cast:        toCastRows(0, movie.Cast),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}

	movie.ID = row.ID
	movie.Cast = models.UniqueCast(movie.Cast)
	return nil
}

// FindByID finds a movie by its ID.
func (r *movieRepository) FindByID(ctx context.Context, id int64) (*models.Movie, error) {
	var row movieRow
	err := r.db.WithContext(ctx).Preload("Cast", preloadCast).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

// FindAll returns every movie ordered by ID.
func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	var rows []movieRow
	err := r.db.WithContext(ctx).Preload("Cast", preloadCast).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toMovies(rows), nil
}

// FindPage returns one page of movies ordered by the requested field, with ID as tie breaker.
func (r *movieRepository) FindPage(ctx context.Context, page repository.PageRequest) ([]models.Movie, int64, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	column, ok := movieSortColumns[page.SortField()]
	if !ok {
		return nil, 0, apperrors.ErrInvalidSortField
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&movieRow{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).
		Preload("Cast", preloadCast).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: !page.Ascending})
	if column != "id" {
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}

	var rows []movieRow
	if err := query.Offset(page.Offset()).Limit(page.Size).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return toMovies(rows), total, nil
}

// Update replaces the movie's fields and cast.
func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	movie.UpdatedAt = time.Now().UTC()
	movie.Cast = models.UniqueCast(movie.Cast)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&movieRow{}).Where("id = ?", movie.ID).Updates(map[string]interface{}{
			"release_year": movie.ReleaseYear,
			"title":        movie.Title,
			"genre":        movie.Genre,
			"director":     movie.Director,
			"studio":       movie.Studio,
			"poster":       movie.Poster,
			"updated_at":   movie.UpdatedAt,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrMovieNotFound
		}

		if err := tx.Where("movie_id = ?", movie.ID).Delete(&movieCastRow{}).Error; err != nil {
			return err
		}

		cast := toCastRows(movie.ID, movie.Cast)
		if len(cast) == 0 {
			return nil
		}
		return tx.Create(&cast).Error
	})
}

// Delete removes a movie and its cast.
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&movieCastRow{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&movieRow{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrMovieNotFound
		}
		return nil
	})
}

func toMovies(rows []movieRow) []models.Movie {
	movies := make([]models.Movie, 0, len(rows))
	for _, row := range rows {
		movies = append(movies, *row.toModel())
	}
	return movies
}
