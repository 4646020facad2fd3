package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/models"
	"movieflix/internal/queue"
	"movieflix/internal/repository"
	"movieflix/internal/storage"
)

// MovieService handles business logic for the movie catalog.
type MovieService struct {
	movieRepo repository.MovieRepository
	storage   storage.Storage
	deletes   queue.Queue
	baseURL   string
}

// MovieServiceConfig holds configuration for MovieService.
type MovieServiceConfig struct {
	MovieRepo repository.MovieRepository
	Storage   storage.Storage
	// DeleteQueue receives replaced posters. Nil deletes them inline.
	DeleteQueue queue.Queue
	// BaseURL prefixes poster URLs, without trailing slash.
	BaseURL string
}

// NewMovieService creates a new MovieService.
func NewMovieService(cfg MovieServiceConfig) *MovieService {
	return &MovieService{
		movieRepo: cfg.MovieRepo,
		storage:   cfg.Storage,
		deletes:   cfg.DeleteQueue,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// AddMovie stores the poster and the movie. The file name must be unused;
// this is checked before anything is written.
func (s *MovieService) AddMovie(ctx context.Context, req *models.MovieRequest, poster *Upload) (*models.MovieResponse, error) {
	name, err := s.storeNewPoster(ctx, poster)
	if err != nil {
		return nil, err
	}

	movie := &models.Movie{Poster: name}
	applyMovieRequest(movie, req)

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		s.deletePoster(ctx, name)
		return nil, err
	}

	return s.toResponse(movie), nil
}

// GetMovie returns one movie.
func (s *MovieService) GetMovie(ctx context.Context, id int64) (*models.MovieResponse, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(movie), nil
}

// GetAllMovies returns every movie.
func (s *MovieService) GetAllMovies(ctx context.Context) ([]models.MovieResponse, error) {
	movies, err := s.movieRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(movies), nil
}

// GetMoviesPage returns one page ordered by movie ID.
func (s *MovieService) GetMoviesPage(ctx context.Context, pageNumber, pageSize int) (*models.MoviePageResponse, error) {
	return s.page(ctx, repository.PageRequest{
		Number:    pageNumber,
		Size:      pageSize,
		SortBy:    repository.SortByID,
		Ascending: true,
	})
}

// GetMoviesPageSorted returns one page ordered by sortBy. dir "asc" in any
// case sorts ascending, anything else descending.
func (s *MovieService) GetMoviesPageSorted(ctx context.Context, pageNumber, pageSize int, sortBy, dir string) (*models.MoviePageResponse, error) {
	return s.page(ctx, repository.PageRequest{
		Number:    pageNumber,
		Size:      pageSize,
		SortBy:    repository.MovieSortField(sortBy),
		Ascending: strings.EqualFold(dir, "asc"),
	})
}

func (s *MovieService) page(ctx context.Context, page repository.PageRequest) (*models.MoviePageResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	movies, total, err := s.movieRepo.FindPage(ctx, page)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(page.Size)))

	return &models.MoviePageResponse{
		Content:       s.toResponses(movies),
		PageNumber:    page.Number,
		PageSize:      page.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		IsLast:        page.Number+1 >= totalPages,
	}, nil
}

// UpdateMovie replaces the movie's fields. With a poster, the new file is
// stored before the record changes and the old file is removed afterwards.
func (s *MovieService) UpdateMovie(ctx context.Context, id int64, req *models.MovieRequest, poster *Upload) (*models.MovieResponse, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldPoster := movie.Poster
	newPoster := oldPoster

	if poster != nil {
		name, err := SanitizeFileName(poster.FileName)
		if err != nil {
			return nil, err
		}

		if name == oldPoster {
			if err := s.storage.Save(ctx, name, poster.Content, poster.ContentType); err != nil {
				return nil, err
			}
		} else if name, err = s.storeNewPoster(ctx, poster); err != nil {
			return nil, err
		}
		newPoster = name
	}

	applyMovieRequest(movie, req)
	movie.Poster = newPoster

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		if newPoster != oldPoster {
			s.deletePoster(ctx, newPoster)
		}
		return nil, err
	}

	if newPoster != oldPoster {
		s.deletePoster(ctx, oldPoster)
	}

	return s.toResponse(movie), nil
}

// DeleteMovie removes the movie and its poster.
func (s *MovieService) DeleteMovie(ctx context.Context, id int64) (string, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.storage.Delete(ctx, movie.Poster); err != nil {
		return "", err
	}

	if err := s.movieRepo.Delete(ctx, id); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s with ID = %d has been successfully deleted!", movie.Title, id), nil
}

// storeNewPoster saves a poster under a name that must not be taken yet.
func (s *MovieService) storeNewPoster(ctx context.Context, poster *Upload) (string, error) {
	if poster == nil {
		return "", apperrors.ErrInvalidFileName
	}

	name, err := SanitizeFileName(poster.FileName)
	if err != nil {
		return "", err
	}

	exists, err := s.storage.Exists(ctx, name)
	if err != nil {
		return "", err
	}
	if exists {
		return "", apperrors.ErrFileAlreadyExists
	}

	if err := s.storage.Save(ctx, name, poster.Content, poster.ContentType); err != nil {
		return "", err
	}
	return name, nil
}

func (s *MovieService) deletePoster(ctx context.Context, name string) {
	if s.deletes != nil {
		err := s.deletes.Enqueue(queue.DeleteJob{FileName: name})
		if err == nil {
			return
		}
		log.Printf("Failed to queue poster %s for deletion: %v", name, err)
	}
	if err := s.storage.Delete(ctx, name); err != nil {
		log.Printf("Failed to delete poster %s: %v", name, err)
	}
}

func (s *MovieService) posterURL(name string) string {
	return s.baseURL + "/file/" + name
}

func (s *MovieService) toResponse(movie *models.Movie) *models.MovieResponse {
	cast := movie.Cast
	if cast == nil {
		cast = []string{}
	}
	return &models.MovieResponse{
		MovieID:     movie.ID,
		ReleaseYear: movie.ReleaseYear,
		Title:       movie.Title,
		Genre:       movie.Genre,
		Director:    movie.Director,
		Studio:      movie.Studio,
		Poster:      movie.Poster,
		PosterURL:   s.posterURL(movie.Poster),
		Cast:        cast,
	}
}

func (s *MovieService) toResponses(movies []models.Movie) []models.MovieResponse {
	responses := make([]models.MovieResponse, 0, len(movies))
	for i := range movies {
		responses = append(responses, *s.toResponse(&movies[i]))
	}
	return responses
}

func applyMovieRequest(movie *models.Movie, req *models.MovieRequest) {
	movie.ReleaseYear = req.ReleaseYear
	movie.Title = strings.TrimSpace(req.Title)
	movie.Genre = strings.TrimSpace(req.Genre)
	movie.Director = strings.TrimSpace(req.Director)
	movie.Studio = strings.TrimSpace(req.Studio)
	movie.Cast = models.UniqueCast(req.Cast)
}
