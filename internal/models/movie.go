package models

import (
	"strings"
	"time"
)

// Movie represents a catalog entry. Poster is the stored file name.
type Movie struct {
	ID          int64     `json:"id" bson:"_id"`
	ReleaseYear int       `json:"releaseYear" bson:"releaseYear"`
	Title       string    `json:"title" bson:"title"`
	Genre       string    `json:"genre" bson:"genre"`
	Director    string    `json:"director" bson:"director"`
	Studio      string    `json:"studio" bson:"studio"`
	Poster      string    `json:"poster" bson:"poster"`
	Cast        []string  `json:"movieCast" bson:"cast"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// MovieRequest is the movie part of a create or update request.
type MovieRequest struct {
	ReleaseYear int      `json:"releaseYear" binding:"required,min=1888,max=2100" example:"2010"`
	Title       string   `json:"title" binding:"required,notblank,max=255" example:"Inception"`
	Genre       string   `json:"genre" binding:"required,notblank,max=100" example:"Sci-Fi"`
	Director    string   `json:"director" binding:"required,notblank,max=255" example:"Christopher Nolan"`
	Studio      string   `json:"studio" binding:"required,notblank,max=255" example:"Warner Bros"`
	Cast        []string `json:"movieCast" binding:"max=100,dive,notblank,max=255" example:"Leonardo DiCaprio,Elliot Page"`
}

// MovieResponse is the API representation of a movie.
type MovieResponse struct {
	MovieID     int64    `json:"movieId" example:"1"`
	ReleaseYear int      `json:"releaseYear" example:"2010"`
	Title       string   `json:"title" example:"Inception"`
	Genre       string   `json:"genre" example:"Sci-Fi"`
	Director    string   `json:"director" example:"Christopher Nolan"`
	Studio      string   `json:"studio" example:"Warner Bros"`
	Poster      string   `json:"poster" example:"inception.png"`
	PosterURL   string   `json:"posterUrl" example:"http://localhost:8080/file/inception.png"`
	Cast        []string `json:"movieCast" example:"Leonardo DiCaprio,Elliot Page"`
}

// MoviePageResponse is one page of movies. Page numbers start at zero.
type MoviePageResponse struct {
	Content       []MovieResponse `json:"content"`
	PageNumber    int             `json:"pageNumber" example:"0"`
	PageSize      int             `json:"pageSize" example:"10"`
	TotalElements int64           `json:"totalElements" example:"42"`
	TotalPages    int             `json:"totalPages" example:"5"`
	IsLast        bool            `json:"isLast" example:"false"`
}

// FileUploadResponse is returned after a poster upload.
type FileUploadResponse struct {
	FileName string `json:"fileName" example:"inception.png"`
}

// UniqueCast removes duplicate and blank names, keeping first appearance order.
func UniqueCast(cast []string) []string {
	result := make([]string, 0, len(cast))
	seen := make(map[string]struct{}, len(cast))
	for _, name := range cast {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}
