package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"path"
	"strconv"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/models"
	"movieflix/internal/service"
	"movieflix/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Multipart form fields of movie create and update requests
const (
	formFieldFile  = "file"
	formFieldMovie = "movie"
)

// DefaultMaxUploadSize bounds multipart request bodies when no limit is configured.
const DefaultMaxUploadSize int64 = 10 << 20

// MovieHandler handles HTTP requests for movie operations.
type MovieHandler struct {
	service       service.MovieServicer
	maxUploadSize int64
}

// NewMovieHandler creates a new MovieHandler. A maxUploadSize of zero uses
// DefaultMaxUploadSize.
func NewMovieHandler(service service.MovieServicer, maxUploadSize int64) *MovieHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &MovieHandler{service: service, maxUploadSize: maxUploadSize}
}

// pageQuery holds the paging parameters of list requests.
type pageQuery struct {
	PageNumber int    `form:"pageNumber,default=0" binding:"min=0"`
	PageSize   int    `form:"pageSize,default=10" binding:"min=1,max=100"`
	SortBy     string `form:"sortBy,default=movieId"`
	Dir        string `form:"dir,default=asc"`
}

// AddMovie godoc
// @Summary      Add a movie
// @Description  Create a movie with its poster. The poster file name must not be in use.
// @Tags         movies
// @Accept       multipart/form-data
// @Produce      json
// @Param        file   formData  file    true  "Poster image"
// @Param        movie  formData  string  true  "Movie as JSON (models.MovieRequest)"
// @Success      201    {object}  response.Response{data=models.MovieResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /movies [post]
func (h *MovieHandler) AddMovie(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	req, ok := h.bindMovieRequest(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile(formFieldFile)
	if err != nil {
		response.BadRequest(c, "poster file is required")
		return
	}

	poster, closeFile, err := openUpload(fileHeader)
	if err != nil {
		response.BadRequest(c, "failed to read poster file")
		return
	}
	defer closeFile()

	result, err := h.service.AddMovie(c.Request.Context(), req, poster)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, result)
}

// GetMovie godoc
// @Summary      Get movie by ID
// @Tags         movies
// @Produce      json
// @Param        id   path      int  true  "Movie ID"
// @Success      200  {object}  response.Response{data=models.MovieResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *gin.Context) {
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	result, err := h.service.GetMovie(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// GetAllMovies godoc
// @Summary      List all movies
// @Tags         movies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.MovieResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /movies [get]
func (h *MovieHandler) GetAllMovies(c *gin.Context) {
	result, err := h.service.GetAllMovies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// GetMoviesPage godoc
// @Summary      List movies by page
// @Description  Zero-based pages ordered by movie ID
// @Tags         movies
// @Produce      json
// @Param        pageNumber  query     int  false  "Page number"  default(0)
// @Param        pageSize    query     int  false  "Page size"    default(10)
// @Success      200         {object}  response.Response{data=models.MoviePageResponse}
// @Failure      400         {object}  response.Response
// @Failure      401         {object}  response.Response
// @Security     BearerAuth
// @Router       /movies/pages [get]
func (h *MovieHandler) GetMoviesPage(c *gin.Context) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.GetMoviesPage(c.Request.Context(), q.PageNumber, q.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// GetMoviesPageSorted godoc
// @Summary      List sorted movies by page
// @Description  dir "asc" sorts ascending, any other value descending
// @Tags         movies
// @Produce      json
// @Param        pageNumber  query     int     false  "Page number"  default(0)
// @Param        pageSize    query     int     false  "Page size"    default(10)
// @Param        sortBy      query     string  false  "Sort field"   Enums(movieId, releaseYear, title, genre, director, studio, poster)  default(movieId)
// @Param        dir         query     string  false  "Direction"    default(asc)
// @Success      200         {object}  response.Response{data=models.MoviePageResponse}
// @Failure      400         {object}  response.Response
// @Failure      401         {object}  response.Response
// @Security     BearerAuth
// @Router       /movies/pages/sorted [get]
func (h *MovieHandler) GetMoviesPageSorted(c *gin.Context) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.GetMoviesPageSorted(c.Request.Context(), q.PageNumber, q.PageSize, q.SortBy, q.Dir)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateMovie godoc
// @Summary      Update a movie
// @Description  Replace the movie's fields. A new poster file is optional.
// @Tags         movies
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      int     true   "Movie ID"
// @Param        file   formData  file    false  "New poster image"
// @Param        movie  formData  string  true   "Movie as JSON (models.MovieRequest)"
// @Success      200    {object}  response.Response{data=models.MovieResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Security     BearerAuth
// @Router       /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	req, ok := h.bindMovieRequest(c)
	if !ok {
		return
	}

	var poster *service.Upload
	fileHeader, err := c.FormFile(formFieldFile)
	switch {
	case err == nil:
		upload, closeFile, err := openUpload(fileHeader)
		if err != nil {
			response.BadRequest(c, "failed to read poster file")
			return
		}
		defer closeFile()
		poster = upload
	case !errors.Is(err, http.ErrMissingFile):
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateMovie(c.Request.Context(), id, req, poster)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteMovie godoc
// @Summary      Delete a movie
// @Description  Remove the movie and its poster file
// @Tags         movies
// @Produce      json
// @Param        id   path      int  true  "Movie ID"
// @Success      200  {object}  response.Response{data=models.MessageResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	msg, err := h.service.DeleteMovie(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, models.MessageResponse{Message: msg})
}

// bindMovieRequest decodes and validates the JSON movie form field.
func (h *MovieHandler) bindMovieRequest(c *gin.Context) (*models.MovieRequest, bool) {
	raw := c.PostForm(formFieldMovie)
	if raw == "" {
		response.BadRequest(c, "movie field is required")
		return nil, false
	}

	var req models.MovieRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		response.BadRequest(c, "invalid movie json: "+err.Error())
		return nil, false
	}

	if err := binding.Validator.ValidateStruct(&req); err != nil {
		response.BadRequest(c, err.Error())
		return nil, false
	}

	return &req, true
}

func movieIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, apperrors.ErrInvalidMovieID.Error())
		return 0, false
	}
	return id, true
}

// openUpload opens a multipart file as a service upload. The returned
// function closes the file.
func openUpload(fileHeader *multipart.FileHeader) (*service.Upload, func(), error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &service.Upload{
		FileName:    fileHeader.Filename,
		ContentType: uploadContentType(fileHeader),
		Content:     file,
	}
	return upload, func() { _ = file.Close() }, nil
}

// uploadContentType prefers the type implied by the file extension over the
// generic type most clients send.
func uploadContentType(fileHeader *multipart.FileHeader) string {
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}
	if byExt := mime.TypeByExtension(path.Ext(fileHeader.Filename)); byExt != "" {
		return byExt
	}
	return contentType
}
