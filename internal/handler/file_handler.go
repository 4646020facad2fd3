package handler

import (
	"net/http"

	"movieflix/internal/models"
	"movieflix/internal/service"
	"movieflix/pkg/response"

	"github.com/gin-gonic/gin"
)

// FileHandler handles poster uploads and downloads.
type FileHandler struct {
	service       service.FileServicer
	maxUploadSize int64
}

// NewFileHandler creates a new FileHandler. A maxUploadSize of zero uses
// DefaultMaxUploadSize.
func NewFileHandler(service service.FileServicer, maxUploadSize int64) *FileHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &FileHandler{service: service, maxUploadSize: maxUploadSize}
}

// Upload godoc
// @Summary      Upload a poster file
// @Description  Store a file under its base name. Existing files are never replaced.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to upload"
// @Success      201   {object}  response.Response{data=models.FileUploadResponse}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Security     BearerAuth
// @Router       /file/upload [post]
func (h *FileHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	fileHeader, err := c.FormFile(formFieldFile)
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	upload, closeFile, err := openUpload(fileHeader)
	if err != nil {
		response.BadRequest(c, "failed to read file")
		return
	}
	defer closeFile()

	name, err := h.service.Upload(c.Request.Context(), upload)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, models.FileUploadResponse{FileName: name})
}

// Serve godoc
// @Summary      Download a poster file
// @Tags         files
// @Produce      octet-stream
// @Param        fileName  path  string  true  "File name"
// @Success      200
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /file/{fileName} [get]
func (h *FileHandler) Serve(c *gin.Context) {
	obj, err := h.service.Open(c.Request.Context(), c.Param("fileName"))
	if err != nil {
		respondError(c, err)
		return
	}
	defer obj.Body.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, obj.Size, contentType, obj.Body, nil)
}
