package handler

import (
	"log"
	"net/http"

	apperrors "movieflix/internal/errors"
	"movieflix/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError writes err as an error envelope. Errors without a kind are
// logged and reported as 500 without their message.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.Error(c, status, err.Error())
}
