package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/blog-platform-api/internal/apperrors"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/validation"
)

// Response is the envelope wrapping every JSON payload
type Response struct {
	Success    bool                    `json:"success"`
	Message    string                  `json:"message"`
	Data       interface{}             `json:"data,omitempty"`
	Pagination *models.Pagination      `json:"pagination,omitempty"`
	Errors     []validation.FieldError `json:"errors,omitempty"`
}

// respondOK writes a success envelope
func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// respondPage writes a success envelope with a pagination block
func respondPage(c *gin.Context, message string, data interface{}, pagination *models.Pagination) {
	c.JSON(200, Response{Success: true, Message: message, Data: data, Pagination: pagination})
}

// respondError maps a domain error to its HTTP status. Unclassified errors
// are logged with full detail but surface only a generic message.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	kind := apperrors.KindOf(err)
	if kind == apperrors.KindInternal {
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}
	c.JSON(kind.HTTPStatus(), Response{Success: false, Message: apperrors.MessageOf(err)})
}

// respondValidation writes a 400 envelope with field-level errors
func respondValidation(c *gin.Context, message string, errs []validation.FieldError) {
	c.JSON(400, Response{Success: false, Message: message, Errors: errs})
}
