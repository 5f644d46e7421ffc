package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/blog-platform-api/internal/apperrors"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/service"
	"github.com/blog-platform-api/internal/validation"
)

// ArticleHandler handles article CRUD endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// Create handles POST /articles
func (h *ArticleHandler) Create(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		respondError(c, h.log, apperrors.Unauthenticated("authentication required"))
		return
	}

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body", nil)
		return
	}
	if errs := validation.CreateArticle(&req); len(errs) > 0 {
		respondValidation(c, "invalid article", errs)
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondOK(c, http.StatusCreated, "Article created successfully", article)
}

// GetByID handles GET /articles/:id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	article, err := h.services.Article.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondOK(c, http.StatusOK, "Article retrieved successfully", article)
}

// List handles GET /articles
func (h *ArticleHandler) List(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidation(c, "invalid query parameters", nil)
		return
	}
	if errs := validation.ListParams(&params); len(errs) > 0 {
		respondValidation(c, "invalid query parameters", errs)
		return
	}

	articles, pagination, err := h.services.Article.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondPage(c, "Articles retrieved successfully", articles, pagination)
}

// Update handles PUT /articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		respondError(c, h.log, apperrors.Unauthenticated("authentication required"))
		return
	}

	id, ok := articleID(c)
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body", nil)
		return
	}
	if errs := validation.UpdateArticle(&req); len(errs) > 0 {
		respondValidation(c, "invalid article", errs)
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), id, claims.UserID, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondOK(c, http.StatusOK, "Article updated successfully", article)
}

// Delete handles DELETE /articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		respondError(c, h.log, apperrors.Unauthenticated("authentication required"))
		return
	}

	id, ok := articleID(c)
	if !ok {
		return
	}

	if err := h.services.Article.Delete(c.Request.Context(), id, claims.UserID); err != nil {
		respondError(c, h.log, err)
		return
	}

	respondOK(c, http.StatusOK, "Article deleted successfully", nil)
}

// articleID parses the :id route parameter, responding 400 when malformed
func articleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		respondValidation(c, "invalid article ID", nil)
		return 0, false
	}
	return id, true
}
