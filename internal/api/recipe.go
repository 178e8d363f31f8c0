package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrycook/pantrycook/backend/internal/match"
	"github.com/pantrycook/pantrycook/backend/internal/model"
	"github.com/pantrycook/pantrycook/backend/internal/service"
	"github.com/pantrycook/pantrycook/backend/internal/store"
)

// RecipeHandler serves the recipe retrieval, matching and CRUD endpoints.
type RecipeHandler struct {
	recipes *service.RecipeService
	images  *service.ImageService
	logger  *zap.Logger
}

// NewRecipeHandler creates a RecipeHandler. images may be nil when no S3
// configuration is available; the upload endpoint then responds 503.
func NewRecipeHandler(recipes *service.RecipeService, images *service.ImageService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		images:  images,
		logger:  logger,
	}
}

// RegisterRoutes mounts the recipe routes; authMW guards mutating endpoints.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/match", h.MatchByIngredients)
		recipes.GET("/:id/similar", h.SimilarRecipes)
		recipes.POST("", authMW, h.CreateRecipe)
		recipes.PUT("/:id", authMW, h.UpdateRecipe)
		recipes.DELETE("/:id", authMW, h.DeleteRecipe)
		recipes.POST("/:id/image", authMW, h.UploadRecipeImage)
	}
}

// ListRecipes handles structured, paginated search. Supported query
// parameters: q, title, ingredient, category, author, min_rating,
// max_total_time, page, page_size.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := store.SearchFilter{
		Query:      c.Query("q"),
		Title:      c.Query("title"),
		Ingredient: c.Query("ingredient"),
		Category:   c.Query("category"),
		Author:     c.Query("author"),
	}

	if v := c.Query("min_rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_rating"})
			return
		}
		filter.MinRating = rating
	}

	if v := c.Query("max_total_time"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_total_time"})
			return
		}
		filter.MaxTotalTime = minutes
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.recipes.Search(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		h.logger.Error("recipe search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes":   result.Recipes,
		"total":     result.Total,
		"page":      result.Page,
		"page_size": result.PageSize,
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseRecipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		h.logger.Error("recipe lookup failed", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// MatchByIngredients scores recipes against the caller's pantry. The recall
// of this endpoint is bounded by the configured candidate pool: only the
// most recent recipes are scored.
func (h *RecipeHandler) MatchByIngredients(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := match.DefaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	matches, err := h.recipes.FindByAvailableIngredients(c.Request.Context(), req.Ingredients, limit)
	if err != nil {
		h.logger.Error("pantry match failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to match recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

func (h *RecipeHandler) SimilarRecipes(c *gin.Context) {
	id, ok := parseRecipeID(c)
	if !ok {
		return
	}

	limit := match.DefaultSimilarLimit
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	recipes, err := h.recipes.FindSimilar(c.Request.Context(), id, limit)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		h.logger.Error("similarity lookup failed", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find similar recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var recipe model.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if recipe.Title == "" || recipe.Ingredients == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and ingredients are required"})
		return
	}

	recipe.ID = 0
	if err := h.recipes.CreateRecipe(c.Request.Context(), &recipe); err != nil {
		h.logger.Error("recipe create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseRecipeID(c)
	if !ok {
		return
	}

	var recipe model.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe.ID = id
	if err := h.recipes.UpdateRecipe(c.Request.Context(), &recipe); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		h.logger.Error("recipe update failed", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe updated successfully",
		"id":      strconv.FormatInt(id, 10),
	})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseRecipeID(c)
	if !ok {
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		h.logger.Error("recipe delete failed", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe deleted successfully",
		"id":      strconv.FormatInt(id, 10),
	})
}

func (h *RecipeHandler) UploadRecipeImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	id, ok := parseRecipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}
	defer func() { _ = src.Close() }()

	url, err := h.images.UploadRecipeImage(c.Request.Context(), id, file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		h.logger.Error("image upload failed", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	recipe.ImageURL = url
	if err := h.recipes.UpdateRecipe(c.Request.Context(), recipe); err != nil {
		h.logger.Error("image url update failed", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

func parseRecipeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return 0, false
	}
	return id, true
}
