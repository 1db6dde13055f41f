package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/handyhub/marketplace-api/internal/cache"
	"github.com/handyhub/marketplace-api/internal/httperr"
	"github.com/handyhub/marketplace-api/internal/httpresp"
	"github.com/handyhub/marketplace-api/internal/models"
)

const (
	categoriesCacheKey = "categories:all"
	categoriesCacheTTL = 10 * time.Minute
)

type CategoryHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewCategoryHandler(db *gorm.DB, cache *cache.Cache) *CategoryHandler {
	return &CategoryHandler{db: db, cache: cache}
}

// --------- Requests ---------

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// --------- Handlers ---------

func (h *CategoryHandler) List(c *gin.Context) {
	if cached, ok := h.cache.Get(c.Request.Context(), categoriesCacheKey); ok {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	var categories []models.Category
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Could not list categories.")
		return
	}

	if body, err := json.Marshal(categories); err == nil {
		h.cache.Set(c.Request.Context(), categoriesCacheKey, string(body), categoriesCacheTTL)
	}

	httpresp.OK(c, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_category_id", "Category id must be numeric.")
		return
	}

	var category models.Category
	if err := h.db.First(&category, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "category_not_found", "No such category.")
			return
		}
		httperr.Internal(c, "failed_to_get_category", "Could not load the category.")
		return
	}

	httpresp.OK(c, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	h.db.Model(&models.Category{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "category_already_exists", "A category with this name already exists.")
		return
	}

	category := models.Category{
		Name:        req.Name,
		Icon:        req.Icon,
		Description: req.Description,
	}

	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Could not create the category.")
		return
	}

	h.cache.Delete(c.Request.Context(), categoriesCacheKey)

	httpresp.Created(c, category)
}
