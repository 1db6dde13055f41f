package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/handyhub/marketplace-api/internal/dto"
	"github.com/handyhub/marketplace-api/internal/geo"
	"github.com/handyhub/marketplace-api/internal/httperr"
	"github.com/handyhub/marketplace-api/internal/httpresp"
	"github.com/handyhub/marketplace-api/internal/middleware"
	"github.com/handyhub/marketplace-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	CategoryID  uint     `json:"category_id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"gte=0"`
	Location    string   `json:"location" binding:"required"`
	Phone       string   `json:"phone" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Description string   `json:"description"`
	LocationLat *float64 `json:"location_lat"`
	LocationLng *float64 `json:"location_lng"`
}

type UpdateServiceRequest struct {
	CategoryID  *uint    `json:"category_id,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Location    *string  `json:"location,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty" binding:"omitempty,email"`
	Description *string  `json:"description,omitempty"`
	LocationLat *float64 `json:"location_lat,omitempty"`
	LocationLng *float64 `json:"location_lng,omitempty"`
}

// --------- Handlers ---------

// List is the public discovery endpoint. Optional filters: categoryId,
// providerId, and the (lat, lng, radius) triple applied as the inclusive
// bounding box from internal/geo. All three geo params must be present
// for the box to apply.
func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.Preload("Provider").Preload("Category")

	if categoryID := c.Query("categoryId"); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}

	if providerID := c.Query("providerId"); providerID != "" {
		q = q.Where("provider_id = ?", providerID)
	}

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	radius, radErr := strconv.ParseFloat(c.Query("radius"), 64)

	if latErr == nil && lngErr == nil && radErr == nil {
		box := geo.Around(lat, lng, radius)
		q = q.Where(
			"location_lat >= ? AND location_lat <= ? AND location_lng >= ? AND location_lng <= ?",
			box.MinLat, box.MaxLat, box.MinLng, box.MaxLng,
		)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	out := make([]dto.ServiceDTO, 0, len(services))
	for _, svc := range services {
		out = append(out, dto.ServiceView(svc))
	}

	httpresp.List(c, out)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Service id must be numeric.")
		return
	}

	var svc models.Service
	if err := h.db.
		Preload("Provider").
		Preload("Category").
		First(&svc, uint(id)).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "No such service.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load the service.")
		return
	}

	httpresp.OK(c, dto.ServiceView(svc))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var category models.Category
	if err := h.db.First(&category, req.CategoryID).Error; err != nil {
		httperr.BadRequest(c, "category_not_found", "Referenced category does not exist.")
		return
	}

	svc := models.Service{
		ProviderID:  providerID,
		CategoryID:  category.ID,
		Name:        req.Name,
		Price:       req.Price,
		Location:    req.Location,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
		LocationLat: req.LocationLat,
		LocationLng: req.LocationLng,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	h.db.Preload("Provider").Preload("Category").First(&svc, svc.ID)

	httpresp.Created(c, dto.ServiceView(svc))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Service id must be numeric.")
		return
	}

	// Scoped by provider_id: another provider's service reads as absent.
	var svc models.Service
	if err := h.db.
		Where("id = ? AND provider_id = ?", uint(id), providerID).
		First(&svc).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "No such service.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load the service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.CategoryID != nil {
		var category models.Category
		if err := h.db.First(&category, *req.CategoryID).Error; err != nil {
			httperr.BadRequest(c, "category_not_found", "Referenced category does not exist.")
			return
		}
		svc.CategoryID = category.ID
	}
	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Location != nil {
		svc.Location = *req.Location
	}
	if req.Phone != nil {
		svc.Phone = *req.Phone
	}
	if req.Email != nil {
		svc.Email = *req.Email
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.LocationLat != nil {
		svc.LocationLat = req.LocationLat
	}
	if req.LocationLng != nil {
		svc.LocationLng = req.LocationLng
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update the service.")
		return
	}

	h.db.Preload("Provider").Preload("Category").First(&svc, svc.ID)

	httpresp.OK(c, dto.ServiceView(svc))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Service id must be numeric.")
		return
	}

	var svc models.Service
	if err := h.db.
		Where("id = ? AND provider_id = ?", uint(id), providerID).
		First(&svc).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "No such service.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load the service.")
		return
	}

	if err := h.db.Delete(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete the service.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": svc.ID})
}
