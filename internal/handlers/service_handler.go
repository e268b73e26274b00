package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petshopco/petshop-backend/internal/cache"
	"github.com/petshopco/petshop-backend/internal/httperr"
	"github.com/petshopco/petshop-backend/internal/httpresp"
	"github.com/petshopco/petshop-backend/internal/models"
)

type ServiceHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
}

func NewServiceHandler(db *gorm.DB, catalog *cache.Catalog) *ServiceHandler {
	return &ServiceHandler{db: db, catalog: catalog}
}

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	Price           float64 `json:"price"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	DurationMinutes *int     `json:"duration_minutes"`
	Price           *float64 `json:"price"`
	IsActive        *bool    `json:"is_active"`
}

// ======================================================
// LIST (public, cached)
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var services []models.Service
	if h.catalog.Get(ctx, cache.KeyServices, &services) {
		httpresp.OK(c, gin.H{"services": services})
		return
	}

	if err := h.db.WithContext(ctx).
		Where("is_active = true").
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error fetching services")
		return
	}

	h.catalog.Set(ctx, cache.KeyServices, services)

	httpresp.OK(c, gin.H{"services": services})
}

// ======================================================
// ADMIN
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	service := models.Service{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Error creating service.")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyServices)

	httpresp.Created(c, gin.H{"service": service})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var service models.Service
	if err := h.db.WithContext(c.Request.Context()).
		First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMinutes != nil && *req.DurationMinutes > 0 {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Error updating service.")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyServices)

	httpresp.OK(c, gin.H{"service": service})
}
