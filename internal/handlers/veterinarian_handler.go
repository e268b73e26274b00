package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petshopco/petshop-backend/internal/cache"
	"github.com/petshopco/petshop-backend/internal/httperr"
	"github.com/petshopco/petshop-backend/internal/httpresp"
	"github.com/petshopco/petshop-backend/internal/models"
)

type VeterinarianHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
}

func NewVeterinarianHandler(db *gorm.DB, catalog *cache.Catalog) *VeterinarianHandler {
	return &VeterinarianHandler{db: db, catalog: catalog}
}

type CreateVeterinarianRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Specialty string `json:"specialty"`
}

type UpdateVeterinarianRequest struct {
	FullName    *string `json:"full_name"`
	Specialty   *string `json:"specialty"`
	IsAvailable *bool   `json:"is_available"`
}

// ======================================================
// LIST (public, cached)
// ======================================================

func (h *VeterinarianHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var vets []models.Veterinarian
	if h.catalog.Get(ctx, cache.KeyVeterinarians, &vets) {
		httpresp.OK(c, gin.H{"veterinarians": vets})
		return
	}

	if err := h.db.WithContext(ctx).
		Where("is_available = true").
		Order("full_name ASC").
		Find(&vets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_veterinarians", "Error fetching veterinarians")
		return
	}

	h.catalog.Set(ctx, cache.KeyVeterinarians, vets)

	httpresp.OK(c, gin.H{"veterinarians": vets})
}

// ======================================================
// ADMIN
// ======================================================

func (h *VeterinarianHandler) Create(c *gin.Context) {
	var req CreateVeterinarianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	vet := models.Veterinarian{
		FullName:    req.FullName,
		Specialty:   req.Specialty,
		IsAvailable: true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&vet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_veterinarian", "Error creating veterinarian.")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyVeterinarians)

	httpresp.Created(c, gin.H{"veterinarian": vet})
}

func (h *VeterinarianHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateVeterinarianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var vet models.Veterinarian
	if err := h.db.WithContext(c.Request.Context()).
		First(&vet, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "veterinarian_not_found", "Veterinarian not found.")
		return
	}

	if req.FullName != nil {
		vet.FullName = *req.FullName
	}
	if req.Specialty != nil {
		vet.Specialty = *req.Specialty
	}
	if req.IsAvailable != nil {
		vet.IsAvailable = *req.IsAvailable
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&vet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_veterinarian", "Error updating veterinarian.")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyVeterinarians)

	httpresp.OK(c, gin.H{"veterinarian": vet})
}
