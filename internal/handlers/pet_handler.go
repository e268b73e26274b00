package handlers

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/petshopco/petshop-backend/internal/httperr"
	"github.com/petshopco/petshop-backend/internal/httpresp"
	"github.com/petshopco/petshop-backend/internal/middleware"
	"github.com/petshopco/petshop-backend/internal/models"
	"github.com/petshopco/petshop-backend/internal/storage"
)

type PetHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewPetHandler(db *gorm.DB, uploader *storage.Uploader) *PetHandler {
	return &PetHandler{db: db, uploader: uploader}
}

type CreatePetRequest struct {
	Name     string   `json:"name" binding:"required"`
	Species  string   `json:"species" binding:"required"`
	Breed    string   `json:"breed"`
	Age      *int     `json:"age"`
	Weight   *float64 `json:"weight"`
	ImageURL string   `json:"imageUrl"`
}

func (h *PetHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	pet := models.Pet{
		OwnerID:  userID,
		Name:     req.Name,
		Species:  req.Species,
		Breed:    req.Breed,
		Age:      req.Age,
		Weight:   req.Weight,
		ImageURL: req.ImageURL,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&pet).Error; err != nil {
		zap.L().Error("creating pet failed", zap.Error(err))
		httperr.Internal(c, "failed_to_create_pet", "Error creating pet")
		return
	}

	httpresp.Created(c, gin.H{"pet": pet})
}

func (h *PetHandler) ListForUser(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var pets []models.Pet
	if err := h.db.WithContext(c.Request.Context()).
		Where("owner_id = ?", userID).
		Order("created_at DESC").
		Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Error fetching user's pets")
		return
	}

	httpresp.OK(c, gin.H{"pets": pets})
}

// UploadPhoto accepts a multipart "image" field, converts it to webp
// and stores it in S3. The pet keeps its previous photo on failure.
func (h *PetHandler) UploadPhoto(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	petID := c.Param("id")

	if h.uploader == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "uploads_disabled", "Photo uploads are not configured.")
		return
	}

	var pet models.Pet
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND owner_id = ?", petID, userID).
		First(&pet).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Pet not found")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not read image.")
		return
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Unsupported image format.")
		return
	}

	key := fmt.Sprintf("pets/%s/%s.webp", pet.ID, uuid.NewString())

	url, err := h.uploader.UploadWebP(c.Request.Context(), key, img)
	if err != nil {
		zap.L().Error("pet photo upload failed", zap.Error(err))
		httperr.Internal(c, "upload_failed", "Error uploading photo.")
		return
	}

	pet.ImageURL = url
	if err := h.db.WithContext(c.Request.Context()).Save(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Error saving photo.")
		return
	}

	httpresp.OK(c, gin.H{"pet": pet})
}
