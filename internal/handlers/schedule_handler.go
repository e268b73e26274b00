package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petshopco/petshop-backend/internal/httperr"
	"github.com/petshopco/petshop-backend/internal/httpresp"
	"github.com/petshopco/petshop-backend/internal/models"
)

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

type ScheduleDayConfig struct {
	DayOfWeek   int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	vetID := c.Param("id")

	var vet models.Veterinarian
	if err := h.db.WithContext(c.Request.Context()).
		First(&vet, "id = ?", vetID).Error; err != nil {
		httperr.NotFound(c, "veterinarian_not_found", "Veterinarian not found.")
		return
	}

	var schedules []models.WeeklySchedule
	if err := h.db.WithContext(c.Request.Context()).
		Where("veterinarian_id = ?", vetID).
		Order("day_of_week ASC").
		Find(&schedules).Error; err != nil {
		httperr.Internal(c, "failed_to_get_schedules", "Error fetching schedules.")
		return
	}

	httpresp.OK(c, gin.H{"schedules": schedules})
}

// Update replaces the vet's whole weekly schedule in one shot. Each
// day of the week may appear at most once; availability assumes a
// single active row per vet per weekday.
func (h *ScheduleHandler) Update(c *gin.Context) {
	vetID := c.Param("id")

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	seen := make(map[int]bool, len(req.Days))
	for _, d := range req.Days {
		if seen[d.DayOfWeek] {
			httperr.BadRequest(c, "duplicate_day_of_week", "Each day of week may appear only once.")
			return
		}
		seen[d.DayOfWeek] = true
	}

	var vet models.Veterinarian
	if err := h.db.WithContext(c.Request.Context()).
		First(&vet, "id = ?", vetID).Error; err != nil {
		httperr.NotFound(c, "veterinarian_not_found", "Veterinarian not found.")
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("veterinarian_id = ?", vetID).
			Delete(&models.WeeklySchedule{}).Error; err != nil {
			return err
		}

		var toCreate []models.WeeklySchedule
		for _, d := range req.Days {
			toCreate = append(toCreate, models.WeeklySchedule{
				VeterinarianID: vetID,
				DayOfWeek:      d.DayOfWeek,
				StartTime:      d.StartTime,
				EndTime:        d.EndTime,
				IsAvailable:    d.IsAvailable,
			})
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_schedules", "Error saving schedules.")
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}
