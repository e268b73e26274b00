package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/petshopco/petshop-backend/internal/domain/appointment"
	"github.com/petshopco/petshop-backend/internal/httperr"
	"github.com/petshopco/petshop-backend/internal/httpresp"
	"github.com/petshopco/petshop-backend/internal/middleware"
	ucAppointment "github.com/petshopco/petshop-backend/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	tz string

	availabilityUC *ucAppointment.GetAvailability
	bookUC         *ucAppointment.BookAppointment
	updateUC       *ucAppointment.UpdateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	listUC         *ucAppointment.ListUserAppointments
}

func NewAppointmentHandler(
	tz string,
	availabilityUC *ucAppointment.GetAvailability,
	bookUC *ucAppointment.BookAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listUC *ucAppointment.ListUserAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		tz:             tz,
		availabilityUC: availabilityUC,
		bookUC:         bookUC,
		updateUC:       updateUC,
		cancelUC:       cancelUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	PetID     string `json:"petId" binding:"required"`
	ServiceID string `json:"serviceId" binding:"required"`
	VetID     string `json:"vetId" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
	Notes     string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Date  *string `json:"date"`
	Time  *string `json:"time"`
	VetID *string `json:"vetId"`
	Notes *string `json:"notes"`
}

// ======================================================
// AVAILABILITY (public)
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceID := c.Query("serviceId")
	vetID := c.Query("vetId")

	if dateStr == "" || serviceID == "" {
		httperr.BadRequest(c, "missing_params", "Date and service ID are required.")
		return
	}

	date, err := parseDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			Date:      date,
			ServiceID: serviceID,
			VetID:     vetID,
		},
	)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}

		zap.L().Error("availability query failed", zap.Error(err))
		httperr.Internal(c, "availability_failed", "Error fetching available time slots.")
		return
	}

	httpresp.OK(c, gin.H{"availableSlots": slots})
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields.")
		return
	}

	start, err := parseDateTime(h.tz, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	ap, err := h.bookUC.Execute(
		c.Request.Context(),
		ucAppointment.BookAppointmentInput{
			UserID:    userID,
			PetID:     req.PetID,
			ServiceID: req.ServiceID,
			VetID:     req.VetID,
			Date:      start,
			Notes:     req.Notes,
		},
	)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}

		zap.L().Error("booking failed", zap.Error(err))
		httperr.Internal(c, "booking_failed", "Error booking appointment.")
		return
	}

	httpresp.Created(c, gin.H{"appointment": ap})
}

// ======================================================
// LIST (caller's appointments)
// ======================================================

func (h *AppointmentHandler) ListForUser(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	aps, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("listing appointments failed", zap.Error(err))
		httperr.Internal(c, "list_failed", "Error fetching appointments.")
		return
	}

	httpresp.OK(c, gin.H{"appointments": aps})
}

// ======================================================
// UPDATE (reschedule)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	// The date only moves when both parts are supplied.
	var newDate *time.Time
	if req.Date != nil && req.Time != nil && *req.Date != "" && *req.Time != "" {
		start, err := parseDateTime(h.tz, *req.Date, *req.Time)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
			return
		}
		newDate = &start
	}

	ap, err := h.updateUC.Execute(
		c.Request.Context(),
		ucAppointment.UpdateAppointmentInput{
			AppointmentID: id,
			UserID:        userID,
			Date:          newDate,
			VetID:         req.VetID,
			Notes:         req.Notes,
		},
	)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}

		zap.L().Error("updating appointment failed", zap.Error(err))
		httperr.Internal(c, "update_failed", "Error updating appointment.")
		return
	}

	httpresp.OK(c, gin.H{"appointment": ap})
}

// ======================================================
// CANCEL (soft)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	if _, err := h.cancelUC.Execute(c.Request.Context(), id, userID); err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}

		zap.L().Error("cancelling appointment failed", zap.Error(err))
		httperr.Internal(c, "cancel_failed", "Error cancelling appointment.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Appointment cancelled successfully"})
}
