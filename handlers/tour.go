package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	tourRepo "aptiva/database/repository/tour"
	"aptiva/models"
	"aptiva/services/scheduling"
	"aptiva/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TourHandler serves booked tours and the explicit cancellation path.
type TourHandler struct {
	Tours       tourRepo.TourRepository
	Coordinator *scheduling.Coordinator
}

func NewTourHandler(tours tourRepo.TourRepository, coordinator *scheduling.Coordinator) *TourHandler {
	return &TourHandler{Tours: tours, Coordinator: coordinator}
}

// ListUpcomingHandler returns the user's tours for the next N days (default 7).
func (h *TourHandler) ListUpcomingHandler(c *gin.Context) {
	userID := c.GetString("userID")

	daysAhead := 7
	if raw := c.Query("daysAhead"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			daysAhead = n
		}
	}

	tours, err := h.Tours.ListUpcoming(userID, time.Now(), daysAhead)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list tours", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

// CancelHandler removes a tour's calendar events. This is the explicit,
// user-confirmed compensation path; each side's delete is best-effort and
// the per-side outcome is reported rather than hidden.
func (h *TourHandler) CancelHandler(c *gin.Context) {
	userID := c.GetString("userID")
	tourID := c.Param("tourID")

	rec, err := h.Tours.GetByID(tourID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Tour not found", err.Error())
		return
	}
	if rec.UserID != userID {
		utils.JSONError(c, http.StatusForbidden, "Not your tour", "")
		return
	}

	ctx := context.Background()
	outcome := gin.H{}
	if rec.RenterEventID != "" {
		if err := h.Coordinator.CancelSide(ctx, h.Coordinator.RenterCalendarID, rec.RenterEventID); err != nil {
			utils.GetLogger().Warn("renter event delete failed", zap.String("tourId", tourID), zap.Error(err))
			outcome["renter"] = "delete failed, event may remain"
		} else {
			outcome["renter"] = "deleted"
		}
	}
	if rec.LandlordEventID != "" {
		landlordCal := rec.LandlordCalendarID
		if landlordCal == "" {
			landlordCal = h.Coordinator.LandlordCalendarID
		}
		if err := h.Coordinator.CancelSide(ctx, landlordCal, rec.LandlordEventID); err != nil {
			utils.GetLogger().Warn("landlord event delete failed", zap.String("tourId", tourID), zap.Error(err))
			outcome["landlord"] = "delete failed, event may remain"
		} else {
			outcome["landlord"] = "deleted"
		}
	}

	if err := h.Tours.UpdateStatus(tourID, models.BookingCancelled); err != nil {
		utils.GetLogger().Warn("tour status update failed", zap.String("tourId", tourID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"tourId": tourID, "result": outcome})
}
