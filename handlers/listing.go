package handlers

import (
	"net/http"
	"strconv"

	"aptiva/models"
	listingSvc "aptiva/services/listing"
	"aptiva/utils"

	"github.com/gin-gonic/gin"
)

// ListingHandler serves the rental inventory.
type ListingHandler struct {
	Listings listingSvc.Service
}

func NewListingHandler(listings listingSvc.Service) *ListingHandler {
	return &ListingHandler{Listings: listings}
}

// SearchHandler filters listings by city/price/bedrooms query params.
func (h *ListingHandler) SearchHandler(c *gin.Context) {
	q := models.ListingQuery{City: c.Query("city")}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MaxPrice = v
		}
	}
	if raw := c.Query("minBedrooms"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			q.MinBedrooms = v
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			q.Limit = v
		}
	}

	listings, err := h.Listings.Search(q)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to search listings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func (h *ListingHandler) GetByIDHandler(c *gin.Context) {
	listing, err := h.Listings.Get(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Listing not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, listing)
}
