package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pricepilot/internal/events"
	"pricepilot/internal/models"
	"pricepilot/internal/pricing"
)

type menuItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	MealType  string  `json:"meal_type" binding:"required"`
	BasePrice float64 `json:"base_price" binding:"required,gt=0"`
	Date      string  `json:"date" binding:"required"`
}

func (s *Server) handleCreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	// the booking dataset is reloaded on every pricing call
	bookings, err := s.deps.Bookings.LoadBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := pricing.PriceMenu(date, bookings, []models.MenuItemRequest{{
		Name:      req.Name,
		MealType:  req.MealType,
		BasePrice: req.BasePrice,
		Date:      date,
	}})
	result := results[0]

	item := &models.MenuItem{
		Name:           result.Name,
		MealType:       result.MealType,
		BasePrice:      result.BasePrice,
		OptimizedPrice: result.OptimizedPrice,
		ExpectedDemand: result.ExpectedDemand,
		Revenue:        result.Revenue,
		Date:           date,
		SupplierID:     currentUser(c).ID,
	}
	if err := s.deps.MenuItems.Create(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	event := events.MenuPricingEvent{
		MenuItemID:     item.ID,
		MealType:       item.MealType,
		OptimizedPrice: item.OptimizedPrice,
		ExpectedDemand: item.ExpectedDemand,
		Revenue:        item.Revenue,
		Date:           req.Date,
	}
	if err := s.deps.Publisher.Publish(s.cfg.MenuEventTopic, event); err != nil {
		log.Printf("failed to publish menu pricing event for item %d: %v", item.ID, err)
	}

	c.JSON(http.StatusCreated, item)
}

func (s *Server) handleListMenuItems(c *gin.Context) {
	items, err := s.deps.MenuItems.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
