package server

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pricepilot/internal/events"
	"pricepilot/internal/models"
	"pricepilot/internal/repositories"
)

type productRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	CostPrice      float64 `json:"cost_price" binding:"required,gt=0"`
	SellingPrice   float64 `json:"selling_price" binding:"required,gt=0"`
	Category       string  `json:"category" binding:"required"`
	StockAvailable int     `json:"stock_available" binding:"gte=0"`
	UnitsSold      int     `json:"units_sold" binding:"gte=0"`
	CustomerRating float64 `json:"customer_rating"`
}

func (r productRequest) features() models.ProductFeatures {
	return models.ProductFeatures{
		Name:           r.Name,
		Description:    r.Description,
		CostPrice:      r.CostPrice,
		SellingPrice:   r.SellingPrice,
		Category:       r.Category,
		StockAvailable: r.StockAvailable,
		UnitsSold:      r.UnitsSold,
		CustomerRating: r.CustomerRating,
	}
}

// estimate runs both estimators over the feature record. The optimized price
// is always produced; the demand percentage needs a forecaster estimate and a
// non-zero stock to divide by, and is omitted otherwise.
func (s *Server) estimate(features models.ProductFeatures) (optimizedPrice *float64, demandPct *float64) {
	price := s.deps.Optimizer.Estimate(features)
	optimizedPrice = &price

	if demand, ok := s.deps.Forecaster.Estimate(features); ok && features.StockAvailable > 0 {
		pct := math.Min(demand/float64(features.StockAvailable)*100, 100)
		pct = math.Round(pct*100) / 100
		demandPct = &pct
	}
	return optimizedPrice, demandPct
}

func (s *Server) publishPriceEvent(product *models.Product) {
	event := events.PriceEstimateEvent{
		ProductID:      product.ID,
		Category:       product.Category,
		OptimizedPrice: product.OptimizedPrice,
		DemandForecast: product.DemandForecast,
		EstimatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.deps.Publisher.Publish(s.cfg.PriceEventTopic, event); err != nil {
		log.Printf("failed to publish price event for product %d: %v", product.ID, err)
	}
}

func (s *Server) handleCreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	optimizedPrice, demandPct := s.estimate(req.features())

	product := &models.Product{
		Name:           req.Name,
		Description:    req.Description,
		CostPrice:      req.CostPrice,
		SellingPrice:   req.SellingPrice,
		Category:       req.Category,
		StockAvailable: req.StockAvailable,
		UnitsSold:      req.UnitsSold,
		CustomerRating: req.CustomerRating,
		OptimizedPrice: optimizedPrice,
		DemandForecast: demandPct,
		SupplierID:     currentUser(c).ID,
	}

	if err := s.deps.Products.Create(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.publishPriceEvent(product)
	c.JSON(http.StatusCreated, product)
}

func (s *Server) handleListProducts(c *gin.Context) {
	products, err := s.deps.Products.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// buyers never see the estimator outputs
	if currentUser(c).Role == models.RoleBuyer {
		for _, p := range products {
			p.OptimizedPrice = nil
			p.DemandForecast = nil
		}
	}

	c.JSON(http.StatusOK, products)
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := s.deps.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	user := currentUser(c)
	if user.Role == models.RoleSupplier && user.ID != product.SupplierID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own products"})
		return
	}

	optimizedPrice, demandPct := s.estimate(req.features())

	product.Name = req.Name
	product.Description = req.Description
	product.CostPrice = req.CostPrice
	product.SellingPrice = req.SellingPrice
	product.Category = req.Category
	product.StockAvailable = req.StockAvailable
	product.UnitsSold = req.UnitsSold
	product.CustomerRating = req.CustomerRating
	product.OptimizedPrice = optimizedPrice
	product.DemandForecast = demandPct

	if err := s.deps.Products.Update(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.publishPriceEvent(product)
	c.JSON(http.StatusOK, product)
}

func (s *Server) handleDeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := s.deps.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	user := currentUser(c)
	if user.Role == models.RoleSupplier && user.ID != product.SupplierID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own products"})
		return
	}

	if err := s.deps.Products.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

type forecastRequest struct {
	ProductIDs []int `json:"product_ids" binding:"required"`
}

type forecastResponse struct {
	ProductID int     `json:"product_id"`
	Demand    float64 `json:"demand"`
}

// handleProductForecast recomputes and persists demand percentages for a
// batch of products. Products that are missing or yield no estimate are
// skipped rather than failing the batch.
func (s *Server) handleProductForecast(c *gin.Context) {
	var req forecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	forecasts := make([]forecastResponse, 0, len(req.ProductIDs))
	for _, id := range req.ProductIDs {
		product, err := s.deps.Products.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		demand, ok := s.deps.Forecaster.Estimate(product.Features())
		if !ok || product.StockAvailable <= 0 {
			continue
		}

		pct := math.Min(demand/float64(product.StockAvailable)*100, 100)
		pct = math.Round(pct*100) / 100
		product.DemandForecast = &pct
		if err := s.deps.Products.Update(c.Request.Context(), product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		forecasts = append(forecasts, forecastResponse{ProductID: id, Demand: pct})
	}

	c.JSON(http.StatusOK, forecasts)
}
