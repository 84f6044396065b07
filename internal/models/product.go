package models

// Product is the persisted marketplace record. OptimizedPrice and
// DemandForecast are filled in by the estimators on create/update and may be
// absent when no estimate was available.
type Product struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	CostPrice      float64  `json:"cost_price"`
	SellingPrice   float64  `json:"selling_price"`
	Category       string   `json:"category"`
	StockAvailable int      `json:"stock_available"`
	UnitsSold      int      `json:"units_sold"`
	CustomerRating float64  `json:"customer_rating"`
	DemandForecast *float64 `json:"demand_forecast,omitempty"` // percentage of stock, 0-100
	OptimizedPrice *float64 `json:"optimized_price,omitempty"`
	SupplierID     int      `json:"supplier_id"`
}

// ProductFeatures is the read-only feature record the estimators consume.
type ProductFeatures struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	CostPrice      float64 `json:"cost_price"`
	SellingPrice   float64 `json:"selling_price"`
	Category       string  `json:"category"`
	StockAvailable int     `json:"stock_available"`
	UnitsSold      int     `json:"units_sold"`
	CustomerRating float64 `json:"customer_rating"`
}

// Features extracts the estimator inputs from a persisted product. A missing
// rating defaults to zero, matching what the forecaster was trained against.
func (p *Product) Features() ProductFeatures {
	return ProductFeatures{
		Name:           p.Name,
		Description:    p.Description,
		CostPrice:      p.CostPrice,
		SellingPrice:   p.SellingPrice,
		Category:       p.Category,
		StockAvailable: p.StockAvailable,
		UnitsSold:      p.UnitsSold,
		CustomerRating: p.CustomerRating,
	}
}

// ProductHistoryRecord is one row of the historical training dataset for the
// demand forecaster.
type ProductHistoryRecord struct {
	CostPrice      float64
	SellingPrice   float64
	UnitsSold      int
	CustomerRating float64
	Category       string
	DemandForecast float64
}
