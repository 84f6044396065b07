package models

import "time"

// MenuItemRequest is a proposed menu item before pricing.
type MenuItemRequest struct {
	Name      string    `json:"name"`
	MealType  string    `json:"meal_type"`
	BasePrice float64   `json:"base_price"`
	Date      time.Time `json:"date"`
}

// MenuPricingResult is the outcome of running the menu demand pricer over a
// single item. Revenue is the implied take at the optimised price.
type MenuPricingResult struct {
	Name           string  `json:"name"`
	BasePrice      float64 `json:"base_price"`
	MealType       string  `json:"meal_type"`
	OptimizedPrice float64 `json:"optimized_price"`
	ExpectedDemand int     `json:"expected_demand"`
	Revenue        float64 `json:"revenue"`
}

// MenuItem is the persisted menu record including its pricing outcome.
type MenuItem struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	MealType       string    `json:"meal_type"`
	BasePrice      float64   `json:"base_price"`
	OptimizedPrice float64   `json:"optimized_price"`
	ExpectedDemand int       `json:"expected_demand"`
	Revenue        float64   `json:"revenue"`
	Date           time.Time `json:"date"`
	SupplierID     int       `json:"supplier_id"`
}
