package pricing

import (
	"math"
	"math/rand"
	"testing"

	"pricepilot/internal/models"
)

func TestEstimateUsesCategoryBaseRateOnly(t *testing.T) {
	// rating below 3.0 and volume at or below 100 means no bonuses apply
	product := models.ProductFeatures{
		CostPrice:      100,
		SellingPrice:   500,
		Category:       "electronics", // base 0.45
		UnitsSold:      100,
		CustomerRating: 2.9,
	}

	opt := NewPriceOptimizer()
	for i := 0; i < 50; i++ {
		price := opt.Estimate(product)
		// raw price 145 with at most ±2% jitter; no clamp binds here
		if price < 142.09 || price > 147.91 {
			t.Fatalf("price %v outside base-markup band [142.10, 147.90]", price)
		}
	}
}

func TestEstimateUnknownCategoryFallsBackToDefault(t *testing.T) {
	product := models.ProductFeatures{
		CostPrice:    100,
		SellingPrice: 500,
		Category:     "no such category",
		UnitsSold:    10,
	}

	opt := NewPriceOptimizer()
	price := opt.Estimate(product)
	// default markup 0.45, so same band as electronics
	if price < 142.09 || price > 147.91 {
		t.Fatalf("price %v outside default-markup band", price)
	}
}

func TestEstimateNormalisesCategory(t *testing.T) {
	opt := NewPriceOptimizerWithSource(rand.NewSource(1))
	a := opt.Estimate(models.ProductFeatures{CostPrice: 100, SellingPrice: 500, Category: "  Transportation "})

	opt = NewPriceOptimizerWithSource(rand.NewSource(1))
	b := opt.Estimate(models.ProductFeatures{CostPrice: 100, SellingPrice: 500, Category: "transportation"})

	if a != b {
		t.Fatalf("category normalisation changed the price: %v vs %v", a, b)
	}
}

func TestEstimateBounds(t *testing.T) {
	products := []models.ProductFeatures{
		{CostPrice: 10, SellingPrice: 20, Category: "electronics", CustomerRating: 5, UnitsSold: 250},
		{CostPrice: 50, SellingPrice: 55, Category: "apparel", CustomerRating: 4.1, UnitsSold: 120},
		{CostPrice: 3, SellingPrice: 30, Category: "pet supplies", CustomerRating: 1, UnitsSold: 0},
		{CostPrice: 200, SellingPrice: 210, Category: "health", CustomerRating: 3.5, UnitsSold: 500},
	}

	opt := NewPriceOptimizer()
	for _, p := range products {
		for i := 0; i < 20; i++ {
			price := opt.Estimate(p)
			floor := p.CostPrice * 1.10
			cap := p.SellingPrice * 1.50

			if price < floor-0.01 {
				t.Errorf("price %v below minimum-profit floor %v for %v", price, floor, p)
			}
			if floor <= cap && price > cap+0.01 {
				t.Errorf("price %v above cap %v for %v", price, cap, p)
			}
		}
	}
}

func TestEstimateFloorWinsOverCap(t *testing.T) {
	// cost far above selling price: floor 110 exceeds cap 30, floor wins
	product := models.ProductFeatures{
		CostPrice:    100,
		SellingPrice: 20,
		Category:     "electronics",
	}

	opt := NewPriceOptimizer()
	for i := 0; i < 20; i++ {
		if price := opt.Estimate(product); price != 110.00 {
			t.Fatalf("expected floor price 110.00, got %v", price)
		}
	}
}

func TestEstimateSeededIsDeterministic(t *testing.T) {
	product := models.ProductFeatures{
		CostPrice:      42,
		SellingPrice:   99,
		Category:       "wearables",
		UnitsSold:      150,
		CustomerRating: 4.2,
	}

	a := NewPriceOptimizerWithSource(rand.NewSource(7))
	b := NewPriceOptimizerWithSource(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		pa, pb := a.Estimate(product), b.Estimate(product)
		if pa != pb {
			t.Fatalf("call %d: same seed gave %v and %v", i, pa, pb)
		}
	}
}

func TestEstimateHighRatingHighVolumeScenario(t *testing.T) {
	// base 0.45 + rating 0.20 + volume 0.05 = 0.70 markup on cost 10
	product := models.ProductFeatures{
		CostPrice:      10,
		SellingPrice:   20,
		Category:       "electronics",
		CustomerRating: 5.0,
		UnitsSold:      250,
	}

	opt := NewPriceOptimizer()
	for i := 0; i < 50; i++ {
		price := opt.Estimate(product)
		if price < 16.65 || price > 17.35 {
			t.Fatalf("price %v outside expected band 17.00 ±2%%", price)
		}
	}
}

func TestEstimateRoundsToTwoDecimals(t *testing.T) {
	opt := NewPriceOptimizer()
	price := opt.Estimate(models.ProductFeatures{CostPrice: 33.33, SellingPrice: 77.77, Category: "fitness"})
	if math.Abs(price*100-math.Round(price*100)) > 1e-9 {
		t.Fatalf("price %v not rounded to 2 decimal places", price)
	}
}
