package forecast

import (
	"fmt"
	"math"
	"testing"

	"pricepilot/internal/models"
)

// syntheticRecords builds a dataset where demand is a clean linear function of
// units sold, so a forest with any reasonable depth picks up the trend.
func syntheticRecords(n int) []models.ProductHistoryRecord {
	records := make([]models.ProductHistoryRecord, n)
	for i := range records {
		units := 10 + i*5
		category := "electronics"
		if i%2 == 1 {
			category = "apparel"
		}
		records[i] = models.ProductHistoryRecord{
			CostPrice:      float64(10 + i),
			SellingPrice:   float64(20 + 2*i),
			UnitsSold:      units,
			CustomerRating: 3.0 + float64(i%20)*0.1,
			Category:       category,
			DemandForecast: float64(2 * units),
		}
	}
	return records
}

var smallForest = models.ForestConfig{Trees: 25, MaxDepth: 8, MinLeaf: 1}

func TestNewRequiresRecords(t *testing.T) {
	if _, err := New(nil, smallForest); err == nil {
		t.Fatal("expected an error for an empty training set")
	}
}

func TestEstimateFollowsTrainingTrend(t *testing.T) {
	f, err := New(syntheticRecords(60), smallForest)
	if err != nil {
		t.Fatalf("training failed: %v", err)
	}

	low, ok := f.Estimate(models.ProductFeatures{CostPrice: 12, SellingPrice: 24, UnitsSold: 20, CustomerRating: 3.2, Category: "electronics"})
	if !ok {
		t.Fatal("no estimate for a low-volume product")
	}
	high, ok := f.Estimate(models.ProductFeatures{CostPrice: 60, SellingPrice: 120, UnitsSold: 280, CustomerRating: 4.5, Category: "electronics"})
	if !ok {
		t.Fatal("no estimate for a high-volume product")
	}

	if low >= high {
		t.Errorf("expected demand to grow with units sold, got low=%.1f high=%.1f", low, high)
	}
	if low < 0 || high < 0 {
		t.Errorf("negative demand estimate: low=%.1f high=%.1f", low, high)
	}
	if math.IsNaN(low) || math.IsNaN(high) {
		t.Errorf("NaN estimate: low=%v high=%v", low, high)
	}
}

func TestTrainingIsDeterministic(t *testing.T) {
	records := syntheticRecords(50)
	a, err := New(records, smallForest)
	if err != nil {
		t.Fatalf("training failed: %v", err)
	}
	b, err := New(records, smallForest)
	if err != nil {
		t.Fatalf("training failed: %v", err)
	}

	if a.MSE() != b.MSE() {
		t.Errorf("holdout MSE differs across identical trainings: %v vs %v", a.MSE(), b.MSE())
	}

	probe := models.ProductFeatures{CostPrice: 30, SellingPrice: 60, UnitsSold: 150, CustomerRating: 4.0, Category: "apparel"}
	pa, _ := a.Estimate(probe)
	pb, _ := b.Estimate(probe)
	if pa != pb {
		t.Errorf("predictions differ across identical trainings: %v vs %v", pa, pb)
	}
}

func TestEstimateUnseenCategory(t *testing.T) {
	f, err := New(syntheticRecords(40), smallForest)
	if err != nil {
		t.Fatalf("training failed: %v", err)
	}

	got, ok := f.Estimate(models.ProductFeatures{CostPrice: 25, SellingPrice: 50, UnitsSold: 100, CustomerRating: 4.0, Category: "submarine parts"})
	if !ok {
		t.Fatal("unseen category should still yield an estimate")
	}
	if math.IsNaN(got) || got < 0 {
		t.Errorf("bad estimate %v for an unseen category", got)
	}
}

func TestEstimateOnNilForecaster(t *testing.T) {
	var f *DemandForecaster
	if _, ok := f.Estimate(models.ProductFeatures{}); ok {
		t.Fatal("nil forecaster must report no estimate")
	}
}

func TestEncoderLayout(t *testing.T) {
	e := newFeatureEncoder([]string{"Electronics", "apparel", " electronics "})
	if got := e.width(); got != numNumericFeatures+2 {
		t.Fatalf("width = %d, want %d", got, numNumericFeatures+2)
	}

	vec := e.encode(10, 20, 30, 4.5, "ELECTRONICS")
	want := fmt.Sprintf("%v", []float64{10, 20, 30, 4.5, 0, 1})
	if got := fmt.Sprintf("%v", vec); got != want {
		t.Fatalf("encoded vector = %s, want %s", got, want)
	}

	vec = e.encode(1, 2, 3, 4, "never seen")
	for i := numNumericFeatures; i < len(vec); i++ {
		if vec[i] != 0 {
			t.Fatalf("unseen category produced a hot column: %v", vec)
		}
	}
}
