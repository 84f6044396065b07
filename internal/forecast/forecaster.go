package forecast

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"pricepilot/internal/dataset"
	"pricepilot/internal/models"
)

const (
	trainSeed    = 42
	testFraction = 0.2
)

// DemandForecaster predicts expected demand for a product's feature vector.
// The model is trained once at construction and is immutable afterwards, so
// Estimate is safe for concurrent use without locking.
type DemandForecaster struct {
	encoder *featureEncoder
	forest  *regressionForest
	mse     float64
}

// New trains a forecaster from historical records. It fails when there is
// nothing to train on; callers treat that as fatal at startup.
func New(records []models.ProductHistoryRecord, cfg models.ForestConfig) (*DemandForecaster, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no training records")
	}
	if cfg.Trees <= 0 {
		cfg.Trees = 100
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 12
	}
	if cfg.MinLeaf <= 0 {
		cfg.MinLeaf = 2
	}

	categories := make([]string, len(records))
	for i, r := range records {
		categories[i] = r.Category
	}
	encoder := newFeatureEncoder(categories)

	features := make([][]float64, len(records))
	targets := make([]float64, len(records))
	for i, r := range records {
		features[i] = encoder.encode(r.CostPrice, r.SellingPrice, r.UnitsSold, r.CustomerRating, r.Category)
		targets[i] = r.DemandForecast
	}

	// fixed seed keeps the split and the bagging reproducible across runs
	rng := rand.New(rand.NewSource(trainSeed))
	order := rng.Perm(len(records))
	testSize := int(float64(len(records)) * testFraction)
	testIdx := order[:testSize]
	trainIdx := order[testSize:]

	trainFeatures := make([][]float64, len(trainIdx))
	trainTargets := make([]float64, len(trainIdx))
	for i, idx := range trainIdx {
		trainFeatures[i] = features[idx]
		trainTargets[i] = targets[idx]
	}

	forest := fitForest(trainFeatures, trainTargets, cfg.Trees, cfg.MaxDepth, cfg.MinLeaf, rng)

	f := &DemandForecaster{encoder: encoder, forest: forest}

	// held-out MSE is diagnostic only; a poor score does not gate startup
	if len(testIdx) > 0 {
		sum := 0.0
		for _, idx := range testIdx {
			d := forest.predict(features[idx]) - targets[idx]
			sum += d * d
		}
		f.mse = sum / float64(len(testIdx))
		log.Printf("demand forecaster trained on %d records, holdout MSE: %.2f", len(trainIdx), f.mse)
	} else {
		log.Printf("demand forecaster trained on %d records (dataset too small for a holdout split)", len(trainIdx))
	}

	return f, nil
}

// NewFromPath loads the historical dataset (local path or s3:// URI) and
// trains on it.
func NewFromPath(ctx context.Context, path string, cfg models.ForestConfig) (*DemandForecaster, error) {
	records, err := dataset.LoadProductHistory(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading product history: %w", err)
	}
	return New(records, cfg)
}

// Estimate returns the raw predicted demand, in the units of the training
// target. ok is false when no estimate is available; the caller decides the
// fallback.
func (f *DemandForecaster) Estimate(product models.ProductFeatures) (float64, bool) {
	if f == nil || f.forest == nil || len(f.forest.trees) == 0 {
		return 0, false
	}
	vec := f.encoder.encode(product.CostPrice, product.SellingPrice, product.UnitsSold, product.CustomerRating, product.Category)
	return f.forest.predict(vec), true
}

// MSE reports the mean squared error measured on the held-out split.
func (f *DemandForecaster) MSE() float64 {
	return f.mse
}
