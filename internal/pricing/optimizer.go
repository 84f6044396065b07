package pricing

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"pricepilot/internal/models"
)

// category markup starting points; anything unlisted falls back to defaultMarkup
var categoryMarkups = map[string]float64{
	"food & beverages": 0.65,
	"electronics":      0.45,
	"apparel":          0.60,
	"health":           0.50,
	"fitness":          0.40,
	"outdoor & sports": 0.45,
	"home automation":  0.55,
	"wearables":        0.50,
	"office supplies":  0.40,
	"pet supplies":     0.50,
	"transportation":   0.35,
	"accessories":      0.55,
}

const (
	defaultMarkup   = 0.45
	maxTotalMarkup  = 1.20
	minTotalMarkup  = 0.10
	minProfitFactor = 1.10 // floor: at least 10% over cost
	maxPriceFactor  = 1.50 // cap: at most 50% over the current selling price
	priceJitter     = 0.02 // ±2% variation on the computed price
)

// PriceOptimizer suggests a selling price from product attributes using the
// category markup table plus rating and volume bonuses. It is stateless apart
// from its random source, so a single instance serves concurrent callers.
type PriceOptimizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPriceOptimizer() *PriceOptimizer {
	return NewPriceOptimizerWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewPriceOptimizerWithSource pins the perturbation source, letting tests get
// reproducible prices.
func NewPriceOptimizerWithSource(src rand.Source) *PriceOptimizer {
	return &PriceOptimizer{rng: rand.New(src)}
}

// Estimate returns the suggested price rounded to 2 decimal places. The
// result is bounded below by the minimum-profit floor and above by the cap on
// the current selling price; when the floor exceeds the cap the floor wins.
func (o *PriceOptimizer) Estimate(product models.ProductFeatures) float64 {
	category := strings.TrimSpace(strings.ToLower(product.Category))
	baseMarkup, ok := categoryMarkups[category]
	if !ok {
		baseMarkup = defaultMarkup
	}

	// rating premium: scales from 0 to 20% as the rating moves from 3.0 to 5.0
	ratingBonus := 0.0
	if product.CustomerRating >= 3.0 {
		ratingBonus = math.Max(0, (product.CustomerRating-3.0)/2.0*0.20)
	}

	// strong sales justify pricing higher; tiers are exclusive, highest first
	volumeBonus := 0.0
	switch {
	case product.UnitsSold > 200:
		volumeBonus = 0.05
	case product.UnitsSold > 100:
		volumeBonus = 0.02
	}

	totalMarkup := baseMarkup + ratingBonus + volumeBonus
	totalMarkup = math.Min(totalMarkup, maxTotalMarkup)
	totalMarkup = math.Max(totalMarkup, minTotalMarkup)

	price := product.CostPrice * (1 + totalMarkup)
	price *= 1 + o.jitter()

	floor := product.CostPrice * minProfitFactor
	cap := product.SellingPrice * maxPriceFactor
	price = math.Max(floor, math.Min(price, cap))

	return round2(price)
}

func (o *PriceOptimizer) jitter() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rng.Float64()*2*priceJitter - priceJitter
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
