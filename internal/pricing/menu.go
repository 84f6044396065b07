package pricing

import (
	"math"
	"time"

	"pricepilot/internal/models"
)

// share of the day's headcount expected to show up per meal service
var mealDemandShares = map[string]float64{
	models.MealTypeBreakfast: 0.40,
	models.MealTypeLunch:     0.50,
	models.MealTypeDinner:    0.45,
}

const (
	defaultMealShare  = 0.40
	menuBaseMarkup    = 0.35
	weekendBonus      = 0.05
	demandSurgeMarkup = 0.10
	surgeThreshold    = 100 // strictly above triggers the surge markup
	minMenuMarkup     = 0.15
	maxMenuMarkup     = 0.60
)

// Headcount sums the guests of all bookings active on the target date.
// Check-in day counts, checkout day does not.
func Headcount(bookings []models.Booking, target time.Time) int {
	total := 0
	for _, b := range bookings {
		if b.ActiveOn(target) {
			total += b.GuestCount
		}
	}
	return total
}

// EstimateMealDemand converts a headcount into the expected covers for one
// meal service. Unrecognised meal types get the default share.
func EstimateMealDemand(headcount int, mealType string) int {
	share, ok := mealDemandShares[mealType]
	if !ok {
		share = defaultMealShare
	}
	return int(float64(headcount) * share)
}

// MenuPricer applies the day-of-week and demand-surge markup rule to a menu
// item's base price.
type MenuPricer struct{}

func NewMenuPricer() *MenuPricer {
	return &MenuPricer{}
}

// OptimalPrice returns the marked-up price rounded to 2 decimal places. The
// markup always lands inside [0.15, 0.60].
func (mp *MenuPricer) OptimalPrice(basePrice float64, expectedDemand int, date time.Time) float64 {
	markup := menuBaseMarkup

	if day := date.Weekday(); day == time.Saturday || day == time.Sunday {
		markup += weekendBonus
	}
	if expectedDemand > surgeThreshold {
		markup += demandSurgeMarkup
	}

	markup = math.Min(markup, maxMenuMarkup)
	markup = math.Max(markup, minMenuMarkup)

	return round2(basePrice * (1 + markup))
}

// PriceMenu prices every item against the booking set's headcount for the
// target date. Results are computed fresh per call; nothing is cached.
func PriceMenu(target time.Time, bookings []models.Booking, items []models.MenuItemRequest) []models.MenuPricingResult {
	headcount := Headcount(bookings, target)
	pricer := NewMenuPricer()

	results := make([]models.MenuPricingResult, 0, len(items))
	for _, item := range items {
		demand := EstimateMealDemand(headcount, item.MealType)
		price := pricer.OptimalPrice(item.BasePrice, demand, target)
		results = append(results, models.MenuPricingResult{
			Name:           item.Name,
			BasePrice:      item.BasePrice,
			MealType:       item.MealType,
			OptimizedPrice: price,
			ExpectedDemand: demand,
			Revenue:        round2(price * float64(demand)),
		})
	}
	return results
}
