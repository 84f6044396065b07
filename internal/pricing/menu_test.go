package pricing

import (
	"testing"
	"time"

	"pricepilot/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestHeadcountHalfOpenInterval(t *testing.T) {
	bookings := []models.Booking{
		{BookingID: "b1", CheckInDate: day("2024-01-01"), CheckOutDate: day("2024-01-05"), GuestCount: 4},
	}

	cases := []struct {
		target string
		want   int
	}{
		{"2023-12-31", 0},
		{"2024-01-01", 4}, // check-in day counts
		{"2024-01-03", 4},
		{"2024-01-04", 4},
		{"2024-01-05", 0}, // checkout day does not
		{"2024-01-06", 0},
	}
	for _, tc := range cases {
		if got := Headcount(bookings, day(tc.target)); got != tc.want {
			t.Errorf("headcount on %s = %d, want %d", tc.target, got, tc.want)
		}
	}
}

func TestHeadcountSumsOverlappingBookings(t *testing.T) {
	bookings := []models.Booking{
		{BookingID: "b1", CheckInDate: day("2024-01-01"), CheckOutDate: day("2024-01-05"), GuestCount: 2},
		{BookingID: "b2", CheckInDate: day("2024-01-02"), CheckOutDate: day("2024-01-04"), GuestCount: 3},
		{BookingID: "b3", CheckInDate: day("2024-01-04"), CheckOutDate: day("2024-01-06"), GuestCount: 5},
	}

	if got := Headcount(bookings, day("2024-01-03")); got != 5 {
		t.Errorf("headcount = %d, want 5", got)
	}
	if got := Headcount(bookings, day("2024-01-04")); got != 7 {
		t.Errorf("headcount = %d, want 7", got)
	}
	if got := Headcount(nil, day("2024-01-03")); got != 0 {
		t.Errorf("headcount of no bookings = %d, want 0", got)
	}
}

func TestEstimateMealDemandShares(t *testing.T) {
	cases := []struct {
		mealType string
		want     int
	}{
		{models.MealTypeBreakfast, 80},  // 200 * 0.40
		{models.MealTypeLunch, 100},     // 200 * 0.50
		{models.MealTypeDinner, 90},     // 200 * 0.45
		{"afternoon tea", 80},           // unknown falls back to 0.40
	}
	for _, tc := range cases {
		if got := EstimateMealDemand(200, tc.mealType); got != tc.want {
			t.Errorf("demand for %q = %d, want %d", tc.mealType, got, tc.want)
		}
	}
}

func TestEstimateMealDemandTruncates(t *testing.T) {
	// 15 * 0.45 = 6.75, truncated not rounded
	if got := EstimateMealDemand(15, models.MealTypeDinner); got != 6 {
		t.Errorf("demand = %d, want 6", got)
	}
}

func TestOptimalPriceMarkups(t *testing.T) {
	pricer := NewMenuPricer()
	saturday := day("2024-01-06")
	monday := day("2024-01-08")

	cases := []struct {
		name   string
		demand int
		date   time.Time
		want   float64
	}{
		{"weekday base", 50, monday, 13.50},
		{"weekend bonus", 50, saturday, 14.00},
		{"surge", 101, monday, 14.50},
		{"demand at threshold is not a surge", 100, monday, 13.50},
		{"weekend surge", 150, saturday, 15.00},
	}
	for _, tc := range cases {
		if got := pricer.OptimalPrice(10, tc.demand, tc.date); got != tc.want {
			t.Errorf("%s: price = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPriceMenuSaturdayLunch(t *testing.T) {
	// headcount 200 on a Saturday: lunch demand 100, no surge, weekend markup 0.40
	bookings := []models.Booking{
		{BookingID: "b1", CheckInDate: day("2024-01-05"), CheckOutDate: day("2024-01-08"), GuestCount: 200},
	}
	items := []models.MenuItemRequest{
		{Name: "paneer thali", MealType: models.MealTypeLunch, BasePrice: 10},
	}

	results := PriceMenu(day("2024-01-06"), bookings, items)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	r := results[0]
	if r.ExpectedDemand != 100 {
		t.Errorf("expected demand = %d, want 100", r.ExpectedDemand)
	}
	if r.OptimizedPrice != 14.00 {
		t.Errorf("optimized price = %v, want 14.00", r.OptimizedPrice)
	}
	if r.Revenue != 1400.00 {
		t.Errorf("revenue = %v, want 1400.00", r.Revenue)
	}
}

func TestPriceMenuPricesEveryItem(t *testing.T) {
	bookings := []models.Booking{
		{BookingID: "b1", CheckInDate: day("2024-01-08"), CheckOutDate: day("2024-01-10"), GuestCount: 300},
	}
	items := []models.MenuItemRequest{
		{Name: "idli", MealType: models.MealTypeBreakfast, BasePrice: 4},
		{Name: "biryani", MealType: models.MealTypeDinner, BasePrice: 12},
	}

	results := PriceMenu(day("2024-01-08"), bookings, items)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// breakfast: 120 covers, surge applies on a Monday: markup 0.45
	if results[0].ExpectedDemand != 120 || results[0].OptimizedPrice != 5.80 {
		t.Errorf("breakfast = %+v, want demand 120 price 5.80", results[0])
	}
	// dinner: 135 covers, surge: 12 * 1.45 = 17.40
	if results[1].ExpectedDemand != 135 || results[1].OptimizedPrice != 17.40 {
		t.Errorf("dinner = %+v, want demand 135 price 17.40", results[1])
	}
	if results[1].Revenue != 2349.00 {
		t.Errorf("dinner revenue = %v, want 2349.00", results[1].Revenue)
	}
}
