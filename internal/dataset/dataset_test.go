package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadProductHistory(t *testing.T) {
	// columns intentionally out of the struct's order
	path := writeTemp(t, "products.csv",
		"category,cost_price,selling_price,units_sold,customer_rating,demand_forecast\n"+
			"electronics,10.5,20,150,4.2,310\n"+
			"apparel,8,15.25,90,3.9,120.5\n")

	records, err := LoadProductHistory(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadProductHistory: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	if first.Category != "electronics" || first.CostPrice != 10.5 || first.UnitsSold != 150 {
		t.Errorf("first record mismatch: %+v", first)
	}
	if records[1].DemandForecast != 120.5 {
		t.Errorf("demand_forecast = %v, want 120.5", records[1].DemandForecast)
	}
}

func TestLoadProductHistoryMissingColumn(t *testing.T) {
	path := writeTemp(t, "products.csv",
		"cost_price,selling_price,units_sold,customer_rating,category\n"+
			"10,20,1,4,electronics\n")

	if _, err := LoadProductHistory(context.Background(), path); err == nil {
		t.Fatal("expected an error for a missing demand_forecast column")
	}
}

func TestLoadProductHistoryBadNumber(t *testing.T) {
	path := writeTemp(t, "products.csv",
		"cost_price,selling_price,units_sold,customer_rating,category,demand_forecast\n"+
			"ten,20,1,4,electronics,5\n")

	if _, err := LoadProductHistory(context.Background(), path); err == nil {
		t.Fatal("expected an error for a non-numeric cost_price")
	}
}

func TestLoadBookings(t *testing.T) {
	path := writeTemp(t, "bookings.csv",
		"booking_id,check_in_date,check_out_date,guest_count,room_number\n"+
			"bk-1,2024-01-01,2024-01-05,4,101\n")

	bookings, err := LoadBookings(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadBookings: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("got %d bookings, want 1", len(bookings))
	}

	b := bookings[0]
	wantIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !b.CheckInDate.Equal(wantIn) {
		t.Errorf("check-in = %v, want %v", b.CheckInDate, wantIn)
	}
	if b.GuestCount != 4 || b.RoomNumber != "101" {
		t.Errorf("booking mismatch: %+v", b)
	}
}

func TestLoadBookingsBadDate(t *testing.T) {
	path := writeTemp(t, "bookings.csv",
		"booking_id,check_in_date,check_out_date,guest_count,room_number\n"+
			"bk-1,01/02/2024,2024-01-05,4,101\n")

	if _, err := LoadBookings(context.Background(), path); err == nil {
		t.Fatal("expected an error for a malformed check_in_date")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(context.Background(), filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestSplitS3Path(t *testing.T) {
	bucket, key, err := splitS3Path("s3://my-bucket/data/products.csv")
	if err != nil {
		t.Fatalf("splitS3Path: %v", err)
	}
	if bucket != "my-bucket" || key != "data/products.csv" {
		t.Errorf("got %q %q", bucket, key)
	}

	for _, bad := range []string{"s3://", "s3://bucket", "s3://bucket/"} {
		if _, _, err := splitS3Path(bad); err == nil {
			t.Errorf("expected an error for %q", bad)
		}
	}
}
