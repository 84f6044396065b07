package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"pricepilot/internal/models"
)

const dateLayout = "2006-01-02"

// LoadBookings reads the hotel booking metadata CSV. Dates are day-granular.
func LoadBookings(ctx context.Context, path string) ([]models.Booking, error) {
	src, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	reader := csv.NewReader(src)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	col, err := columnIndex(header, "booking_id", "check_in_date", "check_out_date", "guest_count", "room_number")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var bookings []models.Booking
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		checkIn, err := time.Parse(dateLayout, fields[col["check_in_date"]])
		if err != nil {
			return nil, fmt.Errorf("bad check_in_date %q: %w", fields[col["check_in_date"]], err)
		}
		checkOut, err := time.Parse(dateLayout, fields[col["check_out_date"]])
		if err != nil {
			return nil, fmt.Errorf("bad check_out_date %q: %w", fields[col["check_out_date"]], err)
		}
		guests, err := strconv.Atoi(fields[col["guest_count"]])
		if err != nil {
			return nil, fmt.Errorf("bad guest_count %q: %w", fields[col["guest_count"]], err)
		}

		bookings = append(bookings, models.Booking{
			BookingID:    fields[col["booking_id"]],
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			GuestCount:   guests,
			RoomNumber:   fields[col["room_number"]],
		})
	}

	return bookings, nil
}
