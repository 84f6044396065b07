package factories

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lucsky/cuid"

	"pricepilot/internal/models"
)

type BookingFactory struct{}

// CreateBooking generates a stay of 1-7 nights starting within the given
// window from the base date.
func (bf *BookingFactory) CreateBooking(base time.Time, windowDays int) models.Booking {
	checkIn := base.AddDate(0, 0, rand.Intn(windowDays))
	nights := rand.Intn(7) + 1
	return models.Booking{
		BookingID:    cuid.New(),
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, nights),
		GuestCount:   rand.Intn(4) + 1,
		RoomNumber:   fmt.Sprintf("%d%02d", rand.Intn(5)+1, rand.Intn(30)+1),
	}
}
