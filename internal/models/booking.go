package models

import "time"

// Booking is one row of the hotel booking metadata. The stay covers the
// half-open interval [CheckInDate, CheckOutDate): a guest counts towards a
// date's headcount from check-in day up to, but excluding, checkout day.
type Booking struct {
	BookingID    string    `json:"booking_id"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	GuestCount   int       `json:"guest_count"`
	RoomNumber   string    `json:"room_number"`
}

// ActiveOn reports whether the booking occupies a room on the given date.
func (b Booking) ActiveOn(date time.Time) bool {
	return !b.CheckInDate.After(date) && b.CheckOutDate.After(date)
}
