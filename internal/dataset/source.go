package dataset

import (
	"context"

	"pricepilot/internal/models"
)

// FileBookingSource re-reads the booking dataset from its path on every
// load, so menu pricing always sees the current file contents.
type FileBookingSource struct {
	path string
}

func NewBookingSource(path string) *FileBookingSource {
	return &FileBookingSource{path: path}
}

func (s *FileBookingSource) LoadBookings(ctx context.Context) ([]models.Booking, error) {
	return LoadBookings(ctx, s.path)
}
