// Package ingest bulk-loads booking metadata from the CSV dataset into
// postgres so the pricing API can serve from the database instead of the
// file.
package ingest

import (
	"context"
	"fmt"
	"log"

	"github.com/schollz/progressbar/v3"

	"pricepilot/internal/dataset"
	"pricepilot/internal/models"
	"pricepilot/internal/repositories"
)

const batchSize = 500

// Bookings loads the CSV at path (local or s3://) and bulk-inserts it. With
// replace set, existing rows are truncated first.
func Bookings(ctx context.Context, path string, repo repositories.BookingRepository, replace bool) (int, error) {
	bookings, err := dataset.LoadBookings(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("loading bookings: %w", err)
	}
	if len(bookings) == 0 {
		return 0, nil
	}

	if replace {
		if err := repo.DeleteAll(ctx); err != nil {
			return 0, fmt.Errorf("clearing booking table: %w", err)
		}
	}

	bar := progressbar.Default(int64(len(bookings)), "ingesting bookings")
	for start := 0; start < len(bookings); start += batchSize {
		end := start + batchSize
		if end > len(bookings) {
			end = len(bookings)
		}

		batch := bookings[start:end]
		rows := make([]*models.Booking, len(batch))
		for i := range batch {
			rows[i] = &batch[i]
		}
		if err := repo.BulkCreate(ctx, rows); err != nil {
			return start, fmt.Errorf("inserting bookings %d-%d: %w", start, end, err)
		}
		_ = bar.Add(len(batch))
	}

	log.Printf("ingested %d bookings from %s", len(bookings), path)
	return len(bookings), nil
}
