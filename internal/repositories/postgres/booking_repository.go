package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pricepilot/internal/models"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) BulkCreate(ctx context.Context, bookings []*models.Booking) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"booking_metadata"},
		[]string{"booking_id", "check_in_date", "check_out_date", "guest_count", "room_number"},
		pgx.CopyFromSlice(len(bookings), func(i int) ([]interface{}, error) {
			return []interface{}{
				bookings[i].BookingID,
				bookings[i].CheckInDate,
				bookings[i].CheckOutDate,
				bookings[i].GuestCount,
				bookings[i].RoomNumber,
			}, nil
		}),
	)
	return err
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]models.Booking, error) {
	query := `
        SELECT booking_id, check_in_date, check_out_date, guest_count, room_number
        FROM booking_metadata
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(&b.BookingID, &b.CheckInDate, &b.CheckOutDate, &b.GuestCount, &b.RoomNumber)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM booking_metadata").Scan(&count)
	return count, err
}

func (r *BookingRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE booking_metadata")
	return err
}
