package repositories

import (
	"context"
	"errors"

	"pricepilot/internal/models"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetVerified(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type ProductRepository interface {
	BulkCreate(ctx context.Context, products []*models.Product) error
	Create(ctx context.Context, product *models.Product) error
	GetAll(ctx context.Context) ([]*models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type MenuItemRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	GetAll(ctx context.Context) ([]*models.MenuItem, error)
	Count(ctx context.Context) (int, error)
}

type BookingRepository interface {
	BulkCreate(ctx context.Context, bookings []*models.Booking) error
	GetAll(ctx context.Context) ([]models.Booking, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
