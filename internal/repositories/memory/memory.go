// Package memory holds in-memory repository implementations used by tests
// and local development.
package memory

import (
	"context"
	"sync"

	"pricepilot/internal/models"
	"pricepilot/internal/repositories"
)

type UserRepository struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1, users: make(map[string]*models.User)}
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.Email] = &copied
	return nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *UserRepository) SetVerified(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			user.IsVerified = true
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *UserRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}

type ProductRepository struct {
	mu       sync.Mutex
	nextID   int
	products map[int]*models.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{nextID: 1, products: make(map[int]*models.Product)}
}

func (r *ProductRepository) BulkCreate(ctx context.Context, products []*models.Product) error {
	for _, p := range products {
		if err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = r.nextID
	r.nextID++
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *ProductRepository) GetAll(_ context.Context) ([]*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	products := make([]*models.Product, 0, len(r.products))
	for id := 1; id < r.nextID; id++ {
		if p, ok := r.products[id]; ok {
			copied := *p
			products = append(products, &copied)
		}
	}
	return products, nil
}

func (r *ProductRepository) GetByID(_ context.Context, id int) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *ProductRepository) Update(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *ProductRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.products), nil
}

type MenuItemRepository struct {
	mu     sync.Mutex
	nextID int
	items  []*models.MenuItem
}

func NewMenuItemRepository() *MenuItemRepository {
	return &MenuItemRepository{nextID: 1}
}

func (r *MenuItemRepository) Create(_ context.Context, item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

func (r *MenuItemRepository) GetAll(_ context.Context) ([]*models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]*models.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		copied := *item
		items = append(items, &copied)
	}
	return items, nil
}

func (r *MenuItemRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items), nil
}

type BookingRepository struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) BulkCreate(_ context.Context, bookings []*models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range bookings {
		r.bookings = append(r.bookings, *b)
	}
	return nil
}

func (r *BookingRepository) GetAll(_ context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *BookingRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings), nil
}

func (r *BookingRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = nil
	return nil
}
