package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"pricepilot/internal/models"
)

type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

func (r *MenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
        INSERT INTO menu_items (
            name, meal_type, base_price, optimized_price, expected_demand,
            revenue, date, supplier_id
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8
        ) RETURNING id
    `
	return r.pool.QueryRow(ctx, query,
		item.Name,
		item.MealType,
		item.BasePrice,
		item.OptimizedPrice,
		item.ExpectedDemand,
		item.Revenue,
		item.Date,
		item.SupplierID,
	).Scan(&item.ID)
}

func (r *MenuItemRepository) GetAll(ctx context.Context) ([]*models.MenuItem, error) {
	query := `
        SELECT
            id, name, meal_type, base_price, optimized_price,
            expected_demand, revenue, date, supplier_id
        FROM menu_items
        ORDER BY id
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		item := &models.MenuItem{}
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.MealType,
			&item.BasePrice,
			&item.OptimizedPrice,
			&item.ExpectedDemand,
			&item.Revenue,
			&item.Date,
			&item.SupplierID,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}
