package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pricepilot/internal/models"
	"pricepilot/internal/repositories"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) BulkCreate(ctx context.Context, products []*models.Product) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"products"},
		[]string{
			"name", "description", "cost_price", "selling_price", "category",
			"stock_available", "units_sold", "customer_rating",
			"demand_forecast", "optimized_price", "supplier_id",
		},
		pgx.CopyFromSlice(len(products), func(i int) ([]interface{}, error) {
			return []interface{}{
				products[i].Name,
				products[i].Description,
				products[i].CostPrice,
				products[i].SellingPrice,
				products[i].Category,
				products[i].StockAvailable,
				products[i].UnitsSold,
				products[i].CustomerRating,
				products[i].DemandForecast,
				products[i].OptimizedPrice,
				products[i].SupplierID,
			}, nil
		}),
	)
	return err
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
        INSERT INTO products (
            name, description, cost_price, selling_price, category,
            stock_available, units_sold, customer_rating, demand_forecast,
            optimized_price, supplier_id
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
        ) RETURNING id
    `
	return r.pool.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.CostPrice,
		product.SellingPrice,
		product.Category,
		product.StockAvailable,
		product.UnitsSold,
		product.CustomerRating,
		product.DemandForecast,
		product.OptimizedPrice,
		product.SupplierID,
	).Scan(&product.ID)
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*models.Product, error) {
	query := `
        SELECT
            id, name, description, cost_price, selling_price, category,
            stock_available, units_sold, customer_rating, demand_forecast,
            optimized_price, supplier_id
        FROM products
        ORDER BY id
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.CostPrice,
			&product.SellingPrice,
			&product.Category,
			&product.StockAvailable,
			&product.UnitsSold,
			&product.CustomerRating,
			&product.DemandForecast,
			&product.OptimizedPrice,
			&product.SupplierID,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	query := `
        SELECT
            id, name, description, cost_price, selling_price, category,
            stock_available, units_sold, customer_rating, demand_forecast,
            optimized_price, supplier_id
        FROM products
        WHERE id = $1
    `
	product := &models.Product{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.CostPrice,
		&product.SellingPrice,
		&product.Category,
		&product.StockAvailable,
		&product.UnitsSold,
		&product.CustomerRating,
		&product.DemandForecast,
		&product.OptimizedPrice,
		&product.SupplierID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
        UPDATE products SET
            name = $1, description = $2, cost_price = $3, selling_price = $4,
            category = $5, stock_available = $6, units_sold = $7,
            customer_rating = $8, demand_forecast = $9, optimized_price = $10
        WHERE id = $11
    `
	tag, err := r.pool.Exec(ctx, query,
		product.Name,
		product.Description,
		product.CostPrice,
		product.SellingPrice,
		product.Category,
		product.StockAvailable,
		product.UnitsSold,
		product.CustomerRating,
		product.DemandForecast,
		product.OptimizedPrice,
		product.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	return count, err
}
