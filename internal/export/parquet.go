// Package export writes the priced product catalogue to parquet for offline
// analysis.
package export

import (
	"context"
	"fmt"
	"log"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"

	"pricepilot/internal/repositories"
)

type productRow struct {
	ID             int64   `parquet:"name=id, type=INT64"`
	Name           string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Category       string  `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8"`
	CostPrice      float64 `parquet:"name=cost_price, type=DOUBLE"`
	SellingPrice   float64 `parquet:"name=selling_price, type=DOUBLE"`
	StockAvailable int64   `parquet:"name=stock_available, type=INT64"`
	UnitsSold      int64   `parquet:"name=units_sold, type=INT64"`
	CustomerRating float64 `parquet:"name=customer_rating, type=DOUBLE"`
	OptimizedPrice float64 `parquet:"name=optimized_price, type=DOUBLE"`
	DemandForecast float64 `parquet:"name=demand_forecast, type=DOUBLE"`
}

// Products writes every product row to a local parquet file. Missing
// estimator outputs export as zero.
func Products(ctx context.Context, repo repositories.ProductRepository, path string) (int, error) {
	products, err := repo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading products: %w", err)
	}

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(productRow), 4)
	if err != nil {
		return 0, fmt.Errorf("creating parquet writer: %w", err)
	}

	for _, p := range products {
		row := productRow{
			ID:             int64(p.ID),
			Name:           p.Name,
			Category:       p.Category,
			CostPrice:      p.CostPrice,
			SellingPrice:   p.SellingPrice,
			StockAvailable: int64(p.StockAvailable),
			UnitsSold:      int64(p.UnitsSold),
			CustomerRating: p.CustomerRating,
		}
		if p.OptimizedPrice != nil {
			row.OptimizedPrice = *p.OptimizedPrice
		}
		if p.DemandForecast != nil {
			row.DemandForecast = *p.DemandForecast
		}
		if err := pw.Write(row); err != nil {
			return 0, fmt.Errorf("writing product %d: %w", p.ID, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return 0, fmt.Errorf("finalising parquet file: %w", err)
	}

	log.Printf("exported %d products to %s", len(products), path)
	return len(products), nil
}
