package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"pricepilot/internal/models"
)

// LoadProductHistory reads the historical product dataset used to train the
// demand forecaster. The CSV must carry a header row; column order does not
// matter.
func LoadProductHistory(ctx context.Context, path string) ([]models.ProductHistoryRecord, error) {
	src, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	reader := csv.NewReader(src)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	col, err := columnIndex(header, "cost_price", "selling_price", "units_sold", "customer_rating", "category", "demand_forecast")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var records []models.ProductHistoryRecord
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		costPrice, err := strconv.ParseFloat(fields[col["cost_price"]], 64)
		if err != nil {
			return nil, fmt.Errorf("bad cost_price %q: %w", fields[col["cost_price"]], err)
		}
		sellingPrice, err := strconv.ParseFloat(fields[col["selling_price"]], 64)
		if err != nil {
			return nil, fmt.Errorf("bad selling_price %q: %w", fields[col["selling_price"]], err)
		}
		unitsSold, err := strconv.Atoi(fields[col["units_sold"]])
		if err != nil {
			return nil, fmt.Errorf("bad units_sold %q: %w", fields[col["units_sold"]], err)
		}
		rating, err := strconv.ParseFloat(fields[col["customer_rating"]], 64)
		if err != nil {
			return nil, fmt.Errorf("bad customer_rating %q: %w", fields[col["customer_rating"]], err)
		}
		demand, err := strconv.ParseFloat(fields[col["demand_forecast"]], 64)
		if err != nil {
			return nil, fmt.Errorf("bad demand_forecast %q: %w", fields[col["demand_forecast"]], err)
		}

		records = append(records, models.ProductHistoryRecord{
			CostPrice:      costPrice,
			SellingPrice:   sellingPrice,
			UnitsSold:      unitsSold,
			CustomerRating: rating,
			Category:       fields[col["category"]],
			DemandForecast: demand,
		})
	}

	return records, nil
}

func columnIndex(header []string, required ...string) (map[string]int, error) {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return col, nil
}
