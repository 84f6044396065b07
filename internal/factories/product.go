package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"

	"pricepilot/internal/models"
)

var fake = faker.New()

var productCategories = []string{
	"Food & Beverages", "Electronics", "Apparel", "Health", "Fitness",
	"Outdoor & Sports", "Home Automation", "Wearables", "Office Supplies",
	"Pet Supplies", "Transportation", "Accessories",
}

type ProductFactory struct{}

// CreateProduct generates a plausible marketplace product for seeding demos
// and tests. Estimator outputs are left unset; they are produced on create.
func (pf *ProductFactory) CreateProduct(supplierID int) models.Product {
	costPrice := fake.Float64(2, 5, 200)
	return models.Product{
		Name:           fake.Company().Name() + " " + fake.Lorem().Word(),
		Description:    fake.Lorem().Sentence(10),
		CostPrice:      costPrice,
		SellingPrice:   costPrice * (1.2 + rand.Float64()),
		Category:       productCategories[rand.Intn(len(productCategories))],
		StockAvailable: rand.Intn(500) + 10,
		UnitsSold:      rand.Intn(300),
		CustomerRating: fake.Float64(1, 1, 5),
		SupplierID:     supplierID,
	}
}

// CreateHistoryRecord generates a training row whose demand target follows
// the product's sales volume and rating, so a forest trained on seeded data
// picks up a learnable signal.
func (pf *ProductFactory) CreateHistoryRecord() models.ProductHistoryRecord {
	product := pf.CreateProduct(0)
	demand := float64(product.UnitsSold)*0.8 + product.CustomerRating*20 + rand.Float64()*10
	return models.ProductHistoryRecord{
		CostPrice:      product.CostPrice,
		SellingPrice:   product.SellingPrice,
		UnitsSold:      product.UnitsSold,
		CustomerRating: product.CustomerRating,
		Category:       product.Category,
		DemandForecast: demand,
	}
}
