package forecast

import (
	"sort"
	"strings"
)

// numeric feature order: cost_price, selling_price, units_sold,
// customer_rating, then one one-hot column per known category
const numNumericFeatures = 4

// featureEncoder maps a product record onto the fixed-width vector the trees
// were grown against. Categories are learned from the training set; a
// category never seen in training encodes as an all-zero block rather than an
// error.
type featureEncoder struct {
	categories []string
	index      map[string]int
}

func newFeatureEncoder(categories []string) *featureEncoder {
	seen := make(map[string]bool)
	var unique []string
	for _, c := range categories {
		c = normalizeCategory(c)
		if !seen[c] {
			seen[c] = true
			unique = append(unique, c)
		}
	}
	sort.Strings(unique)

	index := make(map[string]int, len(unique))
	for i, c := range unique {
		index[c] = i
	}
	return &featureEncoder{categories: unique, index: index}
}

func (e *featureEncoder) width() int {
	return numNumericFeatures + len(e.categories)
}

func (e *featureEncoder) encode(costPrice, sellingPrice float64, unitsSold int, rating float64, category string) []float64 {
	vec := make([]float64, e.width())
	vec[0] = costPrice
	vec[1] = sellingPrice
	vec[2] = float64(unitsSold)
	vec[3] = rating
	if i, ok := e.index[normalizeCategory(category)]; ok {
		vec[numNumericFeatures+i] = 1
	}
	return vec
}

func normalizeCategory(c string) string {
	return strings.TrimSpace(strings.ToLower(c))
}
