package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

var productCategories = []string{"cars", "cups", "dresses", "toys", "accessories", "utensils", "guns"}

var productAdjectives = []string{
	"amber", "bold", "brisk", "classic", "cozy", "crimson", "daring", "deluxe",
	"eager", "elegant", "fancy", "fierce", "gentle", "golden", "handy", "humble",
	"jolly", "lively", "lucky", "mellow", "modern", "nimble", "noble", "polished",
	"quiet", "rapid", "royal", "rustic", "silver", "sleek", "sturdy", "sunny",
	"swift", "tiny", "urban", "vintage", "vivid", "wild", "witty", "zesty",
}

const maxPriceCents = 150000

type productRow struct {
	ProductName string              `db:"product_name"`
	Price       decimal.NullDecimal `db:"price"`
}

func productName(r *rand.Rand) string {
	adjective := productAdjectives[r.IntN(len(productAdjectives))]
	category := productCategories[r.IntN(len(productCategories))]

	return fmt.Sprintf("%s %s", adjective, category)
}

func newProducts(r *rand.Rand, count int) []productRow {
	products := make([]productRow, count)
	for i := range products {
		products[i] = productRow{
			ProductName: productName(r),
			Price: decimal.NullDecimal{
				Decimal: decimal.New(int64(r.IntN(maxPriceCents)), -2),
				Valid:   true,
			},
		}
	}

	return products
}
