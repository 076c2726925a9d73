package product

import (
	"github.com/shopspring/decimal"
)

const basePath = "/api/products"

func init() {
	// Prices are written as JSON numbers rather than strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ProductID   int64               `db:"product_id" json:"product_id"`
	ProductName string              `db:"product_name" json:"product_name"`
	Price       decimal.NullDecimal `db:"price" json:"price"`
}
