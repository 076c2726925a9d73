package product

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
)

type ListProductsQuery struct{}

func HandleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := mediator.Send[ListProductsQuery, []Product](r.Context(), ListProductsQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, products)
}

type ListProductsQueryHandler struct {
	db *sql.DB
}

func NewListProductsQueryHandler(db *sql.DB) *ListProductsQueryHandler {
	return &ListProductsQueryHandler{db}
}

func (h *ListProductsQueryHandler) Handle(ctx context.Context, _ ListProductsQuery) ([]Product, error) {
	const query = `
		SELECT
			product_id, product_name, price
		FROM
			product
		ORDER BY
			product_id;`

	products, err := tql.Query[Product](ctx, h.db, query)
	if err != nil {
		return nil, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to list products"))
	}

	return products, nil
}
