package product

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
)

type GetProductQuery struct {
	ProductID int64
}

func HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := core.URLParamID(r, "id", "Product not found")
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	product, err := mediator.Send[GetProductQuery, Product](r.Context(), GetProductQuery{ProductID: productID})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, product)
}

type GetProductQueryHandler struct {
	db *sql.DB
}

func NewGetProductQueryHandler(db *sql.DB) *GetProductQueryHandler {
	return &GetProductQueryHandler{db}
}

func (h *GetProductQueryHandler) Handle(ctx context.Context, request GetProductQuery) (Product, error) {
	const query = `
		SELECT
			product_id, product_name, price
		FROM
			product
		WHERE
			product_id = $1;`

	product, err := tql.QueryFirst[Product](ctx, h.db, query, request.ProductID)
	switch {
	case err != nil && errors.Is(err, sql.ErrNoRows):
		return Product{}, core.NewNotFoundError(err, "Product not found")
	case err != nil:
		return Product{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to load product"))
	}

	return product, nil
}
