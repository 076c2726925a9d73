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

type DeleteProductCommand struct {
	ProductID int64
}

func HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := core.URLParamID(r, "id", "Product not found")
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	_, err = mediator.Send[DeleteProductCommand, Product](r.Context(), DeleteProductCommand{ProductID: productID})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteMessage(w, r, "Product deleted successfully")
}

type DeleteProductCommandHandler struct {
	db *sql.DB
}

func NewDeleteProductCommandHandler(db *sql.DB) *DeleteProductCommandHandler {
	return &DeleteProductCommandHandler{db}
}

func (h *DeleteProductCommandHandler) Handle(ctx context.Context, request DeleteProductCommand) (Product, error) {
	const stmt = `
		DELETE FROM
			product
		WHERE
			product_id = $1
		RETURNING
			product_id, product_name, price;`

	product, err := tql.QueryFirst[Product](ctx, h.db, stmt, request.ProductID)
	switch {
	case err != nil && errors.Is(err, sql.ErrNoRows):
		return Product{}, core.NewNotFoundError(err, "Product not found")
	case err != nil:
		return Product{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to delete product"))
	}

	return product, nil
}
