package product

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
	"github.com/shopspring/decimal"
)

// UpdateProductCommand replaces every mutable column. An omitted price is
// written as NULL.
type UpdateProductCommand struct {
	ProductID   int64               `json:"-"`
	ProductName string              `json:"product_name" validate:"required,max=255"`
	Price       decimal.NullDecimal `json:"price" validate:"omitempty,gte=0,lte=9999999999.99"`
}

func (c UpdateProductCommand) Validate() error {
	return core.ValidateStruct(c)
}

func HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := core.URLParamID(r, "id", "Product not found")
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	command, err := core.RequestBody[UpdateProductCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.ProductID = productID

	product, err := mediator.Send[UpdateProductCommand, Product](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, product)
}

type UpdateProductCommandHandler struct {
	db *sql.DB
}

func NewUpdateProductCommandHandler(db *sql.DB) *UpdateProductCommandHandler {
	return &UpdateProductCommandHandler{db}
}

func (h *UpdateProductCommandHandler) Handle(ctx context.Context, request UpdateProductCommand) (Product, error) {
	const stmt = `
		UPDATE
			product
		SET
			product_name = $1, price = $2
		WHERE
			product_id = $3
		RETURNING
			product_id, product_name, price;`

	product, err := tql.QueryFirst[Product](ctx, h.db, stmt, request.ProductName, request.Price, request.ProductID)
	switch {
	case err != nil && errors.Is(err, sql.ErrNoRows):
		return Product{}, core.NewNotFoundError(err, "Product not found")
	case err != nil:
		return Product{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to update product"))
	}

	return product, nil
}
