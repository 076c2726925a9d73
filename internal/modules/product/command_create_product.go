package product

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
	"github.com/shopspring/decimal"
)

type CreateProductCommand struct {
	ProductName string              `json:"product_name" validate:"required,max=255"`
	Price       decimal.NullDecimal `json:"price" validate:"omitempty,gte=0,lte=9999999999.99"`
}

func (c CreateProductCommand) Validate() error {
	return core.ValidateStruct(c)
}

func HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreateProductCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	product, err := mediator.Send[CreateProductCommand, Product](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	location := fmt.Sprintf("%s/%d", basePath, product.ProductID)
	core.WriteCreated(w, r, location, product)
}

type CreateProductCommandHandler struct {
	db *sql.DB
}

func NewCreateProductCommandHandler(db *sql.DB) *CreateProductCommandHandler {
	return &CreateProductCommandHandler{db}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, request CreateProductCommand) (Product, error) {
	const stmt = `
		INSERT INTO
			product (product_name, price)
		VALUES
			($1, $2)
		RETURNING
			product_id, product_name, price;`

	product, err := tql.QueryFirst[Product](ctx, h.db, stmt, request.ProductName, request.Price)
	if err != nil {
		return Product{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to create product"))
	}

	return product, nil
}
