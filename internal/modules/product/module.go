package product

import (
	"database/sql"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

func RegisterHandlers(db *sql.DB) error {
	err := mediator.RegisterRequestHandler[ListProductsQuery, []Product](
		NewListProductsQueryHandler(db),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[GetProductQuery, Product](
		NewGetProductQueryHandler(db),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[CreateProductCommand, Product](
		NewCreateProductCommandHandler(db),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[UpdateProductCommand, Product](
		NewUpdateProductCommandHandler(db),
	)
	if err != nil {
		return err
	}

	return mediator.RegisterRequestHandler[DeleteProductCommand, Product](
		NewDeleteProductCommandHandler(db),
	)
}

func Routes(r chi.Router) {
	r.Get(basePath, HandleListProducts)
	r.Post(basePath, HandleCreateProduct)
	r.Get(basePath+"/{id}", HandleGetProduct)
	r.Put(basePath+"/{id}", HandleUpdateProduct)
	r.Delete(basePath+"/{id}", HandleDeleteProduct)
}
