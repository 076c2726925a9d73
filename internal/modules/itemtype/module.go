package itemtype

import (
	"database/sql"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

func RegisterHandlers(db *sql.DB) error {
	err := mediator.RegisterRequestHandler[ListItemTypesQuery, []ItemType](
		NewListItemTypesQueryHandler(db),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[GetItemTypeQuery, ItemType](
		NewGetItemTypeQueryHandler(db),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[CreateItemTypeCommand, ItemType](
		NewCreateItemTypeCommandHandler(db),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[UpdateItemTypeCommand, ItemType](
		NewUpdateItemTypeCommandHandler(db),
	)
	if err != nil {
		return err
	}

	return mediator.RegisterRequestHandler[DeleteItemTypeCommand, ItemType](
		NewDeleteItemTypeCommandHandler(db),
	)
}

func Routes(r chi.Router) {
	r.Get(basePath, HandleListItemTypes)
	r.Post(basePath, HandleCreateItemType)
	r.Get(basePath+"/{id}", HandleGetItemType)
	r.Put(basePath+"/{id}", HandleUpdateItemType)
	r.Delete(basePath+"/{id}", HandleDeleteItemType)
}
