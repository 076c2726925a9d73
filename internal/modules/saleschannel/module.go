package saleschannel

import (
	"database/sql"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

func RegisterHandlers(db *sql.DB) error {
	err := mediator.RegisterRequestHandler[ListSalesChannelsQuery, []SalesChannel](
		NewListSalesChannelsQueryHandler(db),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[GetSalesChannelQuery, SalesChannel](
		NewGetSalesChannelQueryHandler(db),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[CreateSalesChannelCommand, SalesChannel](
		NewCreateSalesChannelCommandHandler(db),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[UpdateSalesChannelCommand, SalesChannel](
		NewUpdateSalesChannelCommandHandler(db),
	)
	if err != nil {
		return err
	}

	return mediator.RegisterRequestHandler[DeleteSalesChannelCommand, SalesChannel](
		NewDeleteSalesChannelCommandHandler(db),
	)
}

func Routes(r chi.Router) {
	r.Get(basePath, HandleListSalesChannels)
	r.Post(basePath, HandleCreateSalesChannel)
	r.Get(basePath+"/{id}", HandleGetSalesChannel)
	r.Put(basePath+"/{id}", HandleUpdateSalesChannel)
	r.Delete(basePath+"/{id}", HandleDeleteSalesChannel)
}
