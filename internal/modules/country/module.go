package country

import (
	"database/sql"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

func RegisterHandlers(db *sql.DB) error {
	err := mediator.RegisterRequestHandler[ListCountriesQuery, []Country](
		NewListCountriesQueryHandler(db),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[GetCountryQuery, Country](
		NewGetCountryQueryHandler(db),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[CreateCountryCommand, Country](
		NewCreateCountryCommandHandler(db),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[UpdateCountryCommand, Country](
		NewUpdateCountryCommandHandler(db),
	)
	if err != nil {
		return err
	}

	return mediator.RegisterRequestHandler[DeleteCountryCommand, Country](
		NewDeleteCountryCommandHandler(db),
	)
}

func Routes(r chi.Router) {
	r.Get(basePath, HandleListCountries)
	r.Post(basePath, HandleCreateCountry)
	r.Get(basePath+"/{id}", HandleGetCountry)
	r.Put(basePath+"/{id}", HandleUpdateCountry)
	r.Delete(basePath+"/{id}", HandleDeleteCountry)
}
