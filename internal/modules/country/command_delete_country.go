package country

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
)

type DeleteCountryCommand struct {
	CountryID int64
}

func HandleDeleteCountry(w http.ResponseWriter, r *http.Request) {
	countryID, err := core.URLParamID(r, "id", "Country not found")
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	_, err = mediator.Send[DeleteCountryCommand, Country](r.Context(), DeleteCountryCommand{CountryID: countryID})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteMessage(w, r, "Country deleted successfully")
}

type DeleteCountryCommandHandler struct {
	db *sql.DB
}

func NewDeleteCountryCommandHandler(db *sql.DB) *DeleteCountryCommandHandler {
	return &DeleteCountryCommandHandler{db}
}

func (h *DeleteCountryCommandHandler) Handle(ctx context.Context, request DeleteCountryCommand) (Country, error) {
	const stmt = `
		DELETE FROM
			country
		WHERE
			country_id = $1
		RETURNING
			country_id, country_name, region_id;`

	country, err := tql.QueryFirst[Country](ctx, h.db, stmt, request.CountryID)
	switch {
	case err != nil && errors.Is(err, sql.ErrNoRows):
		return Country{}, core.NewNotFoundError(err, "Country not found")
	case err != nil:
		return Country{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to delete country"))
	}

	return country, nil
}
