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

type GetCountryQuery struct {
	CountryID int64
}

func HandleGetCountry(w http.ResponseWriter, r *http.Request) {
	countryID, err := core.URLParamID(r, "id", "Country not found")
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	country, err := mediator.Send[GetCountryQuery, Country](r.Context(), GetCountryQuery{CountryID: countryID})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, country)
}

type GetCountryQueryHandler struct {
	db *sql.DB
}

func NewGetCountryQueryHandler(db *sql.DB) *GetCountryQueryHandler {
	return &GetCountryQueryHandler{db}
}

func (h *GetCountryQueryHandler) Handle(ctx context.Context, request GetCountryQuery) (Country, error) {
	const query = `
		SELECT
			country_id, country_name, region_id
		FROM
			country
		WHERE
			country_id = $1;`

	country, err := tql.QueryFirst[Country](ctx, h.db, query, request.CountryID)
	switch {
	case err != nil && errors.Is(err, sql.ErrNoRows):
		return Country{}, core.NewNotFoundError(err, "Country not found")
	case err != nil:
		return Country{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to load country"))
	}

	return country, nil
}
