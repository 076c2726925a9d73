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

type UpdateCountryCommand struct {
	CountryID   int64  `json:"-"`
	CountryName string `json:"country_name" validate:"required,max=255"`
	RegionID    *int64 `json:"region_id" validate:"required"`
}

func (c UpdateCountryCommand) Validate() error {
	return core.ValidateStruct(c)
}

func HandleUpdateCountry(w http.ResponseWriter, r *http.Request) {
	countryID, err := core.URLParamID(r, "id", "Country not found")
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	command, err := core.RequestBody[UpdateCountryCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.CountryID = countryID

	country, err := mediator.Send[UpdateCountryCommand, Country](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, country)
}

type UpdateCountryCommandHandler struct {
	db *sql.DB
}

func NewUpdateCountryCommandHandler(db *sql.DB) *UpdateCountryCommandHandler {
	return &UpdateCountryCommandHandler{db}
}

func (h *UpdateCountryCommandHandler) Handle(ctx context.Context, request UpdateCountryCommand) (Country, error) {
	const stmt = `
		UPDATE
			country
		SET
			country_name = $1, region_id = $2
		WHERE
			country_id = $3
		RETURNING
			country_id, country_name, region_id;`

	country, err := tql.QueryFirst[Country](ctx, h.db, stmt, request.CountryName, request.RegionID, request.CountryID)
	switch {
	case err != nil && errors.Is(err, sql.ErrNoRows):
		return Country{}, core.NewNotFoundError(err, "Country not found")
	case err != nil:
		return Country{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to update country"))
	}

	return country, nil
}
