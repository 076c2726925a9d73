package country

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
)

type CreateCountryCommand struct {
	CountryName string `json:"country_name" validate:"required,max=255"`
	RegionID    *int64 `json:"region_id" validate:"required"`
}

func (c CreateCountryCommand) Validate() error {
	return core.ValidateStruct(c)
}

func HandleCreateCountry(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreateCountryCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	country, err := mediator.Send[CreateCountryCommand, Country](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	location := fmt.Sprintf("%s/%d", basePath, country.CountryID)
	core.WriteCreated(w, r, location, country)
}

type CreateCountryCommandHandler struct {
	db *sql.DB
}

func NewCreateCountryCommandHandler(db *sql.DB) *CreateCountryCommandHandler {
	return &CreateCountryCommandHandler{db}
}

func (h *CreateCountryCommandHandler) Handle(ctx context.Context, request CreateCountryCommand) (Country, error) {
	const stmt = `
		INSERT INTO
			country (country_name, region_id)
		VALUES
			($1, $2)
		RETURNING
			country_id, country_name, region_id;`

	country, err := tql.QueryFirst[Country](ctx, h.db, stmt, request.CountryName, request.RegionID)
	if err != nil {
		return Country{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to create country"))
	}

	return country, nil
}
