package country

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
)

type ListCountriesQuery struct{}

func HandleListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := mediator.Send[ListCountriesQuery, []Country](r.Context(), ListCountriesQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, countries)
}

type ListCountriesQueryHandler struct {
	db *sql.DB
}

func NewListCountriesQueryHandler(db *sql.DB) *ListCountriesQueryHandler {
	return &ListCountriesQueryHandler{db}
}

func (h *ListCountriesQueryHandler) Handle(ctx context.Context, _ ListCountriesQuery) ([]Country, error) {
	const query = `
		SELECT
			country_id, country_name, region_id
		FROM
			country
		ORDER BY
			country_id;`

	countries, err := tql.Query[Country](ctx, h.db, query)
	if err != nil {
		return nil, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to list countries"))
	}

	return countries, nil
}
