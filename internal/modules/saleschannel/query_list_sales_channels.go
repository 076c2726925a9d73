package saleschannel

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
)

type ListSalesChannelsQuery struct{}

func HandleListSalesChannels(w http.ResponseWriter, r *http.Request) {
	salesChannels, err := mediator.Send[ListSalesChannelsQuery, []SalesChannel](r.Context(), ListSalesChannelsQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, salesChannels)
}

type ListSalesChannelsQueryHandler struct {
	db *sql.DB
}

func NewListSalesChannelsQueryHandler(db *sql.DB) *ListSalesChannelsQueryHandler {
	return &ListSalesChannelsQueryHandler{db}
}

func (h *ListSalesChannelsQueryHandler) Handle(ctx context.Context, _ ListSalesChannelsQuery) ([]SalesChannel, error) {
	const query = `
		SELECT
			channel_id, channel_name
		FROM
			sales_channel
		ORDER BY
			channel_id;`

	salesChannels, err := tql.Query[SalesChannel](ctx, h.db, query)
	if err != nil {
		return nil, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to list sales channels"))
	}

	return salesChannels, nil
}
