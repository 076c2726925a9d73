package saleschannel

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
)

type GetSalesChannelQuery struct {
	ChannelID int64
}

func HandleGetSalesChannel(w http.ResponseWriter, r *http.Request) {
	salesChannelID, err := core.URLParamID(r, "id", "Sales channel not found")
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	salesChannel, err := mediator.Send[GetSalesChannelQuery, SalesChannel](r.Context(), GetSalesChannelQuery{ChannelID: salesChannelID})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, salesChannel)
}

type GetSalesChannelQueryHandler struct {
	db *sql.DB
}

func NewGetSalesChannelQueryHandler(db *sql.DB) *GetSalesChannelQueryHandler {
	return &GetSalesChannelQueryHandler{db}
}

func (h *GetSalesChannelQueryHandler) Handle(ctx context.Context, request GetSalesChannelQuery) (SalesChannel, error) {
	const query = `
		SELECT
			channel_id, channel_name
		FROM
			sales_channel
		WHERE
			channel_id = $1;`

	salesChannel, err := tql.QueryFirst[SalesChannel](ctx, h.db, query, request.ChannelID)
	switch {
	case err != nil && errors.Is(err, sql.ErrNoRows):
		return SalesChannel{}, core.NewNotFoundError(err, "Sales channel not found")
	case err != nil:
		return SalesChannel{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to load sales channel"))
	}

	return salesChannel, nil
}
