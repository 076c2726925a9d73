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

type DeleteSalesChannelCommand struct {
	ChannelID int64
}

func HandleDeleteSalesChannel(w http.ResponseWriter, r *http.Request) {
	salesChannelID, err := core.URLParamID(r, "id", "Sales channel not found")
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	_, err = mediator.Send[DeleteSalesChannelCommand, SalesChannel](r.Context(), DeleteSalesChannelCommand{ChannelID: salesChannelID})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteMessage(w, r, "Sales channel deleted successfully")
}

type DeleteSalesChannelCommandHandler struct {
	db *sql.DB
}

func NewDeleteSalesChannelCommandHandler(db *sql.DB) *DeleteSalesChannelCommandHandler {
	return &DeleteSalesChannelCommandHandler{db}
}

func (h *DeleteSalesChannelCommandHandler) Handle(ctx context.Context, request DeleteSalesChannelCommand) (SalesChannel, error) {
	const stmt = `
		DELETE FROM
			sales_channel
		WHERE
			channel_id = $1
		RETURNING
			channel_id, channel_name;`

	salesChannel, err := tql.QueryFirst[SalesChannel](ctx, h.db, stmt, request.ChannelID)
	switch {
	case err != nil && errors.Is(err, sql.ErrNoRows):
		return SalesChannel{}, core.NewNotFoundError(err, "Sales channel not found")
	case err != nil:
		return SalesChannel{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to delete sales channel"))
	}

	return salesChannel, nil
}
