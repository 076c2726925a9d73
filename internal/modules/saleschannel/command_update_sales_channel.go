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

type UpdateSalesChannelCommand struct {
	ChannelID   int64  `json:"-"`
	ChannelName string `json:"channel_name" validate:"required,max=255"`
}

func (c UpdateSalesChannelCommand) Validate() error {
	return core.ValidateStruct(c)
}

func HandleUpdateSalesChannel(w http.ResponseWriter, r *http.Request) {
	salesChannelID, err := core.URLParamID(r, "id", "Sales channel not found")
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	command, err := core.RequestBody[UpdateSalesChannelCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.ChannelID = salesChannelID

	salesChannel, err := mediator.Send[UpdateSalesChannelCommand, SalesChannel](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, salesChannel)
}

type UpdateSalesChannelCommandHandler struct {
	db *sql.DB
}

func NewUpdateSalesChannelCommandHandler(db *sql.DB) *UpdateSalesChannelCommandHandler {
	return &UpdateSalesChannelCommandHandler{db}
}

func (h *UpdateSalesChannelCommandHandler) Handle(ctx context.Context, request UpdateSalesChannelCommand) (SalesChannel, error) {
	const stmt = `
		UPDATE
			sales_channel
		SET
			channel_name = $1
		WHERE
			channel_id = $2
		RETURNING
			channel_id, channel_name;`

	salesChannel, err := tql.QueryFirst[SalesChannel](ctx, h.db, stmt, request.ChannelName, request.ChannelID)
	switch {
	case err != nil && errors.Is(err, sql.ErrNoRows):
		return SalesChannel{}, core.NewNotFoundError(err, "Sales channel not found")
	case err != nil:
		return SalesChannel{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to update sales channel"))
	}

	return salesChannel, nil
}
