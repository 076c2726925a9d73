package saleschannel

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
)

type CreateSalesChannelCommand struct {
	ChannelName string `json:"channel_name" validate:"required,max=255"`
}

func (c CreateSalesChannelCommand) Validate() error {
	return core.ValidateStruct(c)
}

func HandleCreateSalesChannel(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreateSalesChannelCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	salesChannel, err := mediator.Send[CreateSalesChannelCommand, SalesChannel](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	location := fmt.Sprintf("%s/%d", basePath, salesChannel.ChannelID)
	core.WriteCreated(w, r, location, salesChannel)
}

type CreateSalesChannelCommandHandler struct {
	db *sql.DB
}

func NewCreateSalesChannelCommandHandler(db *sql.DB) *CreateSalesChannelCommandHandler {
	return &CreateSalesChannelCommandHandler{db}
}

func (h *CreateSalesChannelCommandHandler) Handle(ctx context.Context, request CreateSalesChannelCommand) (SalesChannel, error) {
	const stmt = `
		INSERT INTO
			sales_channel (channel_name)
		VALUES
			($1)
		RETURNING
			channel_id, channel_name;`

	salesChannel, err := tql.QueryFirst[SalesChannel](ctx, h.db, stmt, request.ChannelName)
	if err != nil {
		return SalesChannel{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to create sales channel"))
	}

	return salesChannel, nil
}
