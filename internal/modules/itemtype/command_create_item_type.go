package itemtype

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
)

type CreateItemTypeCommand struct {
	ItemTypeName string `json:"item_type_name" validate:"required,max=255"`
}

func (c CreateItemTypeCommand) Validate() error {
	return core.ValidateStruct(c)
}

func HandleCreateItemType(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreateItemTypeCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	itemType, err := mediator.Send[CreateItemTypeCommand, ItemType](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	location := fmt.Sprintf("%s/%d", basePath, itemType.ItemTypeID)
	core.WriteCreated(w, r, location, itemType)
}

type CreateItemTypeCommandHandler struct {
	db *sql.DB
}

func NewCreateItemTypeCommandHandler(db *sql.DB) *CreateItemTypeCommandHandler {
	return &CreateItemTypeCommandHandler{db}
}

func (h *CreateItemTypeCommandHandler) Handle(ctx context.Context, request CreateItemTypeCommand) (ItemType, error) {
	const stmt = `
		INSERT INTO
			item_type (item_type_name)
		VALUES
			($1)
		RETURNING
			item_type_id, item_type_name;`

	itemType, err := tql.QueryFirst[ItemType](ctx, h.db, stmt, request.ItemTypeName)
	if err != nil {
		return ItemType{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to create item type"))
	}

	return itemType, nil
}
