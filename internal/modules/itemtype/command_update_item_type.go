package itemtype

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
)

type UpdateItemTypeCommand struct {
	ItemTypeID   int64  `json:"-"`
	ItemTypeName string `json:"item_type_name" validate:"required,max=255"`
}

func (c UpdateItemTypeCommand) Validate() error {
	return core.ValidateStruct(c)
}

func HandleUpdateItemType(w http.ResponseWriter, r *http.Request) {
	itemTypeID, err := core.URLParamID(r, "id", "Item type not found")
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	command, err := core.RequestBody[UpdateItemTypeCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.ItemTypeID = itemTypeID

	itemType, err := mediator.Send[UpdateItemTypeCommand, ItemType](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, itemType)
}

type UpdateItemTypeCommandHandler struct {
	db *sql.DB
}

func NewUpdateItemTypeCommandHandler(db *sql.DB) *UpdateItemTypeCommandHandler {
	return &UpdateItemTypeCommandHandler{db}
}

func (h *UpdateItemTypeCommandHandler) Handle(ctx context.Context, request UpdateItemTypeCommand) (ItemType, error) {
	const stmt = `
		UPDATE
			item_type
		SET
			item_type_name = $1
		WHERE
			item_type_id = $2
		RETURNING
			item_type_id, item_type_name;`

	itemType, err := tql.QueryFirst[ItemType](ctx, h.db, stmt, request.ItemTypeName, request.ItemTypeID)
	switch {
	case err != nil && errors.Is(err, sql.ErrNoRows):
		return ItemType{}, core.NewNotFoundError(err, "Item type not found")
	case err != nil:
		return ItemType{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to update item type"))
	}

	return itemType, nil
}
