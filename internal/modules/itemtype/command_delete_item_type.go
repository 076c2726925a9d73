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

type DeleteItemTypeCommand struct {
	ItemTypeID int64
}

func HandleDeleteItemType(w http.ResponseWriter, r *http.Request) {
	itemTypeID, err := core.URLParamID(r, "id", "Item type not found")
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	_, err = mediator.Send[DeleteItemTypeCommand, ItemType](r.Context(), DeleteItemTypeCommand{ItemTypeID: itemTypeID})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteMessage(w, r, "Item type deleted successfully")
}

type DeleteItemTypeCommandHandler struct {
	db *sql.DB
}

func NewDeleteItemTypeCommandHandler(db *sql.DB) *DeleteItemTypeCommandHandler {
	return &DeleteItemTypeCommandHandler{db}
}

func (h *DeleteItemTypeCommandHandler) Handle(ctx context.Context, request DeleteItemTypeCommand) (ItemType, error) {
	const stmt = `
		DELETE FROM
			item_type
		WHERE
			item_type_id = $1
		RETURNING
			item_type_id, item_type_name;`

	itemType, err := tql.QueryFirst[ItemType](ctx, h.db, stmt, request.ItemTypeID)
	switch {
	case err != nil && errors.Is(err, sql.ErrNoRows):
		return ItemType{}, core.NewNotFoundError(err, "Item type not found")
	case err != nil:
		return ItemType{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to delete item type"))
	}

	return itemType, nil
}
