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

type GetItemTypeQuery struct {
	ItemTypeID int64
}

func HandleGetItemType(w http.ResponseWriter, r *http.Request) {
	itemTypeID, err := core.URLParamID(r, "id", "Item type not found")
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	itemType, err := mediator.Send[GetItemTypeQuery, ItemType](r.Context(), GetItemTypeQuery{ItemTypeID: itemTypeID})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, itemType)
}

type GetItemTypeQueryHandler struct {
	db *sql.DB
}

func NewGetItemTypeQueryHandler(db *sql.DB) *GetItemTypeQueryHandler {
	return &GetItemTypeQueryHandler{db}
}

func (h *GetItemTypeQueryHandler) Handle(ctx context.Context, request GetItemTypeQuery) (ItemType, error) {
	const query = `
		SELECT
			item_type_id, item_type_name
		FROM
			item_type
		WHERE
			item_type_id = $1;`

	itemType, err := tql.QueryFirst[ItemType](ctx, h.db, query, request.ItemTypeID)
	switch {
	case err != nil && errors.Is(err, sql.ErrNoRows):
		return ItemType{}, core.NewNotFoundError(err, "Item type not found")
	case err != nil:
		return ItemType{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to load item type"))
	}

	return itemType, nil
}
