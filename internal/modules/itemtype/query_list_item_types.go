package itemtype

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
)

type ListItemTypesQuery struct{}

func HandleListItemTypes(w http.ResponseWriter, r *http.Request) {
	itemTypes, err := mediator.Send[ListItemTypesQuery, []ItemType](r.Context(), ListItemTypesQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, itemTypes)
}

type ListItemTypesQueryHandler struct {
	db *sql.DB
}

func NewListItemTypesQueryHandler(db *sql.DB) *ListItemTypesQueryHandler {
	return &ListItemTypesQueryHandler{db}
}

func (h *ListItemTypesQueryHandler) Handle(ctx context.Context, _ ListItemTypesQuery) ([]ItemType, error) {
	const query = `
		SELECT
			item_type_id, item_type_name
		FROM
			item_type
		ORDER BY
			item_type_id;`

	itemTypes, err := tql.Query[ItemType](ctx, h.db, query)
	if err != nil {
		return nil, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to list item types"))
	}

	return itemTypes, nil
}
