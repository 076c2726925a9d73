package itemtype

const basePath = "/api/item-types"

type ItemType struct {
	ItemTypeID   int64  `db:"item_type_id" json:"item_type_id"`
	ItemTypeName string `db:"item_type_name" json:"item_type_name"`
}
