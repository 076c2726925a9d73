package saleschannel

const basePath = "/api/sales-channels"

type SalesChannel struct {
	ChannelID   int64  `db:"channel_id" json:"channel_id"`
	ChannelName string `db:"channel_name" json:"channel_name"`
}
