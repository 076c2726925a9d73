package country

const basePath = "/api/countries"

type Country struct {
	CountryID   int64  `db:"country_id" json:"country_id"`
	CountryName string `db:"country_name" json:"country_name"`
	RegionID    int64  `db:"region_id" json:"region_id"`
}
