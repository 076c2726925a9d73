package system

import (
	"database/sql"

	"github.com/go-chi/chi"
)

func Routes(r chi.Router, db *sql.DB) {
	r.Get(StatusPath, NewHealthHandler(db).HandleStatus)
	r.Get(DocsPath, HandleDocsUI)
	r.Get(OpenAPIDocPath, HandleOpenAPIDocument)
}
