package system

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openAPIDocument []byte

//go:embed index.html
var docsPage []byte

const (
	DocsPath        = "/api-docs"
	OpenAPIDocPath  = DocsPath + "/openapi.json"
	cacheControlKey = "Cache-Control"
)

func OpenAPIDocument() []byte {
	return openAPIDocument
}

// HandleDocsUI serves the interactive browser UI for the API description.
func HandleDocsUI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(cacheControlKey, "no-cache")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(docsPage)
}

func HandleOpenAPIDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(cacheControlKey, "no-cache")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPIDocument)
}
