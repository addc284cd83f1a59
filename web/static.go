// Package web embeds the single-page client served at the site root.
package web

import (
	"embed"
	"net/http"
)

//go:embed static/index.html
var static embed.FS

// IndexHandler serves the client application.
func IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := static.ReadFile("static/index.html")
		if err != nil {
			http.Error(w, "page not found", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page) //nolint:errcheck
	}
}
