package web

import (
	"net/http"

	"github.com/preciserobot/shoppy/internal/db"
	"github.com/preciserobot/shoppy/internal/lookup"
	webembed "github.com/preciserobot/shoppy/web"
)

// Server holds all dependencies for request handlers.
type Server struct {
	DB        *db.DB
	Templates *Templates
	Lookup    lookup.Source
}

// NewRouter creates the router with all endpoints registered.
func NewRouter(database *db.DB, source lookup.Source) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        database,
		Templates: templates,
		Lookup:    source,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// The curation interface lives at /items.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/items", http.StatusSeeOther)
	})

	mux.HandleFunc("GET /items", s.ListItems)
	mux.HandleFunc("POST /items", s.CreateItem)
	mux.HandleFunc("PUT /items", s.UpdateItemJSON)
	mux.HandleFunc("GET /items/{ean}", s.GetItem)
	mux.HandleFunc("POST /items/{ean}/update", s.UpdateItemForm)
	mux.HandleFunc("POST /items/{ean}/delete", s.DeleteItem)

	return mux, nil
}
