package web

import (
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/preciserobot/shoppy/internal/model"
	"github.com/preciserobot/shoppy/internal/store"
)

// hasContentType reports whether the request declares the given media
// type, ignoring parameters such as charset.
func hasContentType(r *http.Request, mediaType string) bool {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return ct == mediaType
}

// CreateItem handles POST /items: manual creation from the curation form.
func (s *Server) CreateItem(w http.ResponseWriter, r *http.Request) {
	if !hasContentType(r, "application/x-www-form-urlencoded") {
		jsonError(w, http.StatusBadRequest, "invalid content-type")
		return
	}

	ean := r.FormValue("ean")
	name := r.FormValue("name")
	if ean == "" || name == "" {
		jsonError(w, http.StatusBadRequest, "ean and name required")
		return
	}

	existing, err := store.GetItem(r.Context(), s.DB, ean)
	if err != nil {
		slog.Error("failed to check item", "ean", ean, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to check item")
		return
	}
	if existing != nil {
		jsonError(w, http.StatusConflict, "item already exists")
		return
	}

	quantity, err := model.CoerceQuantity(r.FormValue("quantity"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "quantity must be numeric")
		return
	}

	item := &model.Item{
		EAN:      ean,
		Name:     name,
		Detail:   r.FormValue("detail"),
		Quantity: quantity,
		Unit:     r.FormValue("unit"),
	}
	item.Normalize()

	if err := store.SaveItem(r.Context(), s.DB, item); err != nil {
		slog.Error("failed to save item", "ean", ean, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save item")
		return
	}

	slog.Info("item created", "ean", ean, "name", name)
	http.Redirect(w, r, "/items", http.StatusSeeOther)
}

// GetItem handles GET /items/{ean}?create=bool.
//
// An unknown barcode is first offered to the external lookup source;
// if that reports absent and create is enabled (the default), a
// placeholder record is persisted and returned with 201.
func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	ean := r.PathValue("ean")

	create := true
	if raw := r.URL.Query().Get("create"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid create parameter")
			return
		}
		create = parsed
	}

	item, err := store.GetItem(r.Context(), s.DB, ean)
	if err != nil {
		slog.Error("failed to get item", "ean", ean, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item != nil {
		jsonResponse(w, http.StatusOK, item)
		return
	}

	// Lookup failures degrade to absent.
	fetched, err := s.Lookup.LookupByBarcode(r.Context(), ean)
	if err != nil {
		slog.Warn("barcode lookup failed", "ean", ean, "error", err)
		fetched = nil
	}
	if fetched != nil {
		fetched.Normalize()
		if err := store.SaveItem(r.Context(), s.DB, fetched); err != nil {
			slog.Error("failed to save fetched item", "ean", ean, "error", err)
			jsonError(w, http.StatusInternalServerError, "failed to save item")
			return
		}
		jsonResponse(w, http.StatusOK, fetched)
		return
	}

	if !create {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	placeholder := &model.Item{EAN: ean, Name: model.PlaceholderName}
	placeholder.Normalize()
	if err := store.SaveItem(r.Context(), s.DB, placeholder); err != nil {
		slog.Error("failed to save placeholder item", "ean", ean, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save item")
		return
	}

	slog.Info("placeholder item created", "ean", ean)
	jsonResponse(w, http.StatusCreated, placeholder)
}

// ListItems handles GET /items: a JSON array for API clients declaring
// a JSON content type, the rendered curation page for everyone else.
func (s *Server) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	if hasContentType(r, "application/json") {
		jsonResponse(w, http.StatusOK, items)
		return
	}

	s.Templates.Render(w, "items.html", &struct {
		PageData
		Items []model.Item
	}{
		PageData: PageData{Title: "Items"},
		Items:    items,
	})
}

// UpdateItemJSON handles PUT /items: full replacement of the curated
// fields from a JSON body. created_at always carries over from the
// stored record; provenance is taken from the body as sent.
func (s *Server) UpdateItemJSON(w http.ResponseWriter, r *http.Request) {
	if !hasContentType(r, "application/json") {
		jsonError(w, http.StatusBadRequest, "invalid content-type")
		return
	}

	var incoming model.Item
	if err := decodeJSON(r, &incoming); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if incoming.EAN == "" {
		jsonError(w, http.StatusBadRequest, "ean required")
		return
	}

	item, err := store.GetItem(r.Context(), s.DB, incoming.EAN)
	if err != nil {
		slog.Error("failed to get item", "ean", incoming.EAN, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	incoming.CreatedAt = item.CreatedAt
	incoming.Normalize()
	if err := item.Merge(&incoming); err != nil {
		slog.Error("failed to merge item", "ean", item.EAN, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	if err := store.SaveItem(r.Context(), s.DB, item); err != nil {
		slog.Error("failed to save item", "ean", item.EAN, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save item")
		return
	}

	slog.Info("item updated", "ean", item.EAN)
	jsonResponse(w, http.StatusOK, item)
}

// UpdateItemForm handles POST /items/{ean}/update: full replacement of
// the curated fields from the curation form. created_at and provenance
// carry over from the stored record since the form cannot express them.
func (s *Server) UpdateItemForm(w http.ResponseWriter, r *http.Request) {
	if !hasContentType(r, "application/x-www-form-urlencoded") {
		jsonError(w, http.StatusBadRequest, "invalid content-type")
		return
	}

	ean := r.PathValue("ean")
	item, err := store.GetItem(r.Context(), s.DB, ean)
	if err != nil {
		slog.Error("failed to get item", "ean", ean, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	name := r.FormValue("name")
	if name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	quantity, err := model.CoerceQuantity(r.FormValue("quantity"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "quantity must be numeric")
		return
	}

	incoming := &model.Item{
		EAN:       item.EAN,
		Name:      name,
		Detail:    r.FormValue("detail"),
		Quantity:  quantity,
		Unit:      r.FormValue("unit"),
		CreatedAt: item.CreatedAt,
		SrcData:   item.SrcData,
		SrcURL:    item.SrcURL,
	}
	incoming.Normalize()

	if err := item.Merge(incoming); err != nil {
		slog.Error("failed to merge item", "ean", ean, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	if err := store.SaveItem(r.Context(), s.DB, item); err != nil {
		slog.Error("failed to save item", "ean", ean, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save item")
		return
	}

	slog.Info("item updated", "ean", ean, "name", name)
	http.Redirect(w, r, "/items", http.StatusSeeOther)
}

// DeleteItem handles POST /items/{ean}/delete.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ean := r.PathValue("ean")

	item, err := store.GetItem(r.Context(), s.DB, ean)
	if err != nil {
		slog.Error("failed to get item", "ean", ean, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	if err := store.DeleteItem(r.Context(), s.DB, ean); err != nil {
		slog.Error("failed to delete item", "ean", ean, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	slog.Info("item deleted", "ean", ean)
	http.Redirect(w, r, "/items", http.StatusSeeOther)
}
