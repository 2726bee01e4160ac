package rest

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/knoxval/fortshop/internal/fortnite"
	"github.com/knoxval/fortshop/internal/shop"
)

type handler struct {
	deps Deps
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) getShop(w http.ResponseWriter, r *http.Request) {
	groupBy := shop.GroupBy(r.URL.Query().Get("groupBy"))
	if groupBy == "" {
		groupBy = shop.GroupByIndex
	}

	data, err := h.deps.Client.Shop(r.Context())
	if err != nil {
		writeAPIError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"hash":     data.Hash,
		"date":     data.Date,
		"sections": shop.GroupAndSort(data.Entries, groupBy),
	})
}

func (h *handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.deps.Client.Item(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *handler) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("name") == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	items, err := h.deps.Client.Search(r.Context(), fortnite.SearchParams{
		Name:        q.Get("name"),
		MatchMethod: q.Get("matchMethod"),
		Type:        q.Get("type"),
		Rarity:      q.Get("rarity"),
		Series:      q.Get("series"),
	})
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *handler) listWatched(w http.ResponseWriter, r *http.Request) {
	items := h.deps.Watch.Watched()
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	writeJSON(w, http.StatusOK, ids)
}

func (h *handler) watchItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.deps.Watch.Watch(id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "watched": true})
}

func (h *handler) unwatchItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.deps.Watch.Unwatch(id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "watched": false})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{"message": message},
	})
}

// writeAPIError maps the client's error taxonomy onto HTTP statuses.
func writeAPIError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	switch fortnite.KindOf(err) {
	case fortnite.KindNotFound:
		status = http.StatusNotFound
	case fortnite.KindTimeout:
		status = http.StatusGatewayTimeout
	case fortnite.KindNetwork:
		status = http.StatusServiceUnavailable
	}
	writeError(w, status, err.Error())
}
