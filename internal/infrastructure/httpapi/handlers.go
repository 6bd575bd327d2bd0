package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/tabstash/internal/application/usecase"
	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/infrastructure/broadcast"
	"github.com/bnema/tabstash/internal/infrastructure/persistence"
	"github.com/bnema/tabstash/internal/logging"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

type handler struct {
	store     *usecase.TabGroupStore
	bus       *broadcast.Bus
	keepAlive time.Duration
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	groups, err := h.store.ListAll(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	records := make([]persistence.Record, len(groups))
	for i, g := range groups {
		records[i] = persistence.ToRecord(g)
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	group, err := h.store.FindByID(r.Context(), entity.TabGroupID(chi.URLParam(r, "id")))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, persistence.ToRecord(group))
}

// create always assigns a fresh ID and timestamps.
func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	rec, ok := decodeRecord(w, r)
	if !ok {
		return
	}
	group := entity.NewTabGroup(entity.TabGroupParams{
		Name: rec.Name,
		Tabs: rec.ToEntity().Tabs,
	})
	if _, err := h.store.Save(r.Context(), group); err != nil {
		writeStoreError(w, err)
		return
	}
	w.Header().Set("Location", "/api/tab-groups/"+string(group.ID))
	writeJSON(w, http.StatusCreated, persistence.ToRecord(group))
}

// put replaces the full record stored under the path ID.
func (h *handler) put(w http.ResponseWriter, r *http.Request) {
	rec, ok := decodeRecord(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if rec.ID != "" && rec.ID != id {
		writeError(w, http.StatusBadRequest, "INVALID", "body id does not match path id")
		return
	}
	rec.ID = id

	// an overwrite never moves the creation time of a stored group
	existing, err := h.store.FindByID(r.Context(), entity.TabGroupID(id))
	switch {
	case err == nil:
		rec.CreatedAt = existing.CreatedAt
		if rec.UpdatedAt.Before(existing.UpdatedAt) {
			rec.UpdatedAt = existing.UpdatedAt
		}
	case !errors.Is(err, usecase.ErrTabGroupNotFound):
		writeStoreError(w, err)
		return
	}

	group := rec.ToEntity()
	if _, err := h.store.Save(r.Context(), group); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, persistence.ToRecord(group))
}

func (h *handler) destroy(w http.ResponseWriter, r *http.Request) {
	group := &entity.TabGroup{ID: entity.TabGroupID(chi.URLParam(r, "id"))}
	if _, err := h.store.Destroy(r.Context(), group); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// events streams change signals as Server-Sent Events.
func (h *handler) events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "STREAMING", "streaming unsupported")
		return
	}

	signals, unsubscribe := h.bus.Subscribe(8)
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	log := logging.FromContext(r.Context())
	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Debug().Msg("event stream closed")
			return
		case <-ticker.C:
			_, _ = fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		case sig, open := <-signals:
			if !open {
				return
			}
			_, _ = fmt.Fprintf(w, "event: %s\ndata: {}\n\n", sig)
			flusher.Flush()
		}
	}
}

func decodeRecord(w http.ResponseWriter, r *http.Request) (persistence.Record, bool) {
	var rec persistence.Record
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID", "malformed tab group: "+err.Error())
		return rec, false
	}
	return rec, true
}
