package handler

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"jobhunt/internal/dashboard"
	"jobhunt/internal/db"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

// SnapshotLoader is satisfied by *dashboard.Repo.
type SnapshotLoader interface {
	Load(ctx context.Context) (dashboard.Snapshot, error)
}

type DashboardHandler struct {
	Store SnapshotLoader
	Now   func() time.Time

	tmpl *template.Template
}

func NewDashboardHandler(store SnapshotLoader) *DashboardHandler {
	h := &DashboardHandler{Store: store, Now: time.Now}
	h.tmpl = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
		"ago": func(ts string) string { return dashboard.TimeAgo(ts, h.Now()) },
	}).ParseFS(templateFS, "templates/dashboard.html"))
	return h
}

// view never fails: a missing store or a failed query gives the empty view.
func (h *DashboardHandler) view(r *http.Request) dashboard.View {
	snap, err := h.Store.Load(r.Context())
	switch {
	case errors.Is(err, db.ErrNoStore):
		log.Printf("[dashboard] no store, rendering empty: %v\n", err)
		snap = dashboard.Snapshot{}
	case err != nil:
		log.Printf("[dashboard] load error, rendering empty: %v\n", err)
		snap = dashboard.Snapshot{}
	}
	return dashboard.Build(snap)
}

func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	v := h.view(r)

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, v); err != nil {
		log.Printf("[dashboard] render error: %v\n", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *DashboardHandler) JSON(w http.ResponseWriter, r *http.Request) {
	v := h.view(r)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
