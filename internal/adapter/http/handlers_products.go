package adapthttp

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"inhome/internal/domain"
	"inhome/internal/export"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.List(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := parseJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := s.products.Add(r.Context(), p)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"product": created})
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.products.Remove(r.Context(), r.PathValue("id")); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.products.Stats(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleExport builds the spreadsheet locally from the current product
// list and streams it to the browser.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.List(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)
	// Headers are already written at this point, so a failure can only
	// be logged.
	if err := export.Write(w, products); err != nil {
		slog.Error("spreadsheet export failed", "error", err)
	}
}

// handleExportUpstream proxies the remote service's own export endpoint.
func (s *Server) handleExportUpstream(w http.ResponseWriter, r *http.Request) {
	body, contentType, err := s.products.ExportUpstream(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)
	_, _ = io.Copy(w, body)
}
