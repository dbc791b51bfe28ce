// Package server exposes the document store over HTTP: upload a Turtle
// document, read it back as JSON, list what is stored.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/semanticowl/semowl/internal/docstore"
	"github.com/semanticowl/semowl/internal/loader"
	"github.com/semanticowl/semowl/pkg/turtle"
)

// maxUploadSize bounds an uploaded Turtle document.
const maxUploadSize = 64 << 20

// Server serves the document API.
type Server struct {
	store  *docstore.Store
	loader *loader.Loader
	addr   string
	logger *slog.Logger
}

// New creates a server around a store and a loader.
func New(store *docstore.Store, ld *loader.Loader, addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: store, loader: ld, addr: addr, logger: logger}
}

// Start blocks serving HTTP until the listener fails.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting document endpoint", slog.String("addr", s.addr))
	return srv.ListenAndServe()
}

// Handler returns the route table. Split out from Start for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /documents", s.handleList)
	mux.HandleFunc("GET /documents/{name}", s.handleGet)
	mux.HandleFunc("PUT /documents/{name}", s.handleUpload)
	mux.HandleFunc("POST /documents/{name}", s.handleUpload)
	mux.HandleFunc("DELETE /documents/{name}", s.handleDelete)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	entries, err := s.store.List()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if entries == nil {
		entries = []docstore.Entry{}
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	doc, err := s.store.Get(name)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

// UploadResponse summarizes a stored upload.
type UploadResponse struct {
	Name        string       `json:"name"`
	Fingerprint string       `json:"fingerprint"`
	Unchanged   bool         `json:"unchanged"`
	Headers     int          `json:"headers"`
	Statements  int          `json:"statements"`
	Triples     int          `json:"triples"`
	Stats       turtle.Stats `json:"stats"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("reading body: %w", err))
		return
	}

	doc, stats, err := s.loader.Load(bytes.NewReader(body))
	if err != nil {
		if errors.Is(err, loader.ErrNotTurtle) {
			s.writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	res, err := s.store.Put(name, doc)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.logger.Info("stored document",
		slog.String("name", name),
		slog.String("fingerprint", res.Fingerprint),
		slog.Int("statements", len(doc.Body)),
		slog.Bool("truncated", stats.Truncated))

	s.writeJSON(w, http.StatusOK, UploadResponse{
		Name:        name,
		Fingerprint: res.Fingerprint,
		Unchanged:   res.Unchanged,
		Headers:     len(doc.Headers),
		Statements:  len(doc.Body),
		Triples:     doc.TripleCount(),
		Stats:       stats,
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := s.store.Delete(name); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("writing response", slog.String("error", err.Error()))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
