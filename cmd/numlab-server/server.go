// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/exercise"
	"github.com/katalvlaran/numlab/store"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// server serves exercise records and runs methods on them.
type server struct {
	repo store.Repository
	mux  *http.ServeMux
}

func newServer(repo store.Repository) *server {
	s := &server{repo: repo, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /health", s.health)
	s.mux.HandleFunc("GET /methods", s.methods)
	s.mux.HandleFunc("GET /records", s.list)
	s.mux.HandleFunc("POST /records", s.insert)
	s.mux.HandleFunc("GET /plot/{file}", s.plot)
	s.mux.HandleFunc("POST /solve/{method}/{no}", s.solve)
	s.mux.HandleFunc("PUT /update/{no}", s.update)
	s.mux.HandleFunc("GET /{no}", s.get)

	return s
}

// ServeHTTP wraps the routes with panic recovery, CORS headers and an access log.
func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	defer func() {
		if v := recover(); v != nil {
			log.Printf("panic in %s %s: %v\n%s", r.Method, r.URL.Path, v, debug.Stack())
			writeError(rec, http.StatusInternalServerError, "internal server error")
		}
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	}()

	h := rec.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		rec.WriteHeader(http.StatusNoContent)
		return
	}
	s.mux.ServeHTTP(rec, r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// recordNo parses the {no} path value.
func recordNo(w http.ResponseWriter, raw string) (int, bool) {
	no, err := strconv.Atoi(raw)
	if err != nil || no <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid record number %q", raw))
		return 0, false
	}

	return no, true
}

func decodeRecord(w http.ResponseWriter, r *http.Request) (store.Record, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	var rec store.Record
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return rec, false
	}
	if dec.More() {
		writeError(w, http.StatusBadRequest, "invalid JSON: trailing data")
		return rec, false
	}

	return rec, true
}

// lookup fetches record no, writing 404/500 itself on failure.
func (s *server) lookup(w http.ResponseWriter, r *http.Request, no int) (store.Record, bool) {
	rec, err := s.repo.Get(r.Context(), no)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "No record found")
		return rec, false
	case err != nil:
		log.Printf("get record %d: %v", no, err)
		writeError(w, http.StatusInternalServerError, "Error fetching data")
		return rec, false
	}

	return rec, true
}

func (s *server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *server) methods(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, exercise.Methods())
}

func (s *server) list(w http.ResponseWriter, r *http.Request) {
	recs, err := s.repo.List(r.Context())
	if err != nil {
		log.Printf("list records: %v", err)
		writeError(w, http.StatusInternalServerError, "Error fetching data")
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *server) get(w http.ResponseWriter, r *http.Request) {
	no, ok := recordNo(w, r.PathValue("no"))
	if !ok {
		return
	}
	if rec, ok := s.lookup(w, r, no); ok {
		writeJSON(w, http.StatusOK, rec)
	}
}

func (s *server) update(w http.ResponseWriter, r *http.Request) {
	no, ok := recordNo(w, r.PathValue("no"))
	if !ok {
		return
	}
	rec, ok := decodeRecord(w, r)
	if !ok {
		return
	}
	err := s.repo.Put(r.Context(), no, rec)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "No record found to update")
	case err != nil:
		log.Printf("update record %d: %v", no, err)
		writeError(w, http.StatusInternalServerError, "Error updating data")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Data updated successfully"})
	}
}

func (s *server) insert(w http.ResponseWriter, r *http.Request) {
	rec, ok := decodeRecord(w, r)
	if !ok {
		return
	}
	err := s.repo.Insert(r.Context(), rec)
	switch {
	case errors.Is(err, store.ErrExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrInvalidKey):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		log.Printf("insert record %d: %v", rec.No, err)
		writeError(w, http.StatusInternalServerError, "Error inserting data")
	default:
		writeJSON(w, http.StatusCreated, rec)
	}
}

// solveError carries whatever partial result the method produced.
type solveError struct {
	Error  string           `json:"error"`
	Report *exercise.Report `json:"report,omitempty"`
}

func (s *server) solve(w http.ResponseWriter, r *http.Request) {
	no, ok := recordNo(w, r.PathValue("no"))
	if !ok {
		return
	}
	rec, ok := s.lookup(w, r, no)
	if !ok {
		return
	}
	rep, err := exercise.Run(r.Context(), r.PathValue("method"), rec)
	switch {
	case errors.Is(err, exercise.ErrUnknownMethod):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		body := solveError{Error: err.Error()}
		if rep.Result != nil {
			body.Report = &rep
		}
		writeJSON(w, http.StatusUnprocessableEntity, body)
	default:
		writeJSON(w, http.StatusOK, rep)
	}
}

// plot serves /plot/{no}.svg or /plot/{no}.png; ?method=bisection marks iterates.
func (s *server) plot(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	var (
		format      string
		contentType string
	)
	switch {
	case strings.HasSuffix(file, ".svg"):
		format, contentType = "svg", "image/svg+xml"
	case strings.HasSuffix(file, ".png"):
		format, contentType = "png", "image/png"
	default:
		writeError(w, http.StatusNotFound, "plot must be .svg or .png")
		return
	}
	no, ok := recordNo(w, strings.TrimSuffix(file, "."+format))
	if !ok {
		return
	}
	rec, ok := s.lookup(w, r, no)
	if !ok {
		return
	}

	var buf bytes.Buffer
	err := exercise.Plot(r.Context(), &buf, r.URL.Query().Get("method"), rec, chart.WithFormat(format))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	w.Header().Set("Content-Type", contentType)
	if _, err = buf.WriteTo(w); err != nil {
		log.Printf("write plot %d: %v", no, err)
	}
}
