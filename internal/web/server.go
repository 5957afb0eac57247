// Package web serves a read-only browser view of labeling progress. It never
// writes to the label store, so the store's single-writer assumption holds
// even while a labeling session runs elsewhere.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"

	"giflabel/internal/model"
	"giflabel/internal/session"
	"giflabel/internal/store"
)

//go:embed static/*
var staticFS embed.FS

// Server holds the paths a request handler needs to rebuild the summary.
// State is re-read per request so the page tracks a live labeling session.
type Server struct {
	Dir       string
	StorePath string
	Ext       string
}

// StartServer starts the web server on the given port.
func StartServer(srv Server, port string) {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	// API Endpoints
	mux.HandleFunc("/api/summary", srv.handleSummary)
	mux.HandleFunc("/api/labels", srv.handleLabels)
	mux.HandleFunc("/api/report", srv.handleReport)

	fmt.Printf("Starting giflabel web server at http://localhost:%s\n", port)
	fmt.Printf("Go to http://localhost:%s in your browser.\n", port)

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal(err)
	}
}

func (s Server) summary() (model.Summary, error) {
	sess, err := session.Start(s.Dir, s.StorePath, s.Ext)
	if err != nil {
		return model.Summary{}, err
	}
	return sess.Summary(), nil
}

func (s Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.summary()
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	response := struct {
		model.Summary
		Remaining int    `json:"Remaining"`
		Version   string `json:"Version"`
	}{
		Summary:   sum,
		Remaining: sum.Remaining(),
		Version:   model.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	labels, err := store.Load(s.StorePath)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(labels)
}

func (s Server) handleReport(w http.ResponseWriter, r *http.Request) {
	sum, err := s.summary()
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	verbose := r.URL.Query().Get("verbose") == "1"

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(model.GenerateReport(sum, verbose)))
}
