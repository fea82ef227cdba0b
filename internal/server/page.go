package server

import (
	"embed"
	"net/http"
)

//go:embed assets/index.html
var assets embed.FS

// handleIndex serves the single-page dashboard.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := assets.ReadFile("assets/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}
