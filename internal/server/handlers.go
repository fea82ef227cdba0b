package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"strings"

	"github.com/ahuang11/colordropper/internal/colour"
	"github.com/ahuang11/colordropper/internal/raster"
	"github.com/ahuang11/colordropper/internal/render"
	"github.com/ahuang11/colordropper/internal/security"
)

// maxUploadBytes bounds image uploads at 32 MiB.
const maxUploadBytes = 32 << 20

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view := s.sess.View()
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, view)
}

// handleLoadImage accepts either a multipart upload (field "file") or a
// JSON body {"url": "..."}. Decode failures are surfaced to the user; the
// previous image stays loaded.
func (s *Server) handleLoadImage(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid upload: %w", err))
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("missing file field: %w", err))
			return
		}
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read upload: %w", err))
			return
		}

		s.mu.Lock()
		err = s.sess.LoadImage(data)
		view := s.sess.View()
		s.mu.Unlock()
		if err != nil {
			s.logger.Warn("image upload rejected", "error", err)
			s.writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		s.writeJSON(w, http.StatusOK, view)
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := security.ValidateImageURL(req.URL); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	err := s.sess.LoadImageFrom(r.Context(), req.URL)
	view := s.sess.View()
	s.mu.Unlock()
	if err != nil {
		s.logger.Warn("image fetch failed", "url", req.URL, "error", err)
		status := http.StatusBadGateway
		if errors.Is(err, raster.ErrDecode) {
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, status, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	var req struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	view, ok := s.sess.ClickAt(req.X, req.Y)
	s.mu.Unlock()
	if !ok {
		// Out-of-bounds or no image: the click is ignored, not an error.
		s.logger.Debug("click ignored", "x", req.X, "y", req.Y)
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Color string `json:"color"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	view := s.sess.Add(req.Color)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Colors []string `json:"colors"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	view := s.sess.Remove(req.Colors)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view, err := s.sess.Undo()
	s.mu.Unlock()
	if err != nil {
		// Undo with no history is a visible no-op, not a failure.
		s.logger.Debug("undo with empty history")
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view := s.sess.Clear()
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	view := s.sess.SetText(req.Text)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	var cfg render.Config
	if err := decodeBody(r, &cfg); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if cfg.Format != "" {
		if _, err := render.ParseFormat(string(cfg.Format)); err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
	} else {
		cfg.Format = render.FormatHex
	}
	if cfg.BlendSpace != "" {
		if _, err := colour.ParseBlendSpace(string(cfg.BlendSpace)); err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
	} else {
		cfg.BlendSpace = colour.BlendRGB
	}

	s.mu.Lock()
	view := s.sess.SetConfig(cfg)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handlePixelate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Block   int    `json:"block"`
		Reducer string `json:"reducer"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	reducer := raster.ReducerMean
	if req.Reducer != "" {
		parsed, err := raster.ParseReducer(req.Reducer)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		reducer = parsed
	}

	s.mu.Lock()
	view, err := s.sess.Pixelate(req.Block, reducer)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Count int `json:"count"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Count <= 0 {
		req.Count = 8
	}

	s.mu.Lock()
	view, err := s.sess.Suggest(req.Count)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

// handleImage encodes the preview grid back to PNG for display. The grid is
// stored bottom-up, so rows are flipped back to image order here.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	grid := s.sess.Preview()
	s.mu.Unlock()

	if grid == nil {
		http.NotFound(w, r)
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, grid.Width(), grid.Height()))
	for row := 0; row < grid.Height(); row++ {
		y := grid.Height() - 1 - row
		for col := 0; col < grid.Width(); col++ {
			c := grid.At(col, row)
			img.Set(col, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := png.Encode(w, img); err != nil {
		s.logger.Error("failed to encode preview image", "error", err)
	}
}
