package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/deborahgu/serialicon/internal/constants"
	"github.com/deborahgu/serialicon/internal/export"
	"github.com/deborahgu/serialicon/internal/iconset"
	"github.com/deborahgu/serialicon/internal/manifest"
	"github.com/deborahgu/serialicon/internal/render"
)

type asset struct {
	contentType string
	etag        string
	data        []byte
}

func newAsset(contentType string, data []byte) *asset {
	return &asset{
		contentType: contentType,
		etag:        `"` + manifest.Digest(data) + `"`,
		data:        data,
	}
}

// cached returns the asset stored under key, building it once.
func (s *Server) cached(key string, build func() (*asset, error)) (*asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.cache[key]; ok {
		return a, nil
	}
	a, err := build()
	if err != nil {
		return nil, err
	}
	s.cache[key] = a
	return a, nil
}

func (s *Server) bundle() (*export.Bundle, error) {
	set, err := iconset.Build(s.cfg)
	if err != nil {
		return nil, err
	}
	return export.Encode(set, s.cfg.Options().Reference)
}

func serveAsset(w http.ResponseWriter, r *http.Request, a *asset) {
	if r.Header.Get("If-None-Match") == a.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", a.contentType)
	w.Header()["ETag"] = []string{a.etag}
	w.Write(a.data)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"service":   "serialicon",
		"sizes":     s.cfg.Sizes(),
		"reference": s.cfg.Options().Reference,
		"max_size":  constants.MaxPreviewSize,
	})
}

func (s *Server) handleIconPNG(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	name, ok := strings.CutSuffix(file, ".png")
	if !ok {
		http.NotFound(w, r)
		return
	}
	size, err := strconv.Atoi(name)
	if err != nil || size < 1 || size > constants.MaxPreviewSize {
		http.Error(w, fmt.Sprintf("size must be between 1 and %d", constants.MaxPreviewSize), http.StatusBadRequest)
		return
	}

	a, err := s.cached("png:"+strconv.Itoa(size), func() (*asset, error) {
		data, err := export.EncodePNG(render.Icon(size, s.cfg.Options()))
		if err != nil {
			return nil, err
		}
		return newAsset("image/png", data), nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	serveAsset(w, r, a)
}

func (s *Server) handleContainer(w http.ResponseWriter, r *http.Request) {
	a, err := s.cached("ico", func() (*asset, error) {
		b, err := s.bundle()
		if err != nil {
			return nil, err
		}
		return newAsset("image/x-icon", b.Container), nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	serveAsset(w, r, a)
}

func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	a, err := s.cached("sheet", func() (*asset, error) {
		set, err := iconset.Build(s.cfg)
		if err != nil {
			return nil, err
		}
		data, err := export.EncodePNG(export.Sheet(set))
		if err != nil {
			return nil, err
		}
		return newAsset("image/png", data), nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	serveAsset(w, r, a)
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	a, err := s.cached("manifest", func() (*asset, error) {
		b, err := s.bundle()
		if err != nil {
			return nil, err
		}
		data, err := b.Manifest.ToXML()
		if err != nil {
			return nil, err
		}
		return newAsset("application/xml", data), nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	serveAsset(w, r, a)
}
