// iconserve serves the application icon over HTTP for previewing, rendering
// each requested size on demand.
package main

import (
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/deborahgu/serialicon/internal/iconset"
)

type Server struct {
	cfg iconset.Config

	mu    sync.Mutex
	cache map[string]*asset
}

func NewServer(cfg iconset.Config) *Server {
	return &Server{cfg: cfg, cache: make(map[string]*asset)}
}

func setupRouter(s *Server) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/icons/{file}", s.handleIconPNG)
	r.Get("/app_icon.ico", s.handleContainer)
	r.Get("/app_icon_sheet.png", s.handleSheet)
	r.Get("/manifest.xml", s.handleManifest)
	return r
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	cfg := iconset.DefaultConfig()
	if list := os.Getenv("ICON_SIZES"); list != "" {
		sizes, err := iconset.ParseSizes(list)
		if err != nil {
			log.Fatalf("Failed to parse ICON_SIZES: %v", err)
		}
		if cfg, err = cfg.WithSizes(sizes); err != nil {
			log.Fatalf("Invalid ICON_SIZES: %v", err)
		}
	}

	r := setupRouter(NewServer(cfg))

	log.Printf("Icon preview starting on port %s, sizes %v", port, cfg.Sizes())
	log.Fatal(http.ListenAndServe(":"+port, r))
}
