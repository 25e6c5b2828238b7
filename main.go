package main

import (
	"log"
	"net/http"
	"strings"
)

// noCacheMiddleware adds cache-busting headers for JS/CSS files
func noCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".js") || strings.HasSuffix(r.URL.Path, ".css") {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := LoadConfig()

	hub := newHub()
	go hub.run()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r)
	})

	fs := http.FileServer(http.Dir(cfg.StaticDir))
	http.Handle("/", noCacheMiddleware(fs))

	log.Printf("Arena server starting on %s", cfg.Addr)
	log.Printf("Serving static files from: %s", cfg.StaticDir)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
