// Package main starts an HTTP server that provides endpoints for health
// checks and integer factorization. It uses the internal handlers package to
// process incoming requests and return JSON responses.
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/factorscope/core/cmd/api/middleware"
	"github.com/factorscope/core/internal/config"
	"github.com/factorscope/core/internal/factor"
	"github.com/factorscope/core/internal/handlers"
	"github.com/factorscope/core/internal/sieve"
)

func main() {
	cfg := config.Default()
	if path := os.Getenv("FACTORSCOPE_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	orch := factor.New(sieve.Build(cfg.SieveBound))

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.HealthHandler)
	mux.HandleFunc("/factor", handlers.NewFactorHandler(orch))

	log.Printf("🚀 Server starting on %s (sieve bound %d)", cfg.ListenAddr, cfg.SieveBound)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, middleware.Cors(cfg.AllowedOrigin)(mux)))
}
