package main

import (
	"log"

	"github.com/amychanwt/apply-boost/internal/bootstrap"
	"github.com/amychanwt/apply-boost/internal/shared/config"
	"github.com/amychanwt/apply-boost/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s (uploads: %s)", addr, app.Store.Dir())

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
