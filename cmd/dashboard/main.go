package main

import (
	"log"

	"github.com/ibeloyar/inscribe-dashboard/internal/app"
	"github.com/ibeloyar/inscribe-dashboard/internal/config"
	"github.com/ibeloyar/inscribe-dashboard/pgk/logger"
)

func main() {
	cfg, err := config.Read()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	if err := app.Run(cfg, lg); err != nil {
		lg.Fatal(err)
	}
}
