package main

import (
	"os"

	"github.com/dodamdoor/casebook/api/internal/config"
	"github.com/dodamdoor/casebook/api/internal/server"
)

func main() {
	cfg := config.Load()

	app := server.New(cfg)
	if err := app.Run(); err != nil {
		cfg.Logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
