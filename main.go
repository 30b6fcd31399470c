package main

import (
	"github.com/tyforge/launchpad-backend/config"
	"github.com/tyforge/launchpad-backend/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
