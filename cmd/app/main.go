package main

import (
	"larkspur/config"
	"larkspur/di"
	"larkspur/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
