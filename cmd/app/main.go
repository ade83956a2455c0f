package main

import (
	"stayfinder/config"
	"stayfinder/di"
	"stayfinder/shared/logger"
)

// @title						Stayfinder API
// @version					1.0
// @description				Listing catalog and booking API.
// @BasePath					/
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
