package main

import (
	"stayfinder/config"
	"stayfinder/di"
	"stayfinder/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	worker := di.InitializeWorker()
	worker.Serve()
}
