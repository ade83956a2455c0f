package handler

import (
	"net/http"
	"stayfinder/config"
	"stayfinder/di"
	"stayfinder/shared/logger"
)

// Handler is the serverless entrypoint. It builds the same router cmd/app serves.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
