package main

import (
	"context"
	"log/slog"
	"os"
)

// @title User Profile Aggregator API
// @version 1.0
// @description Serves random user profiles enriched with country data, exchange rates and news.

// @host localhost:3000
// @BasePath /api
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("Server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
