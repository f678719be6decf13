package main

import (
	"net/http"
	"os"

	"golang.org/x/exp/slog"
)

var MANAGER *PathfindManager

func main() {
	handler := NewLogHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	config := ReadConfig("./config.yaml")
	MANAGER = NewPathfindManager(config)

	app := http.DefaultServeMux
	MapPost(app, "/v0/routing", HandleRoutingRequest)
	MapPost(app, "/v0/distances", HandleDistancesRequest)
	MapGet(app, "/v0/status", HandleStatusRequest)

	address := config.Server.Address
	if address == "" {
		address = ":5002"
	}
	slog.Info("starting server on " + address)
	err := http.ListenAndServe(address, nil)
	if err != nil {
		slog.Error("server stopped: " + err.Error())
	}
}
