package main

import (
	"log"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"docscan/internal/config"
	"docscan/internal/document"
	"docscan/internal/tools"
)

func main() {
	cfg := config.Load()

	httpClient := &http.Client{
		Timeout: time.Duration(cfg.HTTPTimeoutSec) * time.Second,
	}

	fetcher, err := document.NewFetcher(httpClient)
	if err != nil {
		log.Fatalf("init fetcher: %v", err)
	}

	handler := tools.NewHandler(fetcher, cfg.APIURL, cfg.APIToken, httpClient)

	switch cfg.ServerMode {
	case config.ModeStdio:
		// stdout belongs to the protocol in this mode; the log package
		// already writes to stderr.
		if err := server.ServeStdio(tools.NewStdioServer(handler)); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	case config.ModeSSE:
		addr := cfg.Host + ":" + cfg.Port
		log.Printf("listening on %s", addr)
		if err := tools.NewSSEServer(handler).Start(addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	default:
		log.Fatalf("unknown SERVER_MODE %q (expected %q or %q)", cfg.ServerMode, config.ModeStdio, config.ModeSSE)
	}
}
