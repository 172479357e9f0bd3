package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"static-redirect/internal/common/logging"
	"static-redirect/internal/config"
	"static-redirect/internal/handlers"
	"static-redirect/internal/middleware"
	"static-redirect/internal/rules"
	"static-redirect/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logging.InitGlobalLogger()
	defer logging.MustSync()

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fatal("Invalid configuration", err)
	}

	// Compile redirect rules from the environment. Any malformed rule
	// aborts startup; silently dropping a redirect is worse than refusing
	// to start.
	index, err := rules.Compile(rules.FromEnviron(os.Environ()))
	if err != nil {
		fatal("Failed to compile redirect rules", err)
	}

	for _, rule := range index.Rules() {
		logging.Info("Redirect rule registered",
			logging.String("rule", rule.Name),
			logging.Strings("paths", rule.Sources),
			logging.String("target", rule.Target),
			logging.Int("code", rule.Code),
			logging.Bool("js_only", rule.JSOnly),
			logging.Bool("preserve_params", rule.PreserveParams),
		)
	}

	h := handlers.New(index, logging.GetGlobalLogger())

	// Set up routes. A single catch-all feeds every path through the
	// resolver so unmatched paths come back as its NotFound decision.
	router := mux.NewRouter()
	router.Use(middleware.RequestIDMiddleware, middleware.LoggingMiddleware)
	router.PathPrefix("/").HandlerFunc(h.Redirect).Methods(http.MethodGet, http.MethodHead)
	router.MethodNotAllowedHandler = http.NotFoundHandler()

	// Start server
	srv := server.New(router, cfg.ListenAddr, cfg.TLSCertFile, cfg.TLSKeyFile)
	if err := srv.Start(); err != nil {
		fatal("Server failed to start", err)
	}
	logging.Info("Server started",
		logging.String("addr", cfg.ListenAddr),
		logging.Int("rules", len(index.Rules())),
		logging.Int("paths", index.PathCount()),
		logging.Bool("tls", cfg.TLSCertFile != ""),
	)

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		fatal("Server forced to shutdown", err)
	}

	logging.Info("Server exited")
}

func fatal(msg string, err error) {
	logging.Error(msg, err)
	logging.MustSync()
	os.Exit(1)
}
