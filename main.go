// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/round-score/cliparse"
	"github.com/danielhkuo/round-score/db"
	"github.com/danielhkuo/round-score/handlers"
	"github.com/danielhkuo/round-score/pronunciation"
	"github.com/danielhkuo/round-score/pronunciation/azure"
	"github.com/danielhkuo/round-score/router"
)

func main() {
	var err error

	// Existing environment wins over .env
	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("loading .env failed", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the store; the driver name matches DATABASE_TYPE
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		dbConn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	var assessor pronunciation.Assessor
	if cfg.HasSpeechCredentials() {
		azureAssessor, err := azure.NewAssessor(cfg.AzureSpeechKey, cfg.AzureSpeechRegion)
		if err != nil {
			slog.Error("speech assessor setup failed", "error", err)
			os.Exit(1)
		}
		assessor = azureAssessor
		slog.Info("Speech assessor ready", "region", cfg.AzureSpeechRegion, "language", cfg.DefaultLanguage)
	} else {
		slog.Warn("Azure speech credentials not set; /azure-pron-score will fail")
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, assessor)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		// Wait for Ctrl-C signal, then let in-flight requests finish
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening",
		"port", cfg.Port,
		"score_limit", humanize.Bytes(handlers.MaxScoreBodyBytes),
		"audio_limit", humanize.Bytes(handlers.MaxAudioBodyBytes),
	)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		<-shutdownDone
		slog.Info("Server closed", "error", err)
	}
}
