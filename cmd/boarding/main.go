package main // Entry point of the interactive booking desk

import (
	"context"
	"log"
	"os"

	"github.com/iliyamo/airline-boarding/internal/config"
	"github.com/iliyamo/airline-boarding/internal/ledger"
	"github.com/iliyamo/airline-boarding/internal/logger"
	"github.com/iliyamo/airline-boarding/internal/menu"
	"github.com/iliyamo/airline-boarding/internal/pass"
	queue_publisher "github.com/iliyamo/airline-boarding/internal/service"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// The menu owns stdout, so the desk logs to a file unless told otherwise.
	logPath := cfg.LogFile
	if _, set := os.LookupEnv("LOG_FILE"); !set {
		logPath = "boarding.log"
	}
	lg, closer, err := logger.NewFile(logPath, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	if closer != nil {
		defer closer.Close()
	}
	lg = lg.With("app", "boarding-desk", "env", cfg.Env)

	var opts []menu.Option
	if cfg.PassSecret != "" {
		opts = append(opts, menu.WithSigner(pass.NewSigner(cfg.PassSecret, cfg.PassIssuer, cfg.PassTTL)))
	}
	if cfg.PassPDFDir != "" {
		opts = append(opts, menu.WithExporter(pass.Exporter{Dir: cfg.PassPDFDir}))
	}
	if cfg.EventsEnabled {
		opts = append(opts, menu.WithPublisher(queue_publisher.New(cfg.AMQPURL, cfg.EventsQueue, lg)))
	}
	lg.Info("desk opened",
		"seats", ledger.TotalSeats,
		"signed_passes", cfg.PassSecret != "",
		"pdf_dir", cfg.PassPDFDir,
		"events", cfg.EventsEnabled)

	m := menu.New(ledger.New(), os.Stdin, os.Stdout, lg, opts...)
	if err := m.Run(context.Background()); err != nil {
		lg.Error("desk stopped", "err", err)
		os.Exit(1)
	}
}
