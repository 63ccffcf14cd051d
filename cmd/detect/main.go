// Command detect runs the field detection engine over a single PDF and
// prints its DetectionResult as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/doc-assembly/fielddetect/internal/adapters/secondary/pdfadapter"
	"github.com/doc-assembly/fielddetect/internal/core/port"
	"github.com/doc-assembly/fielddetect/internal/core/service/detection"
	"github.com/doc-assembly/fielddetect/internal/infra/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("detect failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		pdfPath    = flag.String("pdf", "", "path to the PDF to scan (required)")
		documentID = flag.String("document-id", "", "document identifier to stamp onto the result (required)")
	)
	flag.Parse()

	if *pdfPath == "" || *documentID == "" {
		flag.Usage()
		return fmt.Errorf("both -pdf and -document-id are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupLogging(cfg.Log)

	ctx := context.Background()
	slog.InfoContext(ctx, "starting field detection", slog.String("pdf", *pdfPath), slog.String("document_id", *documentID))

	adapter := pdfadapter.New()
	service := detection.NewService(adapter, cfg.Detection)

	result, err := service.DetectFields(ctx, *documentID, port.PDFSource{Path: *pdfPath}, nil)
	if err != nil {
		return fmt.Errorf("detecting fields: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	slog.InfoContext(ctx, "field detection complete",
		slog.Int("total_candidates", result.TotalCandidates),
		slog.Int("filtered_candidates", result.FilteredCandidates),
		slog.Float64("detection_time_ms", result.DetectionTimeMs),
	)

	return nil
}

func setupLogging(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
