package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pitchflow-app/pitchflow/backend/internal/adapters/database"
	"github.com/pitchflow-app/pitchflow/backend/internal/adapters/search"
	"github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/clients/postgres"
	"github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/clients/typesense"
	"github.com/pitchflow-app/pitchflow/backend/pkg/config"
)

const indexBatchSize = 200

// Backfills the Typesense collection from stored analyses. Run once after
// enabling search, or on an interval to repair drift from missed best-effort
// index writes.
func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "delete existing Typesense collection before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	var err error
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatalf("Invalid interval %q: %v", intervalValue, err)
		}
		if interval <= 0 {
			log.Fatalf("Interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, reset); err != nil {
			log.Printf("Reindex failed: %v", err)
		}

		if interval <= 0 {
			break
		}

		reset = false
		log.Printf("Reindex complete. Next run in %s.", interval)

		select {
		case <-ctx.Done():
			log.Println("Reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, reset bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		return err
	}
	defer pgClient.Close()

	analysisRepo := database.NewAnalysisAdapter(pgClient)

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	searchRepo := search.NewTypesenseAdapter(tsClient)

	if reset || os.Getenv("RESET_TYPESENSE") == "true" {
		log.Println("Reset requested, deleting session_analyses collection")
		if _, err := tsClient.Client().Collection("session_analyses").Delete(ctx); err != nil {
			log.Printf("Warning: failed to delete collection: %v", err)
		}
	}

	if err := searchRepo.InitSchema(ctx); err != nil {
		return err
	}

	indexed := 0
	for offset := 0; ; offset += indexBatchSize {
		analyses, err := analysisRepo.List(ctx, indexBatchSize, offset)
		if err != nil {
			return err
		}
		if len(analyses) == 0 {
			break
		}

		for _, analysis := range analyses {
			if analysis == nil {
				continue
			}
			if err := searchRepo.Index(ctx, analysis); err != nil {
				log.Printf("Failed to index analysis %s: %v", analysis.SessionID, err)
				continue
			}
			indexed++
		}

		if len(analyses) < indexBatchSize {
			break
		}
	}

	log.Printf("Indexing complete: %d analyses indexed.", indexed)
	return nil
}
