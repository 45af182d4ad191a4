// Command seed fills the database with the demo user and catalog. It is
// idempotent: rerunning updates nothing that already exists.
package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gostorefront/catalog/internal/config"
	"github.com/gostorefront/catalog/internal/db"
	"github.com/gostorefront/catalog/internal/es"
	"github.com/gostorefront/catalog/internal/events"
	"github.com/gostorefront/catalog/internal/repo"
	"github.com/gostorefront/catalog/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	gdb, err := db.Open(ctx, cfg.DSN())
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	gormRepo := repo.NewGormRepo(gdb)

	var indexer seed.ProductIndexer
	if cfg.ES_URL != "" {
		esClient, err := es.NewClient(cfg.ES_URL, cfg.ES_USER, cfg.ES_PASSWORD)
		if err != nil {
			log.Fatalf("es init error: %v", err)
		}
		indexer = esClient
	}

	var publisher seed.EventPublisher
	if cfg.KAFKA_ADDRESS != "" {
		producer := events.NewProducer(strings.Split(cfg.KAFKA_ADDRESS, ","))
		defer producer.Close()
		publisher = producer
	}

	created, err := seed.Run(ctx, gormRepo, indexer, publisher)
	if err != nil {
		log.Fatalf("seed error: %v", err)
	}
	log.Printf("seeded user %s, %d new products", seed.DemoUserEmail, created)
}
