package main

import (
	"context"
	"log"

	"github.com/mvolkov/inventory_app/internal/config"
	"github.com/mvolkov/inventory_app/internal/seed"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	if err := seed.Run(context.Background(), db); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	log.Printf("seeded %d items", len(seed.Items()))
}
