package main

import (
	"context"
	"log"

	"linkmark-be/internal/bootstrap"
	"linkmark-be/internal/config"
	"linkmark-be/internal/server"
	"linkmark-be/internal/tracer"
	"linkmark-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	if err := container.ConsumerService.Start(context.Background()); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 5. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
