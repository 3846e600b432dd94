package main

import (
	"context"
	"log"

	"servizi-facili-be/internal/bootstrap"
	"servizi-facili-be/internal/config"
	"servizi-facili-be/internal/server"
	"servizi-facili-be/internal/tracer"
)

func main() {
	// 1. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 4. Start the websocket hub that streams UI actions
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go container.WebSocketHub.Run(ctx)

	// 5. Initialize and run the server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
