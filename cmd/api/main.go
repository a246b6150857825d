package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/PratikDhanave/event-forwarder-service/internal/config"
	"github.com/PratikDhanave/event-forwarder-service/internal/httpserver"
	"github.com/PratikDhanave/event-forwarder-service/internal/supabase"
)

// main boots the service: config → outbound client → HTTP server.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Load runtime config from environment (SUPABASE_URL, SUPABASE_SERVICE_ROLE_KEY).
	cfg, err := config.Load()
	if err != nil {
		sugar.Fatal(err)
	}

	// Missing Supabase config is not fatal: the service still serves
	// /health and answers /track with the standard failure envelope.
	if !cfg.SupabaseConfigured() {
		sugar.Warn("Supabase configuration missing; /track will fail until SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are set")
	}

	// The storage backend is reached only through its REST insertion endpoint.
	client := supabase.New(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.ForwardTimeout)

	router := httpserver.NewRouter(cfg, client, sugar)

	sugar.Infow("server started", "addr", cfg.ListenAddr)
	sugar.Fatal(router.Run(cfg.ListenAddr))
}
