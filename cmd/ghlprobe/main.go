// ghlprobe lists the GoHighLevel pipelines and stages of the configured
// account. Automation setup needs those identifiers once, when wiring the
// import pipeline to the CRM; this tool replaces poking the REST API by
// hand.
//
// Credentials come from flags, environment (GHL_API_KEY etc.), a .env
// file, or the optional JSON config — never from anywhere else.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"github.com/propflow/leadboard/internal/config"
	"github.com/propflow/leadboard/internal/ghl"
	"github.com/propflow/leadboard/internal/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewLogger("ghl-probe")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.GoHighLevel.APIKey == "" {
		log.Fatal().Msg("an API key is required: pass -ghl-key or set GHL_API_KEY")
	}

	client := ghl.NewClient(ghl.Config{
		BaseURL:    cfg.GoHighLevel.BaseURL,
		APIKey:     cfg.GoHighLevel.APIKey,
		LocationID: cfg.GoHighLevel.LocationID,
		Timeout:    cfg.GoHighLevel.RequestTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pipelines, err := client.Pipelines(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error fetching pipelines")
	}

	if len(pipelines) == 0 {
		fmt.Println("no pipelines found for this account")
		return
	}

	for _, p := range pipelines {
		fmt.Printf("pipeline %q id=%s\n", p.Name, p.ID)
		for _, s := range p.Stages {
			fmt.Printf("  stage %q id=%s\n", s.Name, s.ID)
		}
	}
}
