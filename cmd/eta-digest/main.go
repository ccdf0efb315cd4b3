package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	etadigest "github.com/theoremus-urban-solutions/eta-digest"
	"github.com/theoremus-urban-solutions/eta-digest/bot"
	"github.com/theoremus-urban-solutions/eta-digest/catalog"
	"github.com/theoremus-urban-solutions/eta-digest/config"
	"github.com/theoremus-urban-solutions/eta-digest/digest"
	"github.com/theoremus-urban-solutions/eta-digest/feed"
	"github.com/theoremus-urban-solutions/eta-digest/store"
)

func main() {
	etadigest.InitLogging()

	configPath := flag.String("config", "", "path to config.yml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// the process does not serve without reference data
	cat, err := catalog.Load(cfg.Routes.Dir)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	log.Printf("loaded %d routes: %v", cat.RouteCount(), cat.RouteNames())

	predictions := store.NewPredictionStore()
	vehicles := store.NewVehicleTracker()
	renderer := digest.NewRenderer(cat, predictions)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipeline := feed.NewPipeline(predictions, vehicles)
	subscriber := feed.NewSubscriber(cfg.MQTT, pipeline.Handle)
	if err := subscriber.Start(); err != nil {
		log.Fatalf("feed: %v", err)
	}
	defer subscriber.Close()

	var relay etadigest.MessageRelay
	if cfg.Telegram.Token != "" {
		b, err := bot.New(cfg.Telegram.Token, cfg.Telegram.FeedbackChatID, cat, renderer)
		if err != nil {
			log.Fatalf("bot: %v", err)
		}
		go b.Run(ctx)
		relay = b.SendMessage
	} else {
		log.Printf("no telegram token configured, chat surface disabled")
	}

	if cfg.Tracker.SweepAfterMinutes > 0 {
		sweepAfter := time.Duration(cfg.Tracker.SweepAfterMinutes) * time.Minute
		go func() {
			ticker := time.NewTicker(sweepAfter)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if n := vehicles.SweepOlderThan(sweepAfter); n > 0 {
						log.Printf("swept %d stale vehicles", n)
					}
				}
			}
		}()
	}

	server := etadigest.NewServer(cfg.Server.Port, cat, renderer, predictions, vehicles, relay)
	server.Start()

	<-ctx.Done()
	log.Printf("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
}
