package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightnet/api"
	"github.com/Domenick1991/flightnet/config"
	"github.com/Domenick1991/flightnet/internal/bootstrap"
	"github.com/Domenick1991/flightnet/internal/events"
	"github.com/Domenick1991/flightnet/internal/loader"
	"github.com/Domenick1991/flightnet/internal/network"
	"github.com/Domenick1991/flightnet/internal/service/reservations"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	net := network.New()
	if cfg.Data.RoutesFile != "" {
		res, err := loader.LoadRoutes(net, cfg.Data.RoutesFile)
		if err != nil {
			log.Fatalf("load routes: %v", err)
		}
		log.Printf("loaded %d airports, %d flights (%d rows skipped)", res.Airports, res.Flights, res.Skipped)
	}

	opts := []reservations.ServiceOption{
		reservations.WithMaxStops(cfg.Booking.MaxStops),
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := events.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		opts = append(opts,
			reservations.WithEventProducer(producer, cfg.Kafka.BookingTopic),
			reservations.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}
	service := reservations.NewService(net, opts...)

	router := api.NewRouter(
		api.NewNetworkHandler(service),
		api.NewSearchHandler(service),
		api.NewBookingHandler(service),
	)

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
