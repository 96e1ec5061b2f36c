package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/sigtap/sigtap/pkg/config"
	"github.com/sigtap/sigtap/pkg/sampler"
	"github.com/sigtap/sigtap/pkg/sensor"
)

// The emulator stands in for the sampling device: it runs the hosted
// sampling loop against the synthetic signal source and writes records
// to stdout at the configured cadence.
func main() {
	var (
		configFlag   = flag.String("config", "config.yaml", "Configuration file path")
		intervalFlag = flag.Uint("interval-us", 0, "Sample interval override in microseconds")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *intervalFlag > 0 {
		cfg.Sampling.IntervalMicros = uint32(*intervalFlag)
	}

	src := sensor.NewSynthetic(cfg)
	defer src.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := sampler.New(cfg, src, os.Stdout)
	if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Sampler stopped: %v", err)
	}
}
