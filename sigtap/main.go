package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/sigtap/sigtap/pkg/config"
	"github.com/sigtap/sigtap/pkg/device"
)

func main() {
	var (
		portFlag   = flag.String("p", "", "Serial port override (e.g., COM3 or /dev/ttyACM0)")
		configFlag = flag.String("config", "config.yaml", "Configuration file path")
		mockFlag   = flag.Bool("mock", false, "Use a synthetic device instead of a serial port")
		outFlag    = flag.String("o", "", "Record captured samples to this CSV file")
		listFlag   = flag.Bool("list", false, "List available serial ports and exit")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Override serial port if provided via command line
	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}

	if *listFlag {
		ports, err := device.Ports()
		if err != nil {
			log.Fatalf("Failed to list serial ports: %v", err)
		}
		for _, p := range ports {
			fmt.Printf("%s\t%s\n", p.Name, p.Description)
		}
		return
	}

	var dev device.Device
	if *mockFlag {
		dev = device.NewMock(cfg)
	} else {
		dev = device.New(cfg)
	}

	var rec *recorder
	if *outFlag != "" {
		rec, err = newRecorder(*outFlag)
		if err != nil {
			log.Fatalf("Failed to open recording file: %v", err)
		}
	}

	if err := dev.Connect(); err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	log.Printf("Connected to %s", cfg.Serial.Port)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	run(dev, rec, interrupt)

	if rec != nil {
		if err := rec.close(); err != nil {
			log.Printf("Error closing recording file: %v", err)
		}
	}
	if err := dev.Close(); err != nil {
		log.Printf("Error closing device: %v", err)
	}
}

// run echoes captured samples to stdout (and the recorder, when one is
// open) until the stream ends or an interrupt arrives.
func run(dev device.Device, rec *recorder, interrupt <-chan os.Signal) {
	for {
		select {
		case <-interrupt:
			log.Printf("Interrupted, shutting down")
			return
		case r, ok := <-dev.Samples():
			if !ok {
				log.Printf("Sample stream closed")
				return
			}
			fmt.Printf("%.3f,%d\n", r.Seconds, r.Raw)
			if rec != nil {
				if err := rec.append(r); err != nil {
					log.Printf("Failed to record sample: %v", err)
				}
			}
		}
	}
}
