//go:build tinygo

package main

import "machine"

const (
	// Sampling configuration
	SAMPLE_INTERVAL_US = 4000 // target cadence in microseconds (250 Hz)

	// ADC configuration
	ADC_REFERENCE_MV = 3300 // Reference voltage in millivolts (3.3V)
	ADC_RESOLUTION   = 10   // ADC resolution in bits (10-bit = 0-1023)

	// Signal pin
	PIN_SIGNAL = machine.A1

	// Serial configuration
	// Baud rate calculation: Format "seconds,raw\n"
	// Worst case "4294967.295,1023\n" = ~17 bytes per line
	// 250 lines/sec * 17 bytes/line = 4,250 bytes/sec
	// UART 8N1: 10 bits/byte = 42,500 baud minimum
	// 115200 provides ~2.7x headroom (11,520 bytes/sec max / 4,250 bytes/sec required)
	UART_BAUD_RATE = 115200
)
