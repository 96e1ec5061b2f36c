//go:build tinygo

//go:generate tinygo flash -target=xiao

package main

import (
	"machine"
	"time"

	"github.com/sigtap/sigtap/pkg/gate"
	"github.com/sigtap/sigtap/pkg/record"
)

var (
	adcSignal machine.ADC
	uart      = machine.UART0

	// Timing
	bootTime time.Time

	// Line buffer reused across emissions (worst case line is 18 bytes)
	lineBuf [24]byte
)

func main() {
	// Configure the ADC pin with the target resolution
	PIN_SIGNAL.Configure(machine.PinConfig{Mode: machine.PinInput})

	adcSignal = machine.ADC{Pin: PIN_SIGNAL}
	adcSignal.Configure(machine.ADCConfig{
		Reference:  ADC_REFERENCE_MV,
		Resolution: ADC_RESOLUTION,
	})

	// Configure UART for sample output
	uart.Configure(machine.UARTConfig{
		BaudRate: UART_BAUD_RATE,
	})

	// Initialize timing
	bootTime = time.Now()
	g := gate.New(SAMPLE_INTERVAL_US)

	// Main loop: poll the clock, emit one sample per admitted tick.
	// Transmission completes before the next gate check, so lines go
	// out one at a time in time order.
	for {
		if g.ShouldFire(micros()) {
			emitSample()
		}

		// Small delay to prevent tight loop (but still allow precise timing)
		time.Sleep(100 * time.Microsecond)
	}
}

// micros returns the microsecond counter the gate runs on. Truncation
// to 32 bits wraps about every 71.6 minutes; the gate's modular
// subtraction absorbs the wrap.
func micros() uint32 {
	return uint32(time.Since(bootTime).Microseconds())
}

// emitSample reads the signal channel and transmits one record. The
// reported time comes from the millisecond clock, independent of the
// tick counter driving the gate.
func emitSample() {
	// Get() is left-justified to 16 bits regardless of resolution
	raw := adcSignal.Get() >> (16 - ADC_RESOLUTION)

	millis := uint32(time.Since(bootTime).Milliseconds())

	// Output format: "seconds,raw\n" with exactly 3 decimals
	// Example: "1.234,512\n"
	line := record.Append(lineBuf[:0], millis, raw)
	uart.Write(line)
}
