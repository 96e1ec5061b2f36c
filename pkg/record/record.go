// Package record implements the wire format shared by the firmware and
// the host tools: one ASCII line per sample, "<seconds>,<raw>\n", with
// seconds fixed to exactly three decimals.
package record

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one decoded sample line.
type Record struct {
	Seconds float64 // elapsed seconds since device start
	Raw     uint16  // raw ADC code, untouched by any scaling
}

// Append formats one sample and appends the line to dst, returning the
// extended slice. elapsedMillis is the device's millisecond counter;
// splitting it on 1000 with a zero-padded remainder yields exactly
// three decimals and can never produce scientific notation. The raw
// value is printed as-is, no leading zeros.
//
// Append allocates nothing as long as dst has capacity for the line
// (worst case "4294967.295,65535\n", 18 bytes).
func Append(dst []byte, elapsedMillis uint32, raw uint16) []byte {
	dst = strconv.AppendUint(dst, uint64(elapsedMillis/1000), 10)
	dst = append(dst, '.')
	frac := elapsedMillis % 1000
	if frac < 100 {
		dst = append(dst, '0')
	}
	if frac < 10 {
		dst = append(dst, '0')
	}
	dst = strconv.AppendUint(dst, uint64(frac), 10)
	dst = append(dst, ',')
	dst = strconv.AppendUint(dst, uint64(raw), 10)
	dst = append(dst, '\n')
	return dst
}

// Parse decodes one line (without its trailing newline) into a Record.
func Parse(line string) (Record, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return Record{}, fmt.Errorf("invalid line format: expected 2 comma-separated values, got %d", len(parts))
	}

	seconds, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid timestamp: %w", err)
	}
	if seconds < 0 {
		return Record{}, fmt.Errorf("negative timestamp: %s", parts[0])
	}

	raw, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return Record{}, fmt.Errorf("invalid reading: %w", err)
	}

	return Record{Seconds: seconds, Raw: uint16(raw)}, nil
}
