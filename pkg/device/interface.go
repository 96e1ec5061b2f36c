package device

import "github.com/sigtap/sigtap/pkg/record"

// Device is a source of captured sample records (real serial hardware
// or a mock).
type Device interface {
	Connect() error
	Close() error
	Samples() <-chan record.Record
	IsConnected() bool
}

// Ensure Serial implements Device.
var _ Device = (*Serial)(nil)

// Ensure Mock implements Device.
var _ Device = (*Mock)(nil)
