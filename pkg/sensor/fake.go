package sensor

import "sync"

// Fake replays a fixed sequence of codes, cycling when exhausted. For
// tests.
type Fake struct {
	mu    sync.Mutex
	codes []uint16
	max   uint16
	pos   int
	err   error
}

// NewFake creates a fake sensor that cycles through codes.
func NewFake(max uint16, codes ...uint16) *Fake {
	return &Fake{codes: codes, max: max}
}

// Read returns the next scripted code, or the injected error.
func (f *Fake) Read() (uint16, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return 0, f.err
	}
	if len(f.codes) == 0 {
		return 0, nil
	}
	c := f.codes[f.pos%len(f.codes)]
	f.pos++
	return c, nil
}

// Fail makes every subsequent Read return err.
func (f *Fake) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Reads returns how many times Read has been called.
func (f *Fake) Reads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pos
}

// Max returns the configured converter range.
func (f *Fake) Max() uint16 {
	return f.max
}

// Close is a no-op.
func (f *Fake) Close() error {
	return nil
}
