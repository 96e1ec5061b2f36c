package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sigtap/sigtap/pkg/record"
)

// recorder appends captured samples to a CSV file using the time,amp1
// header layout the plotting tools expect.
type recorder struct {
	f *os.File
	w *bufio.Writer
}

func newRecorder(path string) (*recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if _, err := w.WriteString("time,amp1\n"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	return &recorder{f: f, w: w}, nil
}

func (r *recorder) append(rec record.Record) error {
	_, err := fmt.Fprintf(r.w, "%.3f,%d\n", rec.Seconds, rec.Raw)
	return err
}

func (r *recorder) close() error {
	if err := r.w.Flush(); err != nil {
		r.f.Close()
		return err
	}
	return r.f.Close()
}
