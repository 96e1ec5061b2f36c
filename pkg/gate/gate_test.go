package gate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New(4000)
	assert.Equal(t, uint32(4000), g.Interval())
	assert.Equal(t, uint32(0), g.Last())

	// Zero interval is coerced so the gate never admits every tick by
	// accident.
	g = New(0)
	assert.Equal(t, uint32(1), g.Interval())
}

func TestFromDuration(t *testing.T) {
	g := FromDuration(4 * time.Millisecond)
	assert.Equal(t, uint32(4000), g.Interval())
}

func TestShouldFire_Cadence(t *testing.T) {
	g := New(4000)

	// Ticks arrive every 500µs; admissions must land exactly one
	// interval apart.
	var admitted []uint32
	for now := uint32(0); now <= 40000; now += 500 {
		if g.ShouldFire(now) {
			admitted = append(admitted, now)
		}
	}

	require.NotEmpty(t, admitted)
	for i := 1; i < len(admitted); i++ {
		gap := admitted[i] - admitted[i-1]
		assert.GreaterOrEqual(t, gap, uint32(4000))
		assert.Equal(t, uint32(4000), gap, "tick granularity divides the interval, so the gap must converge exactly")
	}
}

func TestShouldFire_SingleAdmissionPerWindow(t *testing.T) {
	g := New(4000)

	// Ticks far denser than the interval: exactly one admission per
	// 4000µs window, no double-fires.
	admissions := 0
	for now := uint32(0); now <= 40000; now += 100 {
		if g.ShouldFire(now) {
			admissions++
		}
	}
	assert.Equal(t, 10, admissions)
}

func TestShouldFire_AdmissionTimeSemantics(t *testing.T) {
	g := New(4000)

	require.True(t, g.ShouldFire(4000))
	assert.Equal(t, uint32(4000), g.Last())

	// A late admission re-bases the interval on the admission tick, not
	// on the originally due tick.
	assert.False(t, g.ShouldFire(7000))
	require.True(t, g.ShouldFire(9000))
	assert.Equal(t, uint32(9000), g.Last())

	assert.False(t, g.ShouldFire(12000), "next window is measured from 9000, not 8000")
	assert.True(t, g.ShouldFire(13000))
}

func TestShouldFire_Wraparound(t *testing.T) {
	const max = ^uint32(0)

	tests := []struct {
		name string
		last uint32
		now  uint32
		want bool
	}{
		{
			name: "due exactly across the wrap",
			last: max - 1999, // 2000 ticks before the wrap
			now:  2000,       // 2000 ticks after it
			want: true,
		},
		{
			name: "one tick short across the wrap",
			last: max - 1999,
			now:  1999,
			want: false,
		},
		{
			name: "now exactly at the wrap",
			last: max - 3999,
			now:  0,
			want: true,
		},
		{
			name: "last at counter maximum",
			last: max,
			now:  3998,
			want: false,
		},
		{
			name: "last at counter maximum, due",
			last: max,
			now:  3999,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(4000)
			require.True(t, g.ShouldFire(tt.last), "seed the last-fire tick")
			assert.Equal(t, tt.want, g.ShouldFire(tt.now))
		})
	}
}

func TestShouldFire_WrappedCadenceContinues(t *testing.T) {
	const max = ^uint32(0)
	g := New(4000)

	// Drive the gate across the wrap with dense ticks and check the
	// admitted gaps stay exact in modular arithmetic.
	start := max - 20000
	var admitted []uint32
	for i := uint32(0); i <= 40000; i += 500 {
		now := start + i // wraps past max partway through
		if g.ShouldFire(now) {
			admitted = append(admitted, now)
		}
	}

	require.Greater(t, len(admitted), 5)
	for i := 1; i < len(admitted); i++ {
		assert.Equal(t, uint32(4000), admitted[i]-admitted[i-1])
	}
}
