package stopwatch

import (
	"testing"
	"time"
)

func TestFixedMeasure(t *testing.T) {
	var sw Fixed
	first := sw.Measure()
	time.Sleep(2 * time.Millisecond)
	if got := sw.Measure(); got != first || got != Nominal {
		t.Fatalf("Measure() = %v then %v, want %v", first, got, Nominal)
	}
}
