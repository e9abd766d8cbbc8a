package coremetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderIncrementsCounters(t *testing.T) {
	r := NewRecorder()
	r.RegionFound()
	r.RegionFound()
	r.BlockEmitted()
	r.BlockSkipped("degenerate_outline")
	r.ObserveCSG(10 * time.Millisecond)
	r.ObserveRasterize(5 * time.Millisecond)

	if got := testutil.ToFloat64(r.regionsFound); got != 2 {
		t.Fatalf("expected 2 regions found, got %v", got)
	}
	if got := testutil.ToFloat64(r.blocksEmitted); got != 1 {
		t.Fatalf("expected 1 block emitted, got %v", got)
	}
}

func TestNilRecorderIsNoOp(t *testing.T) {
	var r *Recorder
	r.RegionFound()
	r.BlockEmitted()
	r.BlockSkipped("x")
	r.ObserveCSG(time.Millisecond)
	r.ObserveRasterize(time.Millisecond)
	if r.Registry() != nil {
		t.Fatalf("expected nil registry from nil recorder")
	}
}
