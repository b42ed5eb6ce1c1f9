package worker

import (
	"sync/atomic"
	"testing"
)

func TestGroupWaitsForAll(t *testing.T) {
	var g Group
	var n atomic.Int32
	for range 100 {
		g.Go(func() { n.Add(1) })
	}
	g.Wait()
	if n.Load() != 100 {
		t.Fatalf("expected 100 calls, got %d", n.Load())
	}
}

func TestWorkersSurvivePanics(t *testing.T) {
	var g Group
	for range 32 {
		g.Go(func() { panic("boom") })
	}
	g.Wait()

	var n atomic.Int32
	for range 32 {
		g.Go(func() { n.Add(1) })
	}
	g.Wait()
	if n.Load() != 32 {
		t.Fatalf("expected the pool to keep running after panics, got %d calls", n.Load())
	}
}
