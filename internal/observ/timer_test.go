package observ

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("parse")
	tm.End(idx, "3 numbers")
	tm.End(99, "ignored")

	r := tm.Report()
	if len(r.Phases) != 1 || r.Phases[0].Name != "parse" || r.Phases[0].Note != "3 numbers" {
		t.Fatalf("unexpected report %+v", r)
	}
	if r.TotalMS < 0 {
		t.Fatalf("negative total %v", r.TotalMS)
	}
	s := tm.Summary()
	if !strings.Contains(s, "parse") || !strings.Contains(s, "// 3 numbers") || !strings.Contains(s, "total") {
		t.Fatalf("unexpected summary:\n%s", s)
	}
}

func TestTimerTrack(t *testing.T) {
	tm := NewTimer()
	boom := errors.New("boom")
	if err := tm.Track("check", func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Track returned %v", err)
	}
	if got := tm.Report().Phases[0].Note; got != "failed" {
		t.Fatalf("note = %q", got)
	}
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.End(tm.Begin("file"), "")
		}()
	}
	wg.Wait()
	if n := len(tm.Report().Phases); n != 16 {
		t.Fatalf("got %d phases", n)
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); r.Phases != nil || r.TotalMS != 0 {
		t.Fatalf("empty timer report %+v", r)
	}
}
