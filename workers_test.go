package md2adoc

import (
	"runtime"
	"testing"
)

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{name: "explicit value", workers: 3, want: 3},
		{name: "explicit value above cap", workers: 20, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolveWorkers(tt.workers); got != tt.want {
				t.Errorf("ResolveWorkers(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestResolveWorkers_Auto(t *testing.T) {
	t.Parallel()

	got := ResolveWorkers(0)
	if got < MinWorkers || got > MaxWorkers {
		t.Errorf("ResolveWorkers(0) = %d, want within [%d, %d]", got, MinWorkers, MaxWorkers)
	}
	if procs := runtime.GOMAXPROCS(0); procs <= MaxWorkers && got != procs {
		t.Errorf("ResolveWorkers(0) = %d, want GOMAXPROCS %d", got, procs)
	}
}
