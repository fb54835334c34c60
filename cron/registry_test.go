package cron

import (
	"testing"
)

func TestRegistry_RegisterAndRun(t *testing.T) {
	var gotArgs []string
	Register("nightlyprune", "@daily", func(args ...string) {
		gotArgs = append(gotArgs, args...)
	})
	defer Unregister("nightlyprune")

	jobs := Jobs()
	j, ok := jobs["nightlyprune"]
	if !ok {
		t.Fatal("nightlyprune not in Jobs()")
	}
	if j.Schedule != "@daily" {
		t.Errorf("Schedule = %q, want @daily", j.Schedule)
	}
	j.Run("500")
	if len(gotArgs) != 1 || gotArgs[0] != "500" {
		t.Errorf("args = %v, want [500]", gotArgs)
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	Register("dupsweep", "@hourly", func(...string) {})
	defer Unregister("dupsweep")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate")
		}
	}()
	Register("dupsweep", "@every 5m", func(...string) {})
}

func TestRegistry_LockedAfterJobs(t *testing.T) {
	Register("lockprobe", "@weekly", func(...string) {})
	Jobs() // first read locks the registry
	defer Unregister("lockprobe")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic registering after lock")
		}
	}()
	Register("toolate", "@daily", func(...string) {})
}
