// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cadence/internal/logging"
)

// countingService blocks until canceled, or fails the first failN runs.
type countingService struct {
	runs  atomic.Int32
	failN int32
}

func (s *countingService) Serve(ctx context.Context) error {
	n := s.runs.Add(1)
	if n <= s.failN {
		return errors.New("boom")
	}
	<-ctx.Done()
	return ctx.Err()
}

type oneShotService struct{ runs atomic.Int32 }

func (s *oneShotService) Serve(context.Context) error {
	s.runs.Add(1)
	return suture.ErrDoNotRestart
}

func newTestTree() *SupervisorTree {
	return NewSupervisorTree(logging.NewSlogLogger(zerolog.Nop()), TreeConfig{
		FailureBackoff:  10 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestNewSupervisorTree_Defaults(t *testing.T) {
	tree := NewSupervisorTree(logging.NewSlogLogger(zerolog.Nop()), TreeConfig{})

	want := DefaultTreeConfig()
	if tree.config != want {
		t.Errorf("config = %+v, want %+v", tree.config, want)
	}
	if tree.root == nil || tree.data == nil || tree.api == nil {
		t.Fatal("expected root, data and api supervisors")
	}
}

func TestSupervisorTree_RunsAndStops(t *testing.T) {
	tree := newTestTree()
	data := &countingService{}
	api := &countingService{}
	tree.AddDataService(data)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	done := tree.ServeBackground(ctx)

	waitFor(t, func() bool { return data.runs.Load() == 1 && api.runs.Load() == 1 })
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not stop after cancel")
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport() error = %v", err)
	}
	if len(report) != 0 {
		t.Errorf("unstopped services = %v", report)
	}
}

func TestSupervisorTree_RestartsFailedService(t *testing.T) {
	tree := newTestTree()
	flaky := &countingService{failN: 2}
	steady := &countingService{}
	tree.AddDataService(flaky)
	tree.AddAPIService(steady)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := tree.ServeBackground(ctx)

	waitFor(t, func() bool { return flaky.runs.Load() >= 3 })
	if got := steady.runs.Load(); got != 1 {
		t.Errorf("api service runs = %d, want 1 (isolated from data layer)", got)
	}

	cancel()
	<-done
}

func TestSupervisorTree_DoNotRestart(t *testing.T) {
	tree := newTestTree()
	once := &oneShotService{}
	tree.AddDataService(once)

	ctx, cancel := context.WithCancel(context.Background())
	done := tree.ServeBackground(ctx)

	waitFor(t, func() bool { return once.runs.Load() == 1 })
	time.Sleep(50 * time.Millisecond)
	if got := once.runs.Load(); got != 1 {
		t.Errorf("runs = %d, want 1", got)
	}

	cancel()
	<-done
}
