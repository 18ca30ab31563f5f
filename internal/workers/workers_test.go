// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

// recordingWorker is a test implementation of the Worker interface that
// appends its id to a shared event log on Run and Stop.
type recordingWorker struct {
	id     string
	events *[]string
	err    error
}

func (r *recordingWorker) Run(context.Context) error {
	*r.events = append(*r.events, "run "+r.id)
	return r.err
}

func (r *recordingWorker) Stop() {
	*r.events = append(*r.events, "stop "+r.id)
}

func assertEvents(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestWorkers_Run_StartsInOrder(t *testing.T) {
	var events []string
	ws := &Workers{workers: []Worker{
		&recordingWorker{id: "1", events: &events},
		&recordingWorker{id: "2", events: &events},
		&recordingWorker{id: "3", events: &events},
	}}

	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEvents(t, events, []string{"run 1", "run 2", "run 3"})
}

func TestWorkers_Stop_ReverseOrder(t *testing.T) {
	var events []string
	ws := &Workers{workers: []Worker{
		&recordingWorker{id: "1", events: &events},
		&recordingWorker{id: "2", events: &events},
	}}

	ws.Stop()
	assertEvents(t, events, []string{"stop 2", "stop 1"})
}

func TestWorkers_Run_FailureStopsStartedWorkers(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	ws := &Workers{workers: []Worker{
		&recordingWorker{id: "1", events: &events},
		&recordingWorker{id: "2", events: &events},
		&recordingWorker{id: "3", events: &events, err: boom},
		&recordingWorker{id: "4", events: &events},
	}}

	err := ws.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	assertEvents(t, events, []string{"run 1", "run 2", "run 3", "stop 2", "stop 1"})
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not panic when the workers field is nil
	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ws.Stop()
}

func TestNewWorkers(t *testing.T) {
	services := &service.Services{}

	ws := NewWorkers(config.Workers{SyncInterval: time.Minute}, services, logger.Nop())
	if len(ws.workers) != 1 {
		t.Errorf("expected only the sync worker, got %d workers", len(ws.workers))
	}

	ws = NewWorkers(config.Workers{SyncInterval: time.Minute, WatchFileVaults: true}, services, logger.Nop())
	if len(ws.workers) != 2 {
		t.Errorf("expected sync worker and vault watcher, got %d workers", len(ws.workers))
	}
}

func TestSyncWorker_DelegatesToJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := mock.NewMockSyncJob(ctrl)
	gomock.InOrder(
		job.EXPECT().Start(gomock.Any(), 3*time.Minute),
		job.EXPECT().Stop(),
	)

	w := NewSyncWorker(job, 3*time.Minute)
	if err := w.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Stop()
}
