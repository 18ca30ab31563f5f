// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncResult aggregates the outcome of a vault sync pass.
type SyncResult struct {
	Uploaded   int `json:"uploaded"`
	Downloaded int `json:"downloaded"`
	Conflicts  int `json:"conflicts"`
	Errors     int `json:"errors"`
	Skipped    int `json:"skipped"`
}

// Clean reports whether the pass finished without errors or open conflicts.
func (r SyncResult) Clean() bool {
	return r.Errors == 0 && r.Conflicts == 0
}

// SyncStage names a phase of a vault sync, used for progress reporting.
type SyncStage string

const (
	SyncStagePush    SyncStage = "push"
	SyncStagePull    SyncStage = "pull"
	SyncStageResolve SyncStage = "resolve"
)

// SyncProgress is emitted after each note processed during a vault sync.
type SyncProgress struct {
	VaultID string    `json:"vault_id"`
	Stage   SyncStage `json:"stage"`
	Done    int       `json:"done"`
	Total   int       `json:"total"`
}
