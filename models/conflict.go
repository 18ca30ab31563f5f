// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ResolutionKind discriminates the variants of ConflictResolution.
type ResolutionKind string

const (
	ResolutionUseLocal       ResolutionKind = "use_local"
	ResolutionUseRemote      ResolutionKind = "use_remote"
	ResolutionKeepBoth       ResolutionKind = "keep_both"
	ResolutionMerged         ResolutionKind = "merged"
	ResolutionRequiresManual ResolutionKind = "requires_manual"
)

// ConflictResolution is the outcome of resolving one conflict. The set of
// implementations is closed: UseLocal, UseRemote, KeepBoth, Merged and
// RequiresManual. Consumers switch on the concrete type.
type ConflictResolution interface {
	Kind() ResolutionKind
	isConflictResolution()
}

// UseLocal keeps the local note and overwrites the vault copy.
type UseLocal struct {
	Note Note
}

// UseRemote keeps the vault copy and overwrites the local note.
type UseRemote struct {
	Note Note
}

// KeepBoth keeps the local note and stores the vault copy as a renamed note.
type KeepBoth struct {
	Local         Note
	RemoteRenamed Note
}

// Merged replaces both sides with an automatically merged note.
type Merged struct {
	Note Note
}

// RequiresManual leaves the conflict for the user.
type RequiresManual struct {
	Local  Note
	Remote Note
	Reason string
}

func (UseLocal) Kind() ResolutionKind       { return ResolutionUseLocal }
func (UseRemote) Kind() ResolutionKind      { return ResolutionUseRemote }
func (KeepBoth) Kind() ResolutionKind       { return ResolutionKeepBoth }
func (Merged) Kind() ResolutionKind         { return ResolutionMerged }
func (RequiresManual) Kind() ResolutionKind { return ResolutionRequiresManual }

func (UseLocal) isConflictResolution()       {}
func (UseRemote) isConflictResolution()      {}
func (KeepBoth) isConflictResolution()       {}
func (Merged) isConflictResolution()         {}
func (RequiresManual) isConflictResolution() {}
