// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Note is a single text note kept in the local store and mirrored into a vault.
type Note struct {
	// ID is the stable identifier shared by the local copy and the vault copy.
	ID string `json:"id"`

	// VaultID is the vault this note is synchronised with.
	VaultID string `json:"vault_id"`

	// Title is the human-readable title. It may be empty.
	Title string `json:"title"`

	// Content is the markdown body of the note.
	Content string `json:"content"`

	// Tags is the ordered tag list of the note.
	Tags []string `json:"tags,omitempty"`

	// Metadata holds custom key/value pairs carried with the note.
	Metadata map[string]string `json:"metadata,omitempty"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last modification timestamp. It is the only signal
	// used for conflict detection.
	UpdatedAt time.Time `json:"updated_at"`

	// IsSynced reports whether the local copy was last known to match the vault.
	IsSynced bool `json:"is_synced"`
}

// NormalizeTime reduces t to UTC at microsecond precision, the resolution
// every supported store round-trips. Timestamps are compared only after
// normalisation.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// Lines splits the note content into lines.
func (n Note) Lines() []string {
	return strings.Split(n.Content, "\n")
}

// SameTags reports whether both notes carry the same set of tags,
// ignoring order and duplicates.
func (n Note) SameTags(other Note) bool {
	a := tagSet(n.Tags)
	b := tagSet(other.Tags)
	if len(a) != len(b) {
		return false
	}
	for t := range a {
		if _, ok := b[t]; !ok {
			return false
		}
	}
	return true
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

// NoteMetadata is the lightweight description of a note returned by a
// provider listing.
type NoteMetadata struct {
	ID         string    `json:"id"`
	Path       string    `json:"path"`
	ModifiedAt time.Time `json:"modified_at"`
	Size       int64     `json:"size"`
	Tags       []string  `json:"tags,omitempty"`
}
