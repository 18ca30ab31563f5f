// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	// ManualResolutionReason is attached to conflicts of vaults with the MANUAL strategy.
	ManualResolutionReason = "Manual resolution required by vault conflict strategy"

	conflictCopySuffix = " (conflict)"
	conflictCopyTitle  = "Conflict copy"

	// mergeSimilarity is the minimum share of shared prefix and suffix lines,
	// relative to the shorter note, for a line merge to be attempted.
	mergeSimilarity = 0.5
)

type conflictResolver struct {
	now   func() time.Time
	newID func() string
}

// NewConflictResolver returns a ConflictResolver. now stamps merged notes and
// conflict copies, newID names conflict copies. Nil arguments fall back to
// time.Now and UUIDv7 identifiers.
func NewConflictResolver(now func() time.Time, newID func() string) ConflictResolver {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = utils.NewUUIDGenerator().Generate
	}
	return &conflictResolver{now: now, newID: newID}
}

func (r *conflictResolver) Resolve(local, remote models.Note, strategy models.ConflictStrategy) models.ConflictResolution {
	switch strategy {
	case models.ConflictStrategyLastWriteWins:
		return r.lastWriteWins(local, remote)
	case models.ConflictStrategyKeepBoth:
		return models.KeepBoth{Local: local, RemoteRenamed: r.conflictCopy(remote)}
	case models.ConflictStrategyLocalWins:
		return models.UseLocal{Note: local}
	case models.ConflictStrategyRemoteWins:
		return models.UseRemote{Note: remote}
	case models.ConflictStrategyManual:
		return models.RequiresManual{Local: local, Remote: remote, Reason: ManualResolutionReason}
	default:
		return models.RequiresManual{
			Local:  local,
			Remote: remote,
			Reason: "unknown conflict strategy " + string(strategy),
		}
	}
}

func (r *conflictResolver) lastWriteWins(local, remote models.Note) models.ConflictResolution {
	switch {
	case local.UpdatedAt.After(remote.UpdatedAt):
		return models.UseLocal{Note: local}
	case remote.UpdatedAt.After(local.UpdatedAt):
		return models.UseRemote{Note: remote}
	}

	if merged, ok := r.TryMerge(local, remote); ok {
		return models.Merged{Note: merged}
	}
	return models.UseLocal{Note: local}
}

func (r *conflictResolver) conflictCopy(remote models.Note) models.Note {
	renamed := remote
	renamed.ID = r.newID()
	if strings.TrimSpace(remote.Title) == "" {
		renamed.Title = conflictCopyTitle
	} else {
		renamed.Title = remote.Title + conflictCopySuffix
	}
	renamed.Tags = append([]string(nil), remote.Tags...)
	renamed.Metadata = mergeMetadata(remote.Metadata, nil)
	renamed.UpdatedAt = r.now()
	return renamed
}

func (r *conflictResolver) TryMerge(local, remote models.Note) (models.Note, bool) {
	latest := latestTime(local.UpdatedAt, remote.UpdatedAt)

	if local.Content == remote.Content {
		if local.Title == remote.Title && local.SameTags(remote) {
			merged := local
			merged.UpdatedAt = latest
			return merged, true
		}

		merged := local
		if remote.UpdatedAt.After(local.UpdatedAt) {
			merged.Title = remote.Title
		}
		merged.Tags = unionTags(local.Tags, remote.Tags)
		merged.Metadata = mergeMetadata(local.Metadata, remote.Metadata)
		merged.CreatedAt = earliestTime(local.CreatedAt, remote.CreatedAt)
		merged.UpdatedAt = latest
		return merged, true
	}

	localLines, remoteLines := local.Lines(), remote.Lines()

	if longer, ok := prefixSuperset(local, localLines, remote, remoteLines); ok {
		merged := longer
		merged.Tags = unionTags(local.Tags, remote.Tags)
		merged.Metadata = mergeMetadata(local.Metadata, remote.Metadata)
		merged.UpdatedAt = latest
		return merged, true
	}

	content, ok := mergeLines(localLines, remoteLines)
	if !ok {
		return models.Note{}, false
	}

	merged := local
	merged.Content = content
	merged.Tags = unionTags(local.Tags, remote.Tags)
	merged.Metadata = mergeMetadata(local.Metadata, remote.Metadata)
	merged.UpdatedAt = r.now()
	return merged, true
}

// prefixSuperset returns the note whose lines extend the other's lines.
func prefixSuperset(local models.Note, localLines []string, remote models.Note, remoteLines []string) (models.Note, bool) {
	switch {
	case len(localLines) <= len(remoteLines) && commonPrefix(localLines, remoteLines) == len(localLines):
		return remote, true
	case len(remoteLines) < len(localLines) && commonPrefix(localLines, remoteLines) == len(remoteLines):
		return local, true
	}
	return models.Note{}, false
}

// mergeLines keeps the shared head and tail of both versions and places the
// diverging middles between them, separated by blank lines. It gives up when
// the shared lines cover less than half of the shorter version.
func mergeLines(local, remote []string) (string, bool) {
	shorter := min(len(local), len(remote))
	prefix := commonPrefix(local, remote)
	suffix := min(commonSuffix(local, remote), shorter-prefix)

	if float64(prefix+suffix) < mergeSimilarity*float64(shorter) {
		return "", false
	}

	localMiddle := local[prefix : len(local)-suffix]
	remoteMiddle := remote[prefix : len(remote)-suffix]

	lines := make([]string, 0, len(local)+len(remoteMiddle)+2)
	lines = append(lines, local[:prefix]...)
	lines = append(lines, localMiddle...)
	if len(remoteMiddle) > 0 {
		lines = append(lines, "")
		lines = append(lines, remoteMiddle...)
	}
	if suffix > 0 {
		lines = append(lines, "")
		lines = append(lines, local[len(local)-suffix:]...)
	}
	return strings.Join(lines, "\n"), true
}

func commonPrefix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func commonSuffix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

// unionTags keeps local tags first, then remote tags not already present.
func unionTags(local, remote []string) []string {
	seen := make(map[string]struct{}, len(local)+len(remote))
	tags := make([]string, 0, len(local)+len(remote))
	for _, list := range [][]string{local, remote} {
		for _, t := range list {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// mergeMetadata copies local then remote, so remote values win on key collisions.
func mergeMetadata(local, remote map[string]string) map[string]string {
	if len(local) == 0 && len(remote) == 0 {
		return nil
	}
	merged := make(map[string]string, len(local)+len(remote))
	for k, v := range local {
		merged[k] = v
	}
	for k, v := range remote {
		merged[k] = v
	}
	return merged
}

func latestTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

func earliestTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}
