// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncMode controls which directions a vault sync runs in.
type SyncMode string

const (
	SyncModePushOnly      SyncMode = "PUSH_ONLY"
	SyncModePullOnly      SyncMode = "PULL_ONLY"
	SyncModeBidirectional SyncMode = "BIDIRECTIONAL"
	SyncModeDisabled      SyncMode = "DISABLED"
)

// Pushes reports whether local changes are uploaded in this mode.
func (m SyncMode) Pushes() bool {
	return m == SyncModePushOnly || m == SyncModeBidirectional
}

// Pulls reports whether remote changes are downloaded in this mode.
func (m SyncMode) Pulls() bool {
	return m == SyncModePullOnly || m == SyncModeBidirectional
}

// ConflictStrategy selects how the conflict resolver reconciles diverging edits.
type ConflictStrategy string

const (
	ConflictStrategyLastWriteWins ConflictStrategy = "LAST_WRITE_WINS"
	ConflictStrategyKeepBoth      ConflictStrategy = "KEEP_BOTH"
	ConflictStrategyLocalWins     ConflictStrategy = "LOCAL_WINS"
	ConflictStrategyRemoteWins    ConflictStrategy = "REMOTE_WINS"
	ConflictStrategyManual        ConflictStrategy = "MANUAL"
)

// ProviderType names a storage provider implementation.
type ProviderType string

const (
	// ProviderTypeFile is a vault kept as markdown files in a local directory.
	ProviderTypeFile ProviderType = "FILE"

	// ProviderTypeHTTP is a vault exposed by a remote HTTP vault server.
	ProviderTypeHTTP ProviderType = "HTTP"
)

// Vault settings keys understood by the bundled providers.
const (
	VaultSettingPath    = "path"
	VaultSettingBaseURL = "base_url"
	VaultSettingToken   = "token"
)

// Vault is a configured storage location the local notes are synchronised with.
// The sync core treats it as read-only configuration, except for LastSyncedAt.
type Vault struct {
	ID               string            `json:"id" validate:"required"`
	Name             string            `json:"name"`
	ProviderType     ProviderType      `json:"provider_type" validate:"required,oneof=FILE HTTP"`
	Settings         map[string]string `json:"settings,omitempty"`
	SyncMode         SyncMode          `json:"sync_mode" validate:"required,oneof=PUSH_ONLY PULL_ONLY BIDIRECTIONAL DISABLED"`
	ConflictStrategy ConflictStrategy  `json:"conflict_strategy" validate:"required,oneof=LAST_WRITE_WINS KEEP_BOTH LOCAL_WINS REMOTE_WINS MANUAL"`
	LastSyncedAt     *time.Time        `json:"last_synced_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// Setting returns a provider-specific setting or an empty string.
func (v Vault) Setting(key string) string {
	if v.Settings == nil {
		return ""
	}
	return v.Settings[key]
}

// ProviderCapabilities describes what a storage provider supports.
type ProviderCapabilities struct {
	SupportsVoiceRecordings bool `json:"supports_voice_recordings"`
	SupportsImages          bool `json:"supports_images"`
	SupportsTags            bool `json:"supports_tags"`
	SupportsMetadata        bool `json:"supports_metadata"`
	SupportsEncryption      bool `json:"supports_encryption"`
	RequiresInternet        bool `json:"requires_internet"`
}
