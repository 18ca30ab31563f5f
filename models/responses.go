package models

// VaultSyncResponse is returned by the control API after a vault sync pass.
type VaultSyncResponse struct {
	VaultID string     `json:"vault_id"`
	Result  SyncResult `json:"result"`
}

// SyncAllResponse carries the result of every vault that finished its pass
// together with the messages of the vaults that failed.
type SyncAllResponse struct {
	Results map[string]SyncResult `json:"results"`
	Errors  []string              `json:"errors,omitempty"`
}

// ProgressResponse reports the synced percentage of a vault.
type ProgressResponse struct {
	VaultID  string `json:"vault_id"`
	Progress int    `json:"progress"`
}

// CountResponse carries the number of notes or rows an operation affected.
type CountResponse struct {
	Count int64 `json:"count"`
}

// SyncStatesResponse lists sync states of a vault.
type SyncStatesResponse struct {
	SyncStates []SyncState `json:"sync_states"`

	// Length is the total number of entries in SyncStates.
	Length int `json:"length"`
}

// RetryQueueResponse lists retry queue items of a vault.
type RetryQueueResponse struct {
	Items []RetryQueueItem `json:"items"`

	// Length is the total number of entries in Items.
	Length int `json:"length"`
}

// VaultsResponse lists the configured vaults.
type VaultsResponse struct {
	Vaults []Vault `json:"vaults"`
	Length int     `json:"length"`
}
