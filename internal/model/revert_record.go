package model

// RevertRecord captures an absorbed per-operation revert for diagnostics.
type RevertRecord struct {
	Source Source `json:"source"`
	Method string `json:"method"`
	Reason string `json:"reason"`
}
