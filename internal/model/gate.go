package model

// How a resolution arrived at its quota state.
const (
	MatchedExact   = "exact"
	MatchedSimilar = "similar"
	MatchedNew     = "new"
)

// GateState is the resolved usage state the client acts on: whether the
// device is blocked, whether its free transformation is spent, and how the
// device was recognized.
type GateState struct {
	FingerprintHash      string `json:"fingerprint_hash"`
	IsBlocked            bool   `json:"is_blocked"`
	HasUsedFreeTransform bool   `json:"has_used_free_transform"`
	TransformationCount  int    `json:"transformation_count"`
	MatchedVia           string `json:"matched_via"`
}
