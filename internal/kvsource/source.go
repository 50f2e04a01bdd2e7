// Package kvsource implements the two concrete key-value realizations this
// verifier reads from: a live on-disk store and an in-memory JSON sidecar.
// Both implement the single capability the rest of the verifier depends
// on — Source — so the driver and walker never know which one they hold.
package kvsource

import "github.com/kaspa-genesis/verify/internal/consensus"

// Source is a read-only composite-key lookup. Get returns (nil, nil) on a
// miss, never an error — a missing key is a normal outcome the caller
// (tips/pruning accessors, header lookups) decides how to treat.
type Source interface {
	Get(key []byte) ([]byte, error)
	Close() error
}

// Prefix bytes for the records this verifier reads, matching the producer
// node's database registry. Only HEADERS, HEADERS_SELECTED_TIP, TIPS and
// PRUNING_POINT are ever looked up by this core; the rest of the registry
// is listed in prefixes.go purely to document the schema this is a narrow
// read-only view into.
const (
	PrefixHeaders            byte = 8
	PrefixHeadersSelectedTip byte = 7
	PrefixTips               byte = 24
	PrefixPruningPoint       byte = 13
)

// HeaderKey builds the composite key for a header record: prefix byte
// followed by the block's 32-byte hash.
func HeaderKey(hash consensus.Hash) []byte {
	key := make([]byte, 0, 1+32)
	key = append(key, PrefixHeaders)
	key = append(key, hash[:]...)
	return key
}

// SelectedTipKey builds the singleton key for the headers-selected-tip
// record.
func SelectedTipKey() []byte {
	return []byte{PrefixHeadersSelectedTip}
}

// TipsKey builds the singleton key for the tips-vector record.
func TipsKey() []byte {
	return []byte{PrefixTips}
}

// PruningPointKey builds the singleton key for the pruning-point record.
func PruningPointKey() []byte {
	return []byte{PrefixPruningPoint}
}
