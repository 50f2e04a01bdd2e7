package kvsource

import "github.com/kaspa-genesis/verify/internal/consensus"

// GetHeader fetches and decodes the header stored under hash. ok is false
// if the record is absent. This does not verify hash == HeaderHash(header)
// — that check belongs to the callers (the chain walker and the driver's
// genesis-header phase), which treat a mismatch as the event they are
// looking for rather than a hard decode failure.
func GetHeader(s Source, hash consensus.Hash) (consensus.Header, bool, error) {
	raw, err := s.Get(HeaderKey(hash))
	if err != nil {
		return consensus.Header{}, false, err
	}
	if raw == nil {
		return consensus.Header{}, false, nil
	}
	decoded, err := consensus.DecodeHeader(raw)
	if err != nil {
		return consensus.Header{}, false, err
	}
	return decoded.Header, true, nil
}
