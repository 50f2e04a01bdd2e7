package kvsource

import (
	"encoding/binary"
	"fmt"

	"github.com/kaspa-genesis/verify/internal/consensus"
)

// Tips decodes the tips vector (u64 LE count, then count*32-byte hashes)
// and the headers-selected-tip singleton record. If either record is
// missing it returns an empty/zero value for that half rather than an
// error — the driver treats that as recoverable provided a usable chain
// tip remains available from the other half.
func Tips(s Source) ([]consensus.Hash, consensus.Hash, error) {
	tips, err := decodeTipsVector(s)
	if err != nil {
		return nil, consensus.Hash{}, err
	}

	selectedTip, err := decodeSelectedTip(s)
	if err != nil {
		return nil, consensus.Hash{}, err
	}

	return tips, selectedTip, nil
}

func decodeTipsVector(s Source) ([]consensus.Hash, error) {
	raw, err := s.Get(TipsKey())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	if len(raw) < 8 {
		return nil, fmt.Errorf("kvsource: tips record truncated: %d bytes", len(raw))
	}
	count := binary.LittleEndian.Uint64(raw[:8])
	want := 8 + int(count)*32
	if len(raw) < want {
		return nil, fmt.Errorf("kvsource: tips record truncated: want %d bytes, have %d", want, len(raw))
	}
	tips := make([]consensus.Hash, 0, count)
	pos := 8
	for i := uint64(0); i < count; i++ {
		var h consensus.Hash
		copy(h[:], raw[pos:pos+32])
		tips = append(tips, h)
		pos += 32
	}
	return tips, nil
}

func decodeSelectedTip(s Source) (consensus.Hash, error) {
	raw, err := s.Get(SelectedTipKey())
	if err != nil {
		return consensus.Hash{}, err
	}
	if raw == nil {
		return consensus.Hash{}, nil
	}
	if len(raw) < 32 {
		return consensus.Hash{}, fmt.Errorf("kvsource: selected-tip record truncated: %d bytes", len(raw))
	}
	var h consensus.Hash
	copy(h[:], raw[:32])
	return h, nil
}

// PruningPoint decodes the global pruning-point singleton record, zero-hash
// if absent.
func PruningPoint(s Source) (consensus.Hash, error) {
	raw, err := s.Get(PruningPointKey())
	if err != nil {
		return consensus.Hash{}, err
	}
	if raw == nil {
		return consensus.Hash{}, nil
	}
	if len(raw) < 32 {
		return consensus.Hash{}, fmt.Errorf("kvsource: pruning-point record truncated: %d bytes", len(raw))
	}
	var h consensus.Hash
	copy(h[:], raw[:32])
	return h, nil
}
