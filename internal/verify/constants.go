package verify

import (
	"encoding/hex"
	"fmt"

	"github.com/kaspa-genesis/verify/internal/consensus"
)

// Constants bundles the literal values the verification driver checks
// against. DefaultConstants holds the real mainnet values; tests construct
// their own Constants around a synthetic chain so that the driver's logic
// is exercised without depending on a real node's data.
type Constants struct {
	GenesisHash            consensus.Hash
	GenesisSubnetworkID    [20]byte
	GenesisCoinbasePayload []byte
	CheckpointHash         consensus.Hash
	OriginalGenesisHash    consensus.Hash
	EmptyMuhash            consensus.Hash
}

func decodeHexHash(s string) (consensus.Hash, error) {
	var h consensus.Hash
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	if len(b) != 32 {
		return h, fmt.Errorf("verify: want 32 bytes, got %d", len(b))
	}
	copy(h[:], b)
	return h, nil
}

func mustHash(hexStr string) consensus.Hash {
	h, err := decodeHexHash(hexStr)
	if err != nil {
		panic(err)
	}
	return h
}

// DefaultConstants returns the literal mainnet values baked into the
// original verifier: genesis hash, genesis coinbase payload, subnetwork
// ID, checkpoint hash, original (pre-checkpoint) genesis hash, and the
// canonical empty-MuHash digest.
func DefaultConstants() Constants {
	var subnetworkID [20]byte
	subnetworkID[0] = 0x01

	return Constants{
		GenesisHash:            mustHash("58c2d4199e21f910d1571d114969cecef48f09f934d42ccb6a281a15868f2999"),
		GenesisSubnetworkID:    subnetworkID,
		GenesisCoinbasePayload: genesisCoinbasePayload(),
		CheckpointHash:         mustHash("0fca37ca667c2d550a6c4416dad9717e50927128c424fa4edbebc436ab13aeef"),
		OriginalGenesisHash:    mustHash("caeb97960a160c211a6b2196bd78399fd4c4cc5b509f55c12c8a7d815f7536ea"),
		EmptyMuhash:            mustHash("544eb3142c000f0ad2c76ac41f4222abbababed830eeafee4b6dc56b52d5cac0"),
	}
}

// genesisCoinbasePayload builds the 204-byte genesis coinbase payload
// literal: zero blue score, subsidy 0x05f5e100 as LE u64, script version
// 0x0000, a varint 0x01, OP-FALSE 0x00, the 120-byte Hebrew message, a
// 32-byte Bitcoin block-hash anchor, and a 32-byte checkpoint anchor.
func genesisCoinbasePayload() []byte {
	payload := make([]byte, 0, 204)

	// Blue score (8 bytes, zero).
	payload = append(payload, make([]byte, 8)...)

	// Subsidy 0x05f5e100 as little-endian u64.
	payload = append(payload, 0x00, 0xe1, 0xf5, 0x05, 0x00, 0x00, 0x00, 0x00)

	// Script version (2 bytes), varint 0x01, OP-FALSE 0x00.
	payload = append(payload, 0x00, 0x00, 0x01, 0x00)

	// Hebrew message, 120 bytes.
	hebrew := []byte{
		0xd7, 0x95, 0xd7, 0x9e, 0xd7, 0x94, 0x20, 0xd7,
		0x93, 0xd7, 0x99, 0x20, 0xd7, 0xa2, 0xd7, 0x9c,
		0xd7, 0x99, 0xd7, 0x9a, 0x20, 0xd7, 0x95, 0xd7,
		0xa2, 0xd7, 0x9c, 0x20, 0xd7, 0x90, 0xd7, 0x97,
		0xd7, 0x99, 0xd7, 0x9a, 0x20, 0xd7, 0x99, 0xd7,
		0x99, 0xd7, 0x98, 0xd7, 0x91, 0x20, 0xd7, 0x91,
		0xd7, 0xa9, 0xd7, 0x90, 0xd7, 0xa8, 0x20, 0xd7,
		0x9b, 0xd7, 0xa1, 0xd7, 0xa4, 0xd7, 0x90, 0x20,
		0xd7, 0x95, 0xd7, 0x93, 0xd7, 0x94, 0xd7, 0x91,
		0xd7, 0x94, 0x20, 0xd7, 0x9c, 0xd7, 0x9e, 0xd7,
		0xa2, 0xd7, 0x91, 0xd7, 0x93, 0x20, 0xd7, 0x9b,
		0xd7, 0xa8, 0xd7, 0xa2, 0xd7, 0x95, 0xd7, 0xaa,
		0x20, 0xd7, 0x90, 0xd7, 0x9c, 0xd7, 0x94, 0xd7,
		0x9b, 0xd7, 0x9d, 0x20, 0xd7, 0xaa, 0xd7, 0xa2,
		0xd7, 0x91, 0xd7, 0x93, 0xd7, 0x95, 0xd7, 0x9f,
	}
	payload = append(payload, hebrew...)

	// Bitcoin block-hash anchor, 32 bytes.
	payload = append(payload, []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x0b, 0x1f, 0x8e, 0x1c, 0x17, 0xb0, 0x13,
		0x3d, 0x43, 0x91, 0x74, 0xe5, 0x2e, 0xfb, 0xb0,
		0xc4, 0x1c, 0x35, 0x83, 0xa8, 0xaa, 0x66, 0xb0,
	}...)

	// Checkpoint block-hash anchor, 32 bytes.
	payload = append(payload, []byte{
		0x0f, 0xca, 0x37, 0xca, 0x66, 0x7c, 0x2d, 0x55,
		0x0a, 0x6c, 0x44, 0x16, 0xda, 0xd9, 0x71, 0x7e,
		0x50, 0x92, 0x71, 0x28, 0xc4, 0x24, 0xfa, 0x4e,
		0xdb, 0xeb, 0xc4, 0x36, 0xab, 0x13, 0xae, 0xef,
	}...)

	return payload
}
