package consensus

import "github.com/kaspa-genesis/verify/internal/wire"

// DecodedHeader is the result of DecodeHeader: the typed Header plus the
// self-hash field stored alongside it on disk. The self-hash is returned
// only as an auxiliary value — callers that need an authenticated hash
// must recompute it with HeaderHash and compare, never trust this field.
type DecodedHeader struct {
	SelfHash Hash
	Header   Header
}

// DecodeHeader parses the canonical on-disk header record:
//
//	32 bytes   self-hash (auxiliary, not authenticated by this function)
//	u16 LE     version
//	u64 LE     outer parent-level count L
//	  [L]      u64 LE inner count M_i, then M_i * 32 bytes of hashes
//	32 bytes   hash_merkle_root
//	32 bytes   accepted_id_merkle_root
//	32 bytes   utxo_commitment
//	u64 LE     timestamp_ms
//	u32 LE     bits
//	u64 LE     nonce
//	u64 LE     daa_score
//	24 bytes   blue_work
//	u64 LE     blue_score
//	32 bytes   pruning_point
//
// Trailing bytes beyond this layout are tolerated and ignored.
func DecodeHeader(b []byte) (DecodedHeader, error) {
	r := wire.NewReader(b)

	selfHash, err := r.ReadHash()
	if err != nil {
		return DecodedHeader{}, newErr(ErrMalformedHeader, "self-hash: %v", err)
	}

	version, err := r.ReadU16LE()
	if err != nil {
		return DecodedHeader{}, newErr(ErrMalformedHeader, "version: %v", err)
	}

	outerCount, err := r.ReadU64LE()
	if err != nil {
		return DecodedHeader{}, newErr(ErrMalformedHeader, "parent level count: %v", err)
	}
	parents := make([]ParentLevel, 0, outerCount)
	for i := uint64(0); i < outerCount; i++ {
		innerCount, err := r.ReadU64LE()
		if err != nil {
			return DecodedHeader{}, newErr(ErrMalformedHeader, "parent level %d count: %v", i, err)
		}
		level := ParentLevel{Parents: make([]Hash, 0, innerCount)}
		for j := uint64(0); j < innerCount; j++ {
			h, err := r.ReadHash()
			if err != nil {
				return DecodedHeader{}, newErr(ErrMalformedHeader, "parent level %d hash %d: %v", i, j, err)
			}
			level.Parents = append(level.Parents, h)
		}
		parents = append(parents, level)
	}

	hashMerkleRoot, err := r.ReadHash()
	if err != nil {
		return DecodedHeader{}, newErr(ErrMalformedHeader, "hash_merkle_root: %v", err)
	}
	acceptedIDMerkleRoot, err := r.ReadHash()
	if err != nil {
		return DecodedHeader{}, newErr(ErrMalformedHeader, "accepted_id_merkle_root: %v", err)
	}
	utxoCommitment, err := r.ReadHash()
	if err != nil {
		return DecodedHeader{}, newErr(ErrMalformedHeader, "utxo_commitment: %v", err)
	}
	timestampMs, err := r.ReadU64LE()
	if err != nil {
		return DecodedHeader{}, newErr(ErrMalformedHeader, "timestamp_ms: %v", err)
	}
	bits, err := r.ReadU32LE()
	if err != nil {
		return DecodedHeader{}, newErr(ErrMalformedHeader, "bits: %v", err)
	}
	nonce, err := r.ReadU64LE()
	if err != nil {
		return DecodedHeader{}, newErr(ErrMalformedHeader, "nonce: %v", err)
	}
	daaScore, err := r.ReadU64LE()
	if err != nil {
		return DecodedHeader{}, newErr(ErrMalformedHeader, "daa_score: %v", err)
	}
	blueWork, err := r.ReadBlueWork()
	if err != nil {
		return DecodedHeader{}, newErr(ErrMalformedHeader, "blue_work: %v", err)
	}
	blueScore, err := r.ReadU64LE()
	if err != nil {
		return DecodedHeader{}, newErr(ErrMalformedHeader, "blue_score: %v", err)
	}
	pruningPoint, err := r.ReadHash()
	if err != nil {
		return DecodedHeader{}, newErr(ErrMalformedHeader, "pruning_point: %v", err)
	}

	return DecodedHeader{
		SelfHash: selfHash,
		Header: Header{
			HashMerkleRoot:       hashMerkleRoot,
			AcceptedIDMerkleRoot: acceptedIDMerkleRoot,
			UTXOCommitment:       utxoCommitment,
			PruningPoint:         pruningPoint,
			TimestampMs:          timestampMs,
			Bits:                 bits,
			Nonce:                nonce,
			DAAScore:             daaScore,
			BlueScore:            blueScore,
			BlueWork:             blueWork,
			Version:              version,
			Parents:              parents,
		},
	}, nil
}

// EncodeHeader is the inverse of DecodeHeader, used by tests to build
// synthetic header records. selfHash is written verbatim as the leading
// 32-byte field; production records tie it to the storage key, but this
// encoder has no opinion on that.
func EncodeHeader(selfHash Hash, h Header) []byte {
	out := make([]byte, 0, 128)
	out = append(out, selfHash[:]...)
	out = appendU16LE(out, h.Version)
	out = appendU64LE(out, uint64(len(h.Parents)))
	for _, level := range h.Parents {
		out = appendU64LE(out, uint64(len(level.Parents)))
		for _, p := range level.Parents {
			out = append(out, p[:]...)
		}
	}
	out = append(out, h.HashMerkleRoot[:]...)
	out = append(out, h.AcceptedIDMerkleRoot[:]...)
	out = append(out, h.UTXOCommitment[:]...)
	out = appendU64LE(out, h.TimestampMs)
	out = appendU32LE(out, h.Bits)
	out = appendU64LE(out, h.Nonce)
	out = appendU64LE(out, h.DAAScore)
	out = append(out, h.BlueWork[:]...)
	out = appendU64LE(out, h.BlueScore)
	out = append(out, h.PruningPoint[:]...)
	return out
}
