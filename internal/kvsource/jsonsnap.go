package kvsource

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kaspa-genesis/verify/internal/consensus"
)

// jsonHeader mirrors one entry of the sidecar's "headers_chain" array.
// Hash-valued fields are lowercase hex, exactly 64 characters (32 bytes);
// blueWork is 48 hex characters (24 bytes).
type jsonHeader struct {
	Hash                 string     `json:"hash"`
	Version              uint16     `json:"version"`
	Parents              [][]string `json:"parents"`
	HashMerkleRoot       string     `json:"hashMerkleRoot"`
	AcceptedIDMerkleRoot string     `json:"acceptedIDMerkleRoot"`
	UTXOCommitment       string     `json:"utxoCommitment"`
	PruningPoint         string     `json:"pruningPoint"`
	TimeInMilliseconds   uint64     `json:"timeInMilliseconds"`
	Bits                 uint32     `json:"bits"`
	Nonce                uint64     `json:"nonce"`
	DAAScore             uint64     `json:"daaScore"`
	BlueScore            uint64     `json:"blueScore"`
	BlueWork             string     `json:"blueWork"`
}

type jsonDocument struct {
	HeadersChain []jsonHeader `json:"headers_chain"`
}

// JSONSnapshot is the in-memory realization of Source, loaded once from a
// pre-extracted JSON sidecar. It answers header lookups only — tips and
// pruning-point singleton records are not part of the sidecar schema, and
// Get returns a miss for those keys, matching spec.md §4.4 ("missing
// auxiliary records are not required because this variant is used only
// for header lookups during the pre-checkpoint walk").
type JSONSnapshot struct {
	headers map[consensus.Hash][]byte
}

// LoadJSONSnapshot reads and parses the sidecar document at path.
func LoadJSONSnapshot(path string) (*JSONSnapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kvsource: read snapshot %s: %w", path, err)
	}
	return parseJSONSnapshot(raw)
}

func parseJSONSnapshot(raw []byte) (*JSONSnapshot, error) {
	var doc jsonDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("kvsource: parse snapshot: %w", err)
	}

	headers := make(map[consensus.Hash][]byte, len(doc.HeadersChain))
	for i, jh := range doc.HeadersChain {
		hash, err := decodeHash(jh.Hash)
		if err != nil {
			return nil, fmt.Errorf("kvsource: snapshot entry %d hash: %w", i, err)
		}
		header, err := jh.toHeader()
		if err != nil {
			return nil, fmt.Errorf("kvsource: snapshot entry %d: %w", i, err)
		}
		headers[hash] = consensus.EncodeHeader(hash, header)
	}
	return &JSONSnapshot{headers: headers}, nil
}

func (jh jsonHeader) toHeader() (consensus.Header, error) {
	hashMerkleRoot, err := decodeHash(jh.HashMerkleRoot)
	if err != nil {
		return consensus.Header{}, fmt.Errorf("hashMerkleRoot: %w", err)
	}
	acceptedIDMerkleRoot, err := decodeHash(jh.AcceptedIDMerkleRoot)
	if err != nil {
		return consensus.Header{}, fmt.Errorf("acceptedIDMerkleRoot: %w", err)
	}
	utxoCommitment, err := decodeHash(jh.UTXOCommitment)
	if err != nil {
		return consensus.Header{}, fmt.Errorf("utxoCommitment: %w", err)
	}
	pruningPoint, err := decodeHash(jh.PruningPoint)
	if err != nil {
		return consensus.Header{}, fmt.Errorf("pruningPoint: %w", err)
	}
	blueWork, err := decodeBlueWork(jh.BlueWork)
	if err != nil {
		return consensus.Header{}, fmt.Errorf("blueWork: %w", err)
	}

	parents := make([]consensus.ParentLevel, 0, len(jh.Parents))
	for li, level := range jh.Parents {
		pl := consensus.ParentLevel{Parents: make([]consensus.Hash, 0, len(level))}
		for hi, hexHash := range level {
			h, err := decodeHash(hexHash)
			if err != nil {
				return consensus.Header{}, fmt.Errorf("parents[%d][%d]: %w", li, hi, err)
			}
			pl.Parents = append(pl.Parents, h)
		}
		parents = append(parents, pl)
	}

	return consensus.Header{
		HashMerkleRoot:       hashMerkleRoot,
		AcceptedIDMerkleRoot: acceptedIDMerkleRoot,
		UTXOCommitment:       utxoCommitment,
		PruningPoint:         pruningPoint,
		TimestampMs:          jh.TimeInMilliseconds,
		Bits:                 jh.Bits,
		Nonce:                jh.Nonce,
		DAAScore:             jh.DAAScore,
		BlueScore:            jh.BlueScore,
		BlueWork:             blueWork,
		Version:              jh.Version,
		Parents:              parents,
	}, nil
}

func decodeHash(s string) (consensus.Hash, error) {
	var h consensus.Hash
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	if len(b) != 32 {
		return h, fmt.Errorf("want 32 bytes, got %d", len(b))
	}
	copy(h[:], b)
	return h, nil
}

func decodeBlueWork(s string) (consensus.BlueWork, error) {
	var bw consensus.BlueWork
	b, err := hex.DecodeString(s)
	if err != nil {
		return bw, err
	}
	if len(b) != 24 {
		return bw, fmt.Errorf("want 24 bytes, got %d", len(b))
	}
	copy(bw[:], b)
	return bw, nil
}

// Get implements Source. Only HEADERS-prefixed keys ever resolve; any
// other key (tips, selected tip, pruning point) is a guaranteed miss.
func (s *JSONSnapshot) Get(key []byte) ([]byte, error) {
	if len(key) != 1+32 || key[0] != PrefixHeaders {
		return nil, nil
	}
	var hash consensus.Hash
	copy(hash[:], key[1:])
	raw, ok := s.headers[hash]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(raw), nil
}

// Close implements Source. There is no underlying handle to release; this
// exists only so JSONSnapshot satisfies Source alongside BoltSource.
func (s *JSONSnapshot) Close() error { return nil }
