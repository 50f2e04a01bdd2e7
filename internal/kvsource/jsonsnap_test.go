package kvsource

import (
	"strings"
	"testing"

	"github.com/kaspa-genesis/verify/internal/consensus"
)

func TestJSONSnapshot_ParseAndGet(t *testing.T) {
	doc := `{
		"headers_chain": [
			{
				"hash": "` + strings.Repeat("11", 32) + `",
				"version": 1,
				"parents": [["` + strings.Repeat("22", 32) + `"]],
				"hashMerkleRoot": "` + strings.Repeat("33", 32) + `",
				"acceptedIDMerkleRoot": "` + strings.Repeat("44", 32) + `",
				"utxoCommitment": "` + strings.Repeat("00", 32) + `",
				"pruningPoint": "` + strings.Repeat("55", 32) + `",
				"timeInMilliseconds": 42,
				"bits": 486604799,
				"nonce": 7,
				"daaScore": 0,
				"blueScore": 0,
				"blueWork": "` + strings.Repeat("66", 24) + `"
			}
		]
	}`

	snap, err := parseJSONSnapshot([]byte(doc))
	if err != nil {
		t.Fatalf("parseJSONSnapshot: %v", err)
	}

	var hash consensus.Hash
	for i := range hash {
		hash[i] = 0x11
	}

	header, ok, err := GetHeader(snap, hash)
	if err != nil {
		t.Fatalf("GetHeader: %v", err)
	}
	if !ok {
		t.Fatalf("expected header present")
	}
	if header.TimestampMs != 42 || header.Bits != 486604799 || header.Nonce != 7 {
		t.Fatalf("unexpected header: %+v", header)
	}
	if len(header.Parents) != 1 || len(header.Parents[0].Parents) != 1 {
		t.Fatalf("unexpected parents: %+v", header.Parents)
	}
}

func TestJSONSnapshot_MissOnAuxiliaryKeys(t *testing.T) {
	snap, err := parseJSONSnapshot([]byte(`{"headers_chain": []}`))
	if err != nil {
		t.Fatalf("parseJSONSnapshot: %v", err)
	}
	v, err := snap.Get(TipsKey())
	if err != nil || v != nil {
		t.Fatalf("expected miss for tips key, got v=%v err=%v", v, err)
	}
	v, err = snap.Get(SelectedTipKey())
	if err != nil || v != nil {
		t.Fatalf("expected miss for selected-tip key, got v=%v err=%v", v, err)
	}
}

func TestJSONSnapshot_BadHexFails(t *testing.T) {
	_, err := parseJSONSnapshot([]byte(`{"headers_chain":[{"hash":"zz"}]}`))
	if err == nil {
		t.Fatalf("expected error for invalid hex hash")
	}
}
