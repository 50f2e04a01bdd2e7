package kvsource

import (
	"testing"

	"github.com/kaspa-genesis/verify/internal/consensus"
)

func TestGetHeader_RoundTrip(t *testing.T) {
	src := newMemSource()

	var selfHash consensus.Hash
	selfHash[0] = 0xaa

	h := consensus.Header{
		TimestampMs: 123,
		Bits:        0xdeadbeef,
		Nonce:       7,
		DAAScore:    1,
		BlueScore:   2,
		Version:     1,
	}
	src.put(HeaderKey(selfHash), consensus.EncodeHeader(selfHash, h))

	got, ok, err := GetHeader(src, selfHash)
	if err != nil {
		t.Fatalf("GetHeader: %v", err)
	}
	if !ok {
		t.Fatalf("expected header present")
	}
	if got.TimestampMs != h.TimestampMs || got.Bits != h.Bits || got.Nonce != h.Nonce {
		t.Fatalf("got=%+v want=%+v", got, h)
	}
}

func TestGetHeader_Missing(t *testing.T) {
	src := newMemSource()
	var hash consensus.Hash
	hash[0] = 1

	_, ok, err := GetHeader(src, hash)
	if err != nil {
		t.Fatalf("GetHeader: %v", err)
	}
	if ok {
		t.Fatalf("expected missing header")
	}
}

func TestGetHeader_MalformedRecord(t *testing.T) {
	src := newMemSource()
	var hash consensus.Hash
	hash[0] = 1
	src.put(HeaderKey(hash), []byte{0x01, 0x02})

	if _, _, err := GetHeader(src, hash); err == nil {
		t.Fatalf("expected decode error for truncated record")
	}
}
