package consensus

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// distinctHeader builds a Header where every field has a distinct,
// recognizable non-zero value, so a field-order bug in DecodeHeader or
// EncodeHeader shows up as a mismatch against the hand-assembled bytes
// below rather than being masked by coincidentally equal fields.
func distinctHeader() Header {
	h := Header{
		Version:              0x0102,
		HashMerkleRoot:       fill(0xA1),
		AcceptedIDMerkleRoot: fill(0xA2),
		UTXOCommitment:       fill(0xA3),
		TimestampMs:          0x0102030405060708,
		Bits:                 0x11121314,
		Nonce:                0x2122232425262728,
		DAAScore:             0x3132333435363738,
		BlueScore:            0x5152535455565758,
		PruningPoint:         fill(0xA4),
	}
	for i := range h.BlueWork {
		h.BlueWork[i] = byte(0x61 + i)
	}
	h.Parents = []ParentLevel{
		{Parents: []Hash{fill(0xB1), fill(0xB2)}},
		{Parents: []Hash{fill(0xB3)}},
	}
	return h
}

func fill(b byte) Hash {
	var h Hash
	for i := range h {
		h[i] = b
	}
	return h
}

// handAssembledOnDiskBytes independently reproduces the on-disk layout
// documented in DecodeHeader's doc comment (spec.md §4.2), without calling
// EncodeHeader, so it serves as ground truth rather than a round trip
// against the function under test.
func handAssembledOnDiskBytes(selfHash Hash, h Header) []byte {
	var buf bytes.Buffer
	buf.Write(selfHash[:])

	var u16 [2]byte
	binary.LittleEndian.PutUint16(u16[:], h.Version)
	buf.Write(u16[:])

	var u64 [8]byte
	binary.LittleEndian.PutUint64(u64[:], uint64(len(h.Parents)))
	buf.Write(u64[:])
	for _, level := range h.Parents {
		binary.LittleEndian.PutUint64(u64[:], uint64(len(level.Parents)))
		buf.Write(u64[:])
		for _, p := range level.Parents {
			buf.Write(p[:])
		}
	}

	buf.Write(h.HashMerkleRoot[:])
	buf.Write(h.AcceptedIDMerkleRoot[:])
	buf.Write(h.UTXOCommitment[:])

	binary.LittleEndian.PutUint64(u64[:], h.TimestampMs)
	buf.Write(u64[:])

	var u32 [4]byte
	binary.LittleEndian.PutUint32(u32[:], h.Bits)
	buf.Write(u32[:])

	binary.LittleEndian.PutUint64(u64[:], h.Nonce)
	buf.Write(u64[:])

	binary.LittleEndian.PutUint64(u64[:], h.DAAScore)
	buf.Write(u64[:])

	buf.Write(h.BlueWork[:])

	binary.LittleEndian.PutUint64(u64[:], h.BlueScore)
	buf.Write(u64[:])

	buf.Write(h.PruningPoint[:])

	return buf.Bytes()
}

func TestEncodeHeader_MatchesHandAssembledLayout(t *testing.T) {
	selfHash := fill(0xFF)
	h := distinctHeader()

	got := EncodeHeader(selfHash, h)
	want := handAssembledOnDiskBytes(selfHash, h)

	if !bytes.Equal(got, want) {
		t.Fatalf("EncodeHeader layout mismatch:\n got=%x\nwant=%x", got, want)
	}
}

func TestDecodeHeader_MatchesHandAssembledLayout(t *testing.T) {
	selfHash := fill(0xFF)
	h := distinctHeader()
	record := handAssembledOnDiskBytes(selfHash, h)

	decoded, err := DecodeHeader(record)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}

	if decoded.SelfHash != selfHash {
		t.Fatalf("SelfHash=%x want %x", decoded.SelfHash, selfHash)
	}
	got := decoded.Header
	if got.Version != h.Version {
		t.Fatalf("Version=%x want %x", got.Version, h.Version)
	}
	if len(got.Parents) != len(h.Parents) {
		t.Fatalf("Parents count=%d want %d", len(got.Parents), len(h.Parents))
	}
	for i, level := range got.Parents {
		if len(level.Parents) != len(h.Parents[i].Parents) {
			t.Fatalf("Parents[%d] count=%d want %d", i, len(level.Parents), len(h.Parents[i].Parents))
		}
		for j, p := range level.Parents {
			if p != h.Parents[i].Parents[j] {
				t.Fatalf("Parents[%d][%d]=%x want %x", i, j, p, h.Parents[i].Parents[j])
			}
		}
	}
	if got.HashMerkleRoot != h.HashMerkleRoot {
		t.Fatalf("HashMerkleRoot=%x want %x", got.HashMerkleRoot, h.HashMerkleRoot)
	}
	if got.AcceptedIDMerkleRoot != h.AcceptedIDMerkleRoot {
		t.Fatalf("AcceptedIDMerkleRoot=%x want %x", got.AcceptedIDMerkleRoot, h.AcceptedIDMerkleRoot)
	}
	if got.UTXOCommitment != h.UTXOCommitment {
		t.Fatalf("UTXOCommitment=%x want %x", got.UTXOCommitment, h.UTXOCommitment)
	}
	if got.TimestampMs != h.TimestampMs {
		t.Fatalf("TimestampMs=%x want %x", got.TimestampMs, h.TimestampMs)
	}
	if got.Bits != h.Bits {
		t.Fatalf("Bits=%x want %x", got.Bits, h.Bits)
	}
	if got.Nonce != h.Nonce {
		t.Fatalf("Nonce=%x want %x", got.Nonce, h.Nonce)
	}
	if got.DAAScore != h.DAAScore {
		t.Fatalf("DAAScore=%x want %x", got.DAAScore, h.DAAScore)
	}
	if got.BlueWork != h.BlueWork {
		t.Fatalf("BlueWork=%x want %x", got.BlueWork, h.BlueWork)
	}
	if got.BlueScore != h.BlueScore {
		t.Fatalf("BlueScore=%x want %x", got.BlueScore, h.BlueScore)
	}
	if got.PruningPoint != h.PruningPoint {
		t.Fatalf("PruningPoint=%x want %x", got.PruningPoint, h.PruningPoint)
	}
}

// TestDecodeHeader_PruningPointIsLastOnDiskField pins the on-disk position
// explicitly: corrupting only the final 32 bytes of a well-formed record
// must change PruningPoint and leave BlueScore, the field decoded just
// before it, intact (see hasher_test.go for the preimage order, which
// differs in where blue_score and blue_work sit).
func TestDecodeHeader_PruningPointIsLastOnDiskField(t *testing.T) {
	selfHash := fill(0xFF)
	h := distinctHeader()
	record := handAssembledOnDiskBytes(selfHash, h)

	corrupted := append([]byte(nil), record...)
	tail := corrupted[len(corrupted)-32:]
	for i := range tail {
		tail[i] = 0xCD
	}

	decoded, err := DecodeHeader(corrupted)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if decoded.Header.PruningPoint != fill(0xCD) {
		t.Fatalf("PruningPoint=%x want all-0xCD", decoded.Header.PruningPoint)
	}
	if decoded.Header.BlueScore != h.BlueScore {
		t.Fatalf("corrupting the tail 32 bytes changed BlueScore: got %x want %x", decoded.Header.BlueScore, h.BlueScore)
	}
}
