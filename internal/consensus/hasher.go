package consensus

import "golang.org/x/crypto/blake2b"

// Domain-separation keys for the two keyed hashes this package computes.
// Both are fed to blake2b as the MAC key, producing a 32-byte digest; they
// are not secret, they exist only to separate the header and transaction
// hash domains.
var (
	keyBlockHash       = []byte("BlockHash")
	keyTransactionHash = []byte("TransactionHash")
)

// HeaderHash computes the domain-separated header digest. Field order in
// the preimage is NOT the on-disk layout decoded by DecodeHeader: here
// blue_score is hashed before blue_work, preceded by blue_work's length
// as a u64, while on disk blue_work (with no length) comes before
// blue_score. This divergence is an intentional consensus rule and must
// not be "normalized" away.
func HeaderHash(h Header) (Hash, error) {
	hasher, err := blake2b.New(32, keyBlockHash)
	if err != nil {
		return Hash{}, err
	}

	buf := make([]byte, 0, 2+8)
	buf = appendU16LE(buf, h.Version)
	buf = appendU64LE(buf, uint64(len(h.Parents)))
	hasher.Write(buf)

	for _, level := range h.Parents {
		var lenBuf [8]byte
		lenBuf64 := appendU64LE(lenBuf[:0], uint64(len(level.Parents)))
		hasher.Write(lenBuf64)
		for _, p := range level.Parents {
			hasher.Write(p[:])
		}
	}

	hasher.Write(h.HashMerkleRoot[:])
	hasher.Write(h.AcceptedIDMerkleRoot[:])
	hasher.Write(h.UTXOCommitment[:])

	tail := make([]byte, 0, 8+4+8+8+8+8)
	tail = appendU64LE(tail, h.TimestampMs)
	tail = appendU32LE(tail, h.Bits)
	tail = appendU64LE(tail, h.Nonce)
	tail = appendU64LE(tail, h.DAAScore)
	tail = appendU64LE(tail, h.BlueScore)
	tail = appendU64LE(tail, uint64(len(h.BlueWork)))
	hasher.Write(tail)

	hasher.Write(h.BlueWork[:])
	hasher.Write(h.PruningPoint[:])

	var out Hash
	copy(out[:], hasher.Sum(nil))
	return out, nil
}

// TransactionHash computes the domain-separated transaction digest used to
// verify the genesis coinbase transaction against its header's merkle
// root.
func TransactionHash(t Transaction) (Hash, error) {
	hasher, err := blake2b.New(32, keyTransactionHash)
	if err != nil {
		return Hash{}, err
	}

	head := make([]byte, 0, 2+8)
	head = appendU16LE(head, t.Version)
	head = appendU64LE(head, uint64(len(t.Inputs)))
	hasher.Write(head)

	for _, in := range t.Inputs {
		hasher.Write(in.PrevTxID[:])
		inBuf := make([]byte, 0, 4+8)
		inBuf = appendU32LE(inBuf, in.PrevIndex)
		inBuf = appendU64LE(inBuf, uint64(len(in.SignatureScript)))
		hasher.Write(inBuf)
		hasher.Write(in.SignatureScript)
		var seqBuf [8]byte
		hasher.Write(appendU64LE(seqBuf[:0], in.Sequence))
	}

	var outCountBuf [8]byte
	hasher.Write(appendU64LE(outCountBuf[:0], uint64(len(t.Outputs))))

	for _, out := range t.Outputs {
		outBuf := make([]byte, 0, 8+2+8)
		outBuf = appendU64LE(outBuf, out.Value)
		outBuf = appendU16LE(outBuf, out.ScriptPublicKey.Version)
		outBuf = appendU64LE(outBuf, uint64(len(out.ScriptPublicKey.Script)))
		hasher.Write(outBuf)
		hasher.Write(out.ScriptPublicKey.Script)
	}

	tailA := make([]byte, 0, 8)
	hasher.Write(appendU64LE(tailA, t.LockTime))
	hasher.Write(t.SubnetworkID[:])
	tailB := make([]byte, 0, 8+8)
	tailB = appendU64LE(tailB, t.Gas)
	tailB = appendU64LE(tailB, uint64(len(t.Payload)))
	hasher.Write(tailB)
	hasher.Write(t.Payload)

	var out Hash
	copy(out[:], hasher.Sum(nil))
	return out, nil
}
