package consensus

// Hash is a 32-byte block identifier, merkle root, UTXO commitment, or
// pruning-point reference. Equality is plain byte equality.
type Hash [32]byte

// BlueWork is the 192-bit accumulated-work scalar carried in a header. It
// is opaque to this package except as a hash input.
type BlueWork [24]byte

// ParentLevel is the ordered set of ancestor hashes at one DAG level.
type ParentLevel struct {
	Parents []Hash
}

// Header is a block header as read from the consensus database. Field
// order here follows the struct definition in this file, not the on-disk
// layout (DecodeHeader) and not the hash preimage order (HeaderHash) —
// those two orders differ from each other by design, see HeaderHash.
type Header struct {
	HashMerkleRoot       Hash
	AcceptedIDMerkleRoot Hash
	UTXOCommitment       Hash
	PruningPoint         Hash
	TimestampMs          uint64
	Bits                 uint32
	Nonce                uint64
	DAAScore             uint64
	BlueScore            uint64
	BlueWork             BlueWork
	Version              uint16
	Parents              []ParentLevel
}

// TransactionInput is a coinbase-only view of a transaction input; general
// transaction parsing is out of scope (see Transaction).
type TransactionInput struct {
	PrevTxID        Hash
	PrevIndex       uint32
	SignatureScript []byte
	Sequence        uint64
}

// ScriptPublicKey pairs a script version with its script bytes.
type ScriptPublicKey struct {
	Version uint16
	Script  []byte
}

// TransactionOutput is a coinbase-only view of a transaction output.
type TransactionOutput struct {
	Value           uint64
	ScriptPublicKey ScriptPublicKey
}

// Transaction carries only the fields needed to hash the genesis coinbase
// transaction; this core never parses an arbitrary transaction (spec
// Non-goal).
type Transaction struct {
	Version      uint16
	Inputs       []TransactionInput
	Outputs      []TransactionOutput
	LockTime     uint64
	SubnetworkID [20]byte
	Gas          uint64
	Payload      []byte
}

// IsZero reports whether h is the all-zero hash, the value the Tips/
// PruningPoint accessors return when the underlying record is absent.
func (h Hash) IsZero() bool {
	return h == Hash{}
}
