package kvsource

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// bucketName is the single bucket the live store's flat
// prefix-byte||hash keyspace is kept under. The producer node's on-disk
// schema (see prefixes.go) has no notion of buckets; this bucket exists
// only because bbolt requires one, and keys are stored exactly as the
// composite prefix||hash byte string spec.md §4.4 describes.
var bucketName = []byte("kv")

// BoltSource is the live realization of Source, reading a bbolt-backed
// consensus database, matching the teacher's own bbolt usage
// (node/store/db.go). It opens the database read-only under a shared file
// lock; while another process holds the file open for writing, the open
// waits up to one second for that lock and then fails. Each Get runs in
// its own read transaction, so the verifier does not depend on snapshot
// isolation across calls.
type BoltSource struct {
	db *bolt.DB
}

// OpenBolt opens the bbolt database at path read-only.
func OpenBolt(path string) (*BoltSource, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{
		ReadOnly: true,
		Timeout:  1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("kvsource: open bbolt %s: %w", path, err)
	}
	return &BoltSource{db: db}, nil
}

// Get implements Source.
func (b *BoltSource) Get(key []byte) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucketName)
		if bkt == nil {
			return nil
		}
		v := bkt.Get(key)
		if v == nil {
			return nil
		}
		out = make([]byte, len(v))
		copy(out, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("kvsource: get %x: %w", key, err)
	}
	return out, nil
}

// Close implements Source. Idempotent: bbolt's Close tolerates repeat
// calls.
func (b *BoltSource) Close() error {
	return b.db.Close()
}
