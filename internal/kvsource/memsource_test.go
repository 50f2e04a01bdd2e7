package kvsource

import "bytes"

// memSource is a trivial in-memory Source used by this package's tests.
type memSource struct {
	data map[string][]byte
}

func newMemSource() *memSource {
	return &memSource{data: make(map[string][]byte)}
}

func (m *memSource) put(key, value []byte) {
	m.data[string(key)] = value
}

func (m *memSource) Get(key []byte) ([]byte, error) {
	v, ok := m.data[string(key)]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(v), nil
}

func (m *memSource) Close() error { return nil }
