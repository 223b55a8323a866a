// Package storage provides blob backends for the persistent state store.
// The entire serialized state lives under one fixed key; backends only need
// to read, replace, and delete that single blob.
package storage

// Blob stores the serialized application state under a single fixed key.
type Blob interface {
	// Read returns the stored blob. ok is false when nothing has been
	// stored yet; that is not an error.
	Read() (data []byte, ok bool, err error)

	// Write replaces the stored blob.
	Write(data []byte) error

	// Delete removes the stored blob. Deleting an absent blob is a no-op.
	Delete() error
}
