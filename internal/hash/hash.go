// Package hash provides file content hashing for duplicate detection.
//
// ChronoClean hashes file contents to find byte-identical files inside a
// scan batch before any moves are planned. SHA-256 is the default; MD5 is
// supported for callers that prefer speed over collision resistance. A fake
// implementation exists for testing.
package hash

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	hashpkg "hash"
	"io"

	"github.com/Stilmant/ChronoClean-sub001/internal/fsops"
)

// Hasher provides an abstraction for file hashing operations.
type Hasher interface {
	// HashFile computes the content hash of the file at the given path.
	HashFile(path string) (string, error)

	// Algorithm returns the name of the hash algorithm.
	Algorithm() string
}

// ForAlgorithm returns the hasher for the named algorithm. Unknown names
// fall back to SHA-256 rather than failing; the boolean reports whether the
// name was recognized so the caller can warn.
func ForAlgorithm(filesystem fsops.FS, name string) (Hasher, bool) {
	switch name {
	case "sha256", "":
		return NewSHA256Hasher(filesystem), true
	case "md5":
		return NewMD5Hasher(filesystem), true
	}
	return NewSHA256Hasher(filesystem), false
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct {
	fs fsops.FS
}

// NewSHA256Hasher creates a new SHA256Hasher reading through the given
// filesystem.
func NewSHA256Hasher(filesystem fsops.FS) *SHA256Hasher {
	return &SHA256Hasher{fs: filesystem}
}

// HashFile computes the SHA-256 hash of the file at the given path.
func (h *SHA256Hasher) HashFile(path string) (string, error) {
	return hashFile(h.fs, path, sha256.New())
}

// Algorithm returns "sha256".
func (h *SHA256Hasher) Algorithm() string {
	return "sha256"
}

// MD5Hasher implements Hasher using MD5. MD5 is weaker but faster; it is
// only used for duplicate grouping, never for integrity guarantees.
type MD5Hasher struct {
	fs fsops.FS
}

// NewMD5Hasher creates a new MD5Hasher reading through the given filesystem.
func NewMD5Hasher(filesystem fsops.FS) *MD5Hasher {
	return &MD5Hasher{fs: filesystem}
}

// HashFile computes the MD5 hash of the file at the given path.
func (h *MD5Hasher) HashFile(path string) (string, error) {
	return hashFile(h.fs, path, md5.New())
}

// Algorithm returns "md5".
func (h *MD5Hasher) Algorithm() string {
	return "md5"
}

func hashFile(filesystem fsops.FS, path string, hasher hashpkg.Hash) (string, error) {
	file, err := filesystem.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// FakeHasher implements Hasher with deterministic hashes for testing.
type FakeHasher struct {
	hashes map[string]string
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{
		hashes: make(map[string]string),
	}
}

// SetHash sets the hash for a specific path (for testing).
func (h *FakeHasher) SetHash(path, hash string) {
	h.hashes[path] = hash
}

// HashFile returns the predetermined hash for the given path.
func (h *FakeHasher) HashFile(path string) (string, error) {
	if hash, ok := h.hashes[path]; ok {
		return hash, nil
	}
	// Default hash if not set
	return "fakehash", nil
}

// Algorithm returns "fake".
func (h *FakeHasher) Algorithm() string {
	return "fake"
}
