// Package dupes groups byte-identical files inside a scan batch by content
// hash, so duplicates can be reported before any move is planned. Files are
// only read, never modified.
package dupes

import (
	"github.com/Stilmant/ChronoClean-sub001/internal/hash"
)

// Group is a set of files with identical content. Original is the first
// path seen with the hash; Duplicates are every later path.
type Group struct {
	Hash       string
	Original   string
	Duplicates []string
}

// Failure records a file whose content could not be hashed. Failures never
// abort grouping.
type Failure struct {
	Path string
	Err  error
}

// Checker hashes file contents and remembers results for the lifetime of a
// batch, so a path is read at most once.
type Checker struct {
	hasher hash.Hasher
	cache  map[string]string
}

// NewChecker creates a Checker using the given hasher.
func NewChecker(hasher hash.Hasher) *Checker {
	return &Checker{
		hasher: hasher,
		cache:  make(map[string]string),
	}
}

// Algorithm returns the name of the underlying hash algorithm.
func (c *Checker) Algorithm() string {
	return c.hasher.Algorithm()
}

// Hash returns the content hash for path, computing it on first use.
func (c *Checker) Hash(path string) (string, error) {
	if h, ok := c.cache[path]; ok {
		return h, nil
	}
	h, err := c.hasher.HashFile(path)
	if err != nil {
		return "", err
	}
	c.cache[path] = h
	return h, nil
}

// AreDuplicates reports whether two files have identical content.
func (c *Checker) AreDuplicates(path1, path2 string) (bool, error) {
	h1, err := c.Hash(path1)
	if err != nil {
		return false, err
	}
	h2, err := c.Hash(path2)
	if err != nil {
		return false, err
	}
	return h1 == h2, nil
}

// GroupAll hashes every path and returns the duplicate groups in order of
// first occurrence. Paths that cannot be read are reported as failures and
// excluded from grouping.
func (c *Checker) GroupAll(paths []string) ([]Group, []Failure) {
	var failures []Failure
	byHash := make(map[string][]string)
	var hashOrder []string

	for _, path := range paths {
		h, err := c.Hash(path)
		if err != nil {
			failures = append(failures, Failure{Path: path, Err: err})
			continue
		}
		if _, seen := byHash[h]; !seen {
			hashOrder = append(hashOrder, h)
		}
		byHash[h] = append(byHash[h], path)
	}

	var groups []Group
	for _, h := range hashOrder {
		members := byHash[h]
		if len(members) < 2 {
			continue
		}
		groups = append(groups, Group{
			Hash:       h,
			Original:   members[0],
			Duplicates: members[1:],
		})
	}
	return groups, failures
}
