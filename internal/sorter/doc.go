// Package sorter computes destination paths for files from their detected
// dates and detects naming collisions across a batch before any filesystem
// mutation happens.
//
// The package is pure: it never touches the filesystem. A Templater maps a
// date onto a date-partitioned folder layout under a fixed destination root,
// and a SortingPlan accumulates source -> destination mappings while
// recording every collision between distinct sources.
//
// Key responsibilities:
//   - Resolve layout tags ("YYYY", "YYYY/MM", "YYYY/MM/DD") with a
//     non-fatal fallback for unknown tags
//   - Compute full and display-relative destination paths
//   - Track source -> destination mappings in insertion order
//   - Pair each colliding source with the first prior source holding the
//     same destination
package sorter
