package scanner

import "time"

// FileType classifies a discovered file by its extension.
type FileType string

// File type constants
const (
	FileTypeImage   FileType = "image"
	FileTypeVideo   FileType = "video"
	FileTypeRaw     FileType = "raw"
	FileTypeUnknown FileType = "unknown"
)

// FileRecord describes a single discovered file. Discovery is read-only:
// the record carries only what a directory walk and a stat can see.
type FileRecord struct {
	// SourcePath is the file's path under the scanned root.
	SourcePath string

	// Type is the extension-based classification.
	Type FileType

	// SizeBytes is the file size.
	SizeBytes int64

	// ModTime is the filesystem modification time, used as the last-resort
	// date source.
	ModTime time.Time
}

// ScanError records a file that could not be inspected during the walk.
type ScanError struct {
	Path    string
	Message string
}

// Result is the outcome of scanning a source tree.
type Result struct {
	// Root is the scanned source root.
	Root string

	// Records are the supported files found, in walk order.
	Records []FileRecord

	// TotalSeen counts every regular file visited, supported or not.
	TotalSeen int

	// Skipped counts files passed over (unsupported extension or hidden).
	Skipped int

	// Errors are per-file inspection failures; they never abort the scan.
	Errors []ScanError
}
