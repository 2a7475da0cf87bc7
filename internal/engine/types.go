package engine

import (
	"time"

	"github.com/Stilmant/ChronoClean-sub001/internal/dates"
	"github.com/Stilmant/ChronoClean-sub001/internal/dupes"
	"github.com/Stilmant/ChronoClean-sub001/internal/scanner"
	"github.com/Stilmant/ChronoClean-sub001/internal/sorter"
)

// ScanRequest asks for file discovery plus date inference.
type ScanRequest struct {
	// Source is the root directory to scan.
	Source string

	// Limit caps the number of files collected; 0 uses the config value.
	Limit int
}

// ScannedFile is a discovered file with its inferred date.
type ScannedFile struct {
	scanner.FileRecord

	// Date is the detected date used for destination computation.
	Date time.Time

	// DateSource records where the date came from.
	DateSource dates.Source
}

// ScanResult is the outcome of a scan.
type ScanResult struct {
	Root      string
	Records   []ScannedFile
	TotalSeen int
	Skipped   int
	Errors    []scanner.ScanError
	Duration  time.Duration
}

// PlanRequest asks for a full sorting plan over a source tree.
type PlanRequest struct {
	ScanRequest

	// Destination is the destination root; empty falls back to config.
	Destination string

	// Layout is a layout tag like "YYYY/MM"; empty falls back to config.
	// Unknown tags degrade to "YYYY/MM" with a diagnostic.
	Layout string

	// Rename generates destination filenames from the configured pattern
	// instead of keeping source filenames.
	Rename bool

	// CheckDuplicates hashes file contents and groups byte-identical files.
	CheckDuplicates bool
}

// PlanEntry is one file's computed placement.
type PlanEntry struct {
	Source              string
	Type                scanner.FileType
	SizeBytes           int64
	Date                time.Time
	DateSource          dates.Source
	Destination         string
	RelativeDestination string
}

// PlanResult is the advisory output of planning: destinations, conflicts,
// and diagnostics for the caller to act on. Executing moves is out of
// scope.
type PlanResult struct {
	SourceRoot      string
	DestinationRoot string
	Layout          string

	// Entries are the planned files in walk order.
	Entries []PlanEntry

	// Destinations is the source -> destination snapshot.
	Destinations map[string]string

	// Conflicts are destination collisions in detection order.
	Conflicts []sorter.Conflict

	// Diagnostics carry non-fatal configuration warnings such as the
	// layout fallback.
	Diagnostics []sorter.Diagnostic

	// DuplicateGroups are sets of byte-identical sources (when requested).
	DuplicateGroups []dupes.Group

	// HashFailures are files that could not be hashed for duplicate checks.
	HashFailures []dupes.Failure

	ScanErrors []scanner.ScanError
	TotalSeen  int
	Skipped    int
	Duration   time.Duration
}

// HasConflicts returns true if the plan has any destination collisions.
func (r *PlanResult) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// ExportRequest asks for a plan rendered to a report file.
type ExportRequest struct {
	PlanRequest

	// Format is "json" or "csv"; empty means json.
	Format string

	// OutputPath overrides the generated path under the export directory.
	OutputPath string
}
