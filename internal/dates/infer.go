// Package dates infers a calendar date for a file without reading its
// contents. Sources, in configurable priority order, are date patterns in
// the filename, date patterns in ancestor folder names, and the filesystem
// modification time. Embedded metadata (EXIF and friends) is deliberately
// out of scope.
package dates

import (
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// Source identifies where a detected date came from.
type Source string

// Date source constants
const (
	SourceFilename   Source = "filename"
	SourceFolderName Source = "folder_name"
	SourceFilesystem Source = "filesystem"
	SourceUnknown    Source = "unknown"
)

// DefaultYearCutoff splits two-digit years: 00..cutoff map to 2000s,
// everything above to 1900s.
const DefaultYearCutoff = 30

type pattern struct {
	re   *regexp.Regexp
	kind string // "ymd", "ym", "y", "yymmdd"
}

// Filename patterns, most specific first. RE2 has no lookahead, so the
// "not followed by a digit" guards are written as consumed non-digit or
// end-of-string groups.
var filenamePatterns = []pattern{
	// YYYYMMDD_HHMMSS (camera, screenshots)
	{regexp.MustCompile(`(\d{4})(\d{2})(\d{2})[_-]\d{2}\d{2}\d{2}`), "ymd"},
	// IMG-YYYYMMDD-WA / VID-YYYYMMDD-WA (WhatsApp)
	{regexp.MustCompile(`(?i)IMG-(\d{4})(\d{2})(\d{2})-WA\d+`), "ymd"},
	{regexp.MustCompile(`(?i)VID-(\d{4})(\d{2})(\d{2})-WA\d+`), "ymd"},
	// IMG_YYYYMMDD (standard camera format)
	{regexp.MustCompile(`(?i)IMG[_-](\d{4})(\d{2})(\d{2})(?:\D|$)`), "ymd"},
	// Eight-digit date anywhere
	{regexp.MustCompile(`(?:^|\D)(\d{4})(\d{2})(\d{2})(?:\D|$)`), "ymd"},
	// YYYY-MM-DD / YYYY_MM_DD anywhere
	{regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`), "ymd"},
	{regexp.MustCompile(`(\d{4})_(\d{2})_(\d{2})`), "ymd"},
	// IMG_YYMMDD (two-digit year)
	{regexp.MustCompile(`(?i)IMG[_-](\d{2})(\d{2})(\d{2})(?:\D|$)`), "yymmdd"},
	// YYMMDD at the start of the filename
	{regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})(?:\D|$)`), "yymmdd"},
}

// Folder name patterns. Anchored full-date forms come before looser ones so
// "2024-03-15 Trip" beats a bare year elsewhere in the name.
var folderPatterns = []pattern{
	{regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`), "ymd"},
	{regexp.MustCompile(`^(\d{4})_(\d{2})_(\d{2})`), "ymd"},
	{regexp.MustCompile(`^(\d{4})\.(\d{2})\.(\d{2})`), "ymd"},
	{regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})(?:\D|$)`), "ymd"},
	{regexp.MustCompile(`^(\d{4})-(\d{2})(?:\D|$)`), "ym"},
	{regexp.MustCompile(`^(\d{4})_(\d{2})(?:\D|$)`), "ym"},
	{regexp.MustCompile(`^(\d{4})\.(\d{2})(?:\D|$)`), "ym"},
	{regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`), "ymd"},
	{regexp.MustCompile(`(\d{4})_(\d{2})_(\d{2})`), "ymd"},
	{regexp.MustCompile(`(\d{4})-(\d{2})(?:\D|$)`), "ym"},
	{regexp.MustCompile(`(?:^|\D)(\d{4})(?:\D|$)`), "y"},
}

// Engine infers dates with a configurable source priority.
type Engine struct {
	priority   []string
	yearCutoff int
}

// NewEngine creates an inference engine. Unknown priority entries are
// ignored; an empty priority defaults to filename, folder_name, filesystem.
func NewEngine(priority []string, yearCutoff int) *Engine {
	if len(priority) == 0 {
		priority = []string{"filename", "folder_name", "filesystem"}
	}
	if yearCutoff <= 0 {
		yearCutoff = DefaultYearCutoff
	}
	return &Engine{priority: priority, yearCutoff: yearCutoff}
}

// Infer returns the best date for the file at path together with its
// source. modTime is the filesystem fallback; SourceUnknown is returned
// only when the priority list excludes every usable source.
func (e *Engine) Infer(path string, modTime time.Time) (time.Time, Source) {
	for _, src := range e.priority {
		switch src {
		case "filename":
			if d, ok := e.FromFilename(filepath.Base(path)); ok {
				return d, SourceFilename
			}
		case "folder_name":
			if d, ok := e.FromFolderPath(filepath.Dir(path)); ok {
				return d, SourceFolderName
			}
		case "filesystem":
			if !modTime.IsZero() {
				return modTime, SourceFilesystem
			}
		}
	}
	return time.Time{}, SourceUnknown
}

// FromFilename extracts a date from a filename like
// "IMG_20240315_characters.jpg" or "2024-03-15 party.png".
func (e *Engine) FromFilename(name string) (time.Time, bool) {
	return match(filenamePatterns, name, e.yearCutoff)
}

// FromFolderPath extracts a date from the ancestor folder names of dir,
// nearest folder first, so "photos/2024/2024-03-15 Trip/img.jpg" dates from
// the trip folder rather than the year folder.
func (e *Engine) FromFolderPath(dir string) (time.Time, bool) {
	for current := dir; ; {
		name := filepath.Base(current)
		parent := filepath.Dir(current)
		if name == "" || name == "." || name == string(filepath.Separator) {
			break
		}
		if d, ok := match(folderPatterns, name, e.yearCutoff); ok {
			return d, true
		}
		if parent == current {
			break
		}
		current = parent
	}
	return time.Time{}, false
}

func match(patterns []pattern, s string, yearCutoff int) (time.Time, bool) {
	for _, p := range patterns {
		groups := p.re.FindStringSubmatch(s)
		if groups == nil {
			continue
		}

		nums := make([]int, 0, len(groups)-1)
		for _, g := range groups[1:] {
			n, err := strconv.Atoi(g)
			if err != nil {
				continue
			}
			nums = append(nums, n)
		}

		var year, month, day int
		switch p.kind {
		case "ymd":
			year, month, day = nums[0], nums[1], nums[2]
		case "ym":
			year, month, day = nums[0], nums[1], 1
		case "y":
			year, month, day = nums[0], 1, 1
		case "yymmdd":
			year, month, day = expandYear(nums[0], yearCutoff), nums[1], nums[2]
		}

		if d, ok := validDate(year, month, day); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

// expandYear maps a two-digit year onto a century using the cutoff.
func expandYear(yy, cutoff int) int {
	if yy <= cutoff {
		return 2000 + yy
	}
	return 1900 + yy
}

// validDate rejects matches that only look like dates, such as 20249932, by
// bounding the year and round-tripping through time.Date normalization.
func validDate(year, month, day int) (time.Time, bool) {
	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
