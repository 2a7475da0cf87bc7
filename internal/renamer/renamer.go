// Package renamer generates destination filenames from a pattern and a
// detected date. It is pure string work; whether the generated name is
// actually used is decided by the sorting plan.
package renamer

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Defaults mirror the stock rename behavior: names like 20240315_143000.jpg.
const (
	DefaultPattern    = "{date}_{time}"
	DefaultDateFormat = "20060102"
	DefaultTimeFormat = "150405"
)

var multiUnderscore = regexp.MustCompile(`_+`)

// Renamer builds filenames from a pattern with {date}, {time}, {original},
// and {counter} placeholders.
type Renamer struct {
	pattern      string
	dateFormat   string
	timeFormat   string
	lowercaseExt bool
}

// Options configure a Renamer. Zero-value fields fall back to the defaults.
type Options struct {
	Pattern             string
	DateFormat          string
	TimeFormat          string
	LowercaseExtensions bool
}

// New creates a Renamer.
func New(opts Options) *Renamer {
	if opts.Pattern == "" {
		opts.Pattern = DefaultPattern
	}
	if opts.DateFormat == "" {
		opts.DateFormat = DefaultDateFormat
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = DefaultTimeFormat
	}
	return &Renamer{
		pattern:      opts.Pattern,
		dateFormat:   opts.DateFormat,
		timeFormat:   opts.TimeFormat,
		lowercaseExt: opts.LowercaseExtensions,
	}
}

// Generate builds the new filename for sourcePath at the given date.
// counter disambiguates repeated names when > 0; it is zero-padded to three
// digits and appended even when the pattern has no {counter} placeholder.
func (r *Renamer) Generate(sourcePath string, date time.Time, counter int) string {
	ext := filepath.Ext(sourcePath)
	stem := strings.TrimSuffix(filepath.Base(sourcePath), ext)

	name := r.pattern
	name = strings.ReplaceAll(name, "{date}", date.Format(r.dateFormat))
	name = strings.ReplaceAll(name, "{time}", date.Format(r.timeFormat))
	name = strings.ReplaceAll(name, "{original}", stem)

	if strings.Contains(name, "{counter}") {
		if counter > 0 {
			name = strings.ReplaceAll(name, "{counter}", fmt.Sprintf("%03d", counter))
		} else {
			name = strings.ReplaceAll(name, "{counter}", "")
		}
	} else if counter > 0 {
		name = fmt.Sprintf("%s_%03d", name, counter)
	}

	// Collapse artifacts of empty placeholders.
	name = multiUnderscore.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")

	if r.lowercaseExt {
		ext = strings.ToLower(ext)
	}
	return name + ext
}
