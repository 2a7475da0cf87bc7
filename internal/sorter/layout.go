package sorter

import "fmt"

// Layout selects the date-partitioned folder structure created under the
// destination root.
type Layout int

const (
	// LayoutYear produces root/YYYY.
	LayoutYear Layout = iota

	// LayoutYearMonth produces root/YYYY/MM.
	LayoutYearMonth

	// LayoutYearMonthDay produces root/YYYY/MM/DD.
	LayoutYearMonthDay
)

// Layout tags accepted in config files and on the command line.
const (
	TagYear         = "YYYY"
	TagYearMonth    = "YYYY/MM"
	TagYearMonthDay = "YYYY/MM/DD"
)

// DefaultLayout is substituted for unknown layout tags.
const DefaultLayout = LayoutYearMonth

// Diagnostic is a non-fatal notice produced while resolving configuration.
// Diagnostics are returned as values so the host decides whether they become
// log lines, CLI warnings, or test assertions.
type Diagnostic struct {
	Message string
}

// ResolveLayout maps a layout tag to a Layout.
//
// Unknown tags resolve to DefaultLayout with a warning diagnostic instead of
// an error, so a typo in a config file degrades the folder structure rather
// than aborting a batch run. This permissive fallback masks typos: callers
// must surface the diagnostic.
func ResolveLayout(tag string) (Layout, []Diagnostic) {
	switch tag {
	case TagYear:
		return LayoutYear, nil
	case TagYearMonth:
		return LayoutYearMonth, nil
	case TagYearMonthDay:
		return LayoutYearMonthDay, nil
	}
	return DefaultLayout, []Diagnostic{{
		Message: fmt.Sprintf("unknown folder structure %q, using %q", tag, TagYearMonth),
	}}
}

// Tag returns the canonical tag for the layout.
func (l Layout) Tag() string {
	switch l {
	case LayoutYear:
		return TagYear
	case LayoutYearMonthDay:
		return TagYearMonthDay
	default:
		return TagYearMonth
	}
}

// Tags lists the supported layout tags from coarsest to finest.
func Tags() []string {
	return []string{TagYear, TagYearMonth, TagYearMonthDay}
}
