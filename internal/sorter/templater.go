package sorter

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Templater translates dates into destination paths under a fixed root.
// The root and layout are bound at construction and never change.
type Templater struct {
	root   string
	layout Layout
}

// NewTemplater binds a templater to a destination root and a layout tag.
// Unknown tags fall back to "YYYY/MM"; the returned diagnostics report the
// substitution. Construction never fails.
func NewTemplater(destinationRoot, layoutTag string) (*Templater, []Diagnostic) {
	layout, diags := ResolveLayout(layoutTag)
	return &Templater{root: destinationRoot, layout: layout}, diags
}

// Root returns the destination root the templater is bound to.
func (t *Templater) Root() string {
	return t.root
}

// Layout returns the resolved layout.
func (t *Templater) Layout() Layout {
	return t.layout
}

// FolderFor computes the destination folder for the given date, with month
// and day zero-padded to two digits. The date is used exactly as given; any
// local/UTC normalization is the caller's responsibility.
func (t *Templater) FolderFor(date time.Time) string {
	return filepath.Join(t.root, filepath.FromSlash(t.relativeFolder(date)))
}

// FullDestination computes the full destination path for a source file.
//
// With an empty renameTo the source's base filename is kept unchanged. A
// rename that already carries an extension is used verbatim. A rename
// without an extension inherits the source's extension lower-cased, so a
// renamed IMG_0042.JPG comes out as <name>.jpg.
func (t *Templater) FullDestination(sourceID string, date time.Time, renameTo string) string {
	return filepath.Join(t.FolderFor(date), t.destinationFilename(sourceID, renameTo))
}

// RelativeDestination renders the folder template plus filename as a
// forward-slash relative string with no root. It exists for display and
// export output only, never for filesystem operations.
func (t *Templater) RelativeDestination(date time.Time, filename string) string {
	return t.relativeFolder(date) + "/" + filename
}

func (t *Templater) relativeFolder(date time.Time) string {
	switch t.layout {
	case LayoutYear:
		return fmt.Sprintf("%04d", date.Year())
	case LayoutYearMonthDay:
		return fmt.Sprintf("%04d/%02d/%02d", date.Year(), date.Month(), date.Day())
	default:
		return fmt.Sprintf("%04d/%02d", date.Year(), date.Month())
	}
}

func (t *Templater) destinationFilename(sourceID, renameTo string) string {
	if renameTo == "" {
		return filepath.Base(sourceID)
	}
	if filepath.Ext(renameTo) != "" {
		return renameTo
	}
	return renameTo + strings.ToLower(filepath.Ext(sourceID))
}
