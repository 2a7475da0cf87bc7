package sorter

import "time"

// Conflict records a newly added source whose destination collides with a
// destination already held by another source. Existing is the first source
// in insertion order holding the same destination at the time of the add.
type Conflict struct {
	// Source is the source that was being added when the collision surfaced.
	Source string

	// Existing is the earlier source already mapped to the same destination.
	Existing string

	// Destination is the shared destination path.
	Destination string
}

// SortingPlan accumulates destinations for a batch of files and records
// collisions between distinct sources. It is advisory data only: nothing in
// the plan touches the filesystem, and the caller decides whether to block,
// skip, or proceed before executing any moves.
//
// A plan is a single-owner mutable value. Callers that compute destinations
// in parallel must still fold the results into the plan serially so conflict
// ordering stays deterministic.
type SortingPlan struct {
	templater *Templater
	order     []string          // sources in first-insertion order
	dests     map[string]string // source -> destination
	conflicts []Conflict
}

// NewSortingPlan creates a plan bound to a destination root and layout tag.
// Unknown layout tags degrade to "YYYY/MM" with a warning diagnostic;
// construction never fails.
func NewSortingPlan(destinationRoot, layoutTag string) (*SortingPlan, []Diagnostic) {
	templater, diags := NewTemplater(destinationRoot, layoutTag)
	return &SortingPlan{
		templater: templater,
		dests:     make(map[string]string),
	}, diags
}

// Templater returns the templater the plan computes destinations with.
func (p *SortingPlan) Templater() *Templater {
	return p.templater
}

// AddFile computes the destination for sourceID, records it, and returns it.
//
// If another source already resolves to the same destination, a Conflict
// pairing sourceID with the first such source in insertion order is
// appended; the new mapping is still recorded. Re-adding a source
// overwrites its previous destination in place without conflicting against
// itself.
//
// The linear scan keeps the "first match in insertion order" pairing exact
// even after overwrites retire a destination. Batches are bounded by a
// single user run, so O(n) per add is acceptable.
func (p *SortingPlan) AddFile(sourceID string, date time.Time, renameTo string) string {
	dest := p.templater.FullDestination(sourceID, date, renameTo)

	for _, src := range p.order {
		if src == sourceID {
			continue
		}
		if p.dests[src] == dest {
			p.conflicts = append(p.conflicts, Conflict{
				Source:      sourceID,
				Existing:    src,
				Destination: dest,
			})
			break
		}
	}

	if _, seen := p.dests[sourceID]; !seen {
		p.order = append(p.order, sourceID)
	}
	p.dests[sourceID] = dest
	return dest
}

// Destinations returns an independent snapshot of the source -> destination
// mapping. Mutating the returned map never affects the plan.
func (p *SortingPlan) Destinations() map[string]string {
	out := make(map[string]string, len(p.dests))
	for src, dest := range p.dests {
		out[src] = dest
	}
	return out
}

// Sources returns the recorded sources in first-insertion order.
func (p *SortingPlan) Sources() []string {
	return append([]string(nil), p.order...)
}

// Conflicts returns an independent snapshot of the recorded conflicts in
// detection order.
func (p *SortingPlan) Conflicts() []Conflict {
	return append([]Conflict(nil), p.conflicts...)
}

// HasConflicts reports whether any conflict has been recorded.
func (p *SortingPlan) HasConflicts() bool {
	return len(p.conflicts) > 0
}
