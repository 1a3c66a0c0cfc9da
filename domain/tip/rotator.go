package tip

import (
	"math/rand/v2"
)

// Catalog is a fixed, ordered list of distinct tips.
type Catalog struct {
	entries []string
}

// NewCatalog builds a catalog from entries, keeping the first occurrence
// of any duplicate.
func NewCatalog(entries ...string) Catalog {
	seen := make(map[string]struct{}, len(entries))
	kept := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		kept = append(kept, e)
	}
	return Catalog{entries: kept}
}

// Len returns the number of tips in the catalog.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the catalog in order.
func (c Catalog) Entries() []string {
	out := make([]string, len(c.entries))
	copy(out, c.entries)
	return out
}

// ShownSet records the tips already presented in one session.
// It only grows; insertion order is kept for display.
type ShownSet struct {
	members map[string]struct{}
	order   []string
}

// NewShownSet returns an empty set.
func NewShownSet() *ShownSet {
	return &ShownSet{members: make(map[string]struct{})}
}

// Contains reports whether tip has been shown.
func (s *ShownSet) Contains(tip string) bool {
	_, ok := s.members[tip]
	return ok
}

// Len returns the number of tips shown so far.
func (s *ShownSet) Len() int {
	return len(s.order)
}

// Tips returns the shown tips in the order they were drawn.
func (s *ShownSet) Tips() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *ShownSet) add(tip string) {
	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	s.members[tip] = struct{}{}
	s.order = append(s.order, tip)
}

// Draw is the outcome of Rotator.Next: either a tip or exhaustion.
type Draw struct {
	Tip       string
	Remaining int
	Exhausted bool
}

// Rotator picks unseen tips uniformly at random.
// It is not safe for concurrent use.
type Rotator struct {
	intN func(n int) int
}

// NewRotator returns a rotator drawing from src. A nil src uses the
// process-wide generator.
func NewRotator(src rand.Source) *Rotator {
	if src == nil {
		return &Rotator{intN: rand.IntN}
	}
	return &Rotator{intN: rand.New(src).IntN}
}

// Next draws a tip from catalog that is not yet in shown and records it.
// Once every catalog entry has been shown it reports exhaustion and leaves
// shown untouched.
func (r *Rotator) Next(catalog Catalog, shown *ShownSet) Draw {
	unseen := make([]string, 0, catalog.Len())
	for _, e := range catalog.entries {
		if !shown.Contains(e) {
			unseen = append(unseen, e)
		}
	}
	if len(unseen) == 0 {
		return Draw{Exhausted: true}
	}

	picked := unseen[r.intN(len(unseen))]
	shown.add(picked)
	return Draw{Tip: picked, Remaining: len(unseen) - 1}
}

// Remaining returns how many catalog entries have not been shown yet.
func Remaining(catalog Catalog, shown *ShownSet) int {
	n := 0
	for _, e := range catalog.entries {
		if !shown.Contains(e) {
			n++
		}
	}
	return n
}

// IsExhausted reports whether every catalog entry has been shown.
func IsExhausted(catalog Catalog, shown *ShownSet) bool {
	return Remaining(catalog, shown) == 0
}
