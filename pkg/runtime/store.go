package runtime

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Cleanup tears down the previous run of an effect.
type Cleanup func()

// hookKind discriminates the two hook record shapes.
type hookKind uint8

const (
	stateHook hookKind = iota
	effectHook
)

// hookRecord is one state or effect slot for a path. Slots are
// assigned by call order within one component execution; that order
// must be stable across renders of the same path.
type hookRecord struct {
	kind hookKind

	// state
	value any

	// effect
	deps    []any
	hasDeps bool
	effect  func() Cleanup
	cleanup Cleanup
}

// pendingEffect identifies a queued effect run by path and slot.
type pendingEffect struct {
	path string
	slot int
}

// store holds all hook state for one runtime, keyed by structural
// path: the ordered hook records per path, a read cursor per path, the
// set of paths visited during the current render pass, and the queue
// of effect runs awaiting the post-commit flush.
type store struct {
	records map[string][]*hookRecord
	cursors map[string]int
	visited mapset.Set[string]
	pending []pendingEffect
}

func newStore() *store {
	return &store{
		records: make(map[string][]*hookRecord),
		cursors: make(map[string]int),
		visited: mapset.NewThreadUnsafeSet[string](),
	}
}

// next returns the record at the current cursor for path, advancing
// the cursor. A new record is appended when the cursor runs past the
// stored sequence (first render of that slot).
func (s *store) next(path string) (rec *hookRecord, slot int, existed bool) {
	slot = s.cursors[path]
	s.cursors[path] = slot + 1
	recs := s.records[path]
	if slot < len(recs) {
		return recs[slot], slot, true
	}
	rec = &hookRecord{}
	s.records[path] = append(recs, rec)
	return rec, slot, false
}

// markVisited records that a component executed at path this pass.
func (s *store) markVisited(path string) {
	s.visited.Add(path)
}

// beginPass resets every path's cursor to zero and clears the visited
// set. Called at the start of each render pass.
func (s *store) beginPass() {
	s.cursors = make(map[string]int)
	s.visited.Clear()
}

// queueEffect records a pending effect run. The run executes during
// the post-commit flush, not immediately.
func (s *store) queueEffect(path string, slot int) {
	s.pending = append(s.pending, pendingEffect{path: path, slot: slot})
}

// drainPending returns and clears the queued effect runs.
func (s *store) drainPending() []pendingEffect {
	p := s.pending
	s.pending = nil
	return p
}

// rebind moves hook records between path keys in two phases: every
// moving entry is detached from the store first, then installed under
// its new key. State follows identity across a move; the cursor is not
// copied because cursors reset every pass. Two components exchanging
// positions would clobber each other's records if moves were applied
// one at a time.
func (s *store) rebind(moves map[string]string) {
	type detached struct {
		recs    []*hookRecord
		visited bool
	}
	pending := make(map[string]detached, len(moves))
	for oldPath, newPath := range moves {
		if oldPath == newPath {
			continue
		}
		d := detached{visited: s.visited.Contains(oldPath)}
		if recs, ok := s.records[oldPath]; ok {
			d.recs = recs
			delete(s.records, oldPath)
		}
		delete(s.cursors, oldPath)
		s.visited.Remove(oldPath)
		pending[newPath] = d
	}
	for newPath, d := range pending {
		if d.recs != nil {
			s.records[newPath] = d.recs
		}
		if d.visited {
			s.visited.Add(newPath)
		}
	}
}

// drop runs the effect cleanups recorded at path, then discards its
// records and cursor. Used for explicit unmounts and by the sweep.
func (s *store) drop(path string) {
	for _, rec := range s.records[path] {
		if rec.kind == effectHook && rec.cleanup != nil {
			rec.cleanup()
			rec.cleanup = nil
		}
	}
	delete(s.records, path)
	delete(s.cursors, path)
	s.visited.Remove(path)
}

// sweep drops every path not visited during the pass that just ended:
// an unvisited path belongs to a component that unmounted. Returns the
// swept paths.
func (s *store) sweep() []string {
	var dead []string
	for path := range s.records {
		if !s.visited.Contains(path) {
			dead = append(dead, path)
		}
	}
	for _, path := range dead {
		s.drop(path)
	}
	return dead
}

// reset drops every path, running all effect cleanups. Used when a
// root is torn down.
func (s *store) reset() {
	for path := range s.records {
		s.drop(path)
	}
	s.pending = nil
}
