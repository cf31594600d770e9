package domain

// SnapshotEntry reading of a single tracked pair.
type SnapshotEntry struct {
	Pair    TrackedPair
	Reading Reading
}

// Snapshot readings of all tracked pairs for one refresh cycle.
// Entries keep the order of the pairs the snapshot was built from.
type Snapshot struct {
	entries []SnapshotEntry
	index   map[string]int
}

// NewSnapshot creates a snapshot holding a zero reading for every pair.
func NewSnapshot(pairs []TrackedPair) *Snapshot {
	s := &Snapshot{
		entries: make([]SnapshotEntry, 0, len(pairs)),
		index:   make(map[string]int, len(pairs)),
	}
	for _, p := range pairs {
		if _, ok := s.index[p.ID()]; ok {
			continue
		}
		s.index[p.ID()] = len(s.entries)
		s.entries = append(s.entries, SnapshotEntry{Pair: p, Reading: ZeroReading()})
	}

	return s
}

// Set stores the reading for the pair with the given id.
// Ids not present in the snapshot are ignored.
func (s *Snapshot) Set(id string, r Reading) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.entries[i].Reading = r
	return true
}

// Reading returns the reading for the pair with the given id.
func (s *Snapshot) Reading(id string) (Reading, bool) {
	i, ok := s.index[id]
	if !ok {
		return Reading{}, false
	}
	return s.entries[i].Reading, true
}

// Len returns the number of entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in pair order.
func (s *Snapshot) Entries() []SnapshotEntry {
	out := make([]SnapshotEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
