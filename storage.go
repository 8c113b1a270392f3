package nodegraph

// storageMaxAge is the number of frames an untouched Storage entry survives.
const storageMaxAge = 600

type storageEntry struct {
	value any
	frame uint64
}

// Storage is a scratch key-value store that survives across frames. Widgets
// use it to remember measurements from one frame to the next. Entries that
// are neither read nor written for storageMaxAge frames are evicted.
type Storage struct {
	entries map[ID]*storageEntry
	frame   uint64
}

func newStorage() *Storage {
	return &Storage{entries: make(map[ID]*storageEntry)}
}

func (s *Storage) get(id ID) (any, bool) {
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	e.frame = s.frame
	return e.value, true
}

func (s *Storage) set(id ID, v any) {
	if e, ok := s.entries[id]; ok {
		e.value = v
		e.frame = s.frame
		return
	}
	s.entries[id] = &storageEntry{value: v, frame: s.frame}
}

// Float returns the float stored under id, or def.
func (s *Storage) Float(id ID, def float64) float64 {
	if v, ok := s.get(id); ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return def
}

// SetFloat stores a float under id.
func (s *Storage) SetFloat(id ID, v float64) { s.set(id, v) }

// Bool returns the bool stored under id, or false.
func (s *Storage) Bool(id ID) bool {
	if v, ok := s.get(id); ok {
		b, _ := v.(bool)
		return b
	}
	return false
}

// SetBool stores a bool under id.
func (s *Storage) SetBool(id ID, v bool) { s.set(id, v) }

// Value returns the opaque value stored under id.
func (s *Storage) Value(id ID) (any, bool) { return s.get(id) }

// SetValue stores an opaque value under id.
func (s *Storage) SetValue(id ID, v any) { s.set(id, v) }

// Delete removes id.
func (s *Storage) Delete(id ID) { delete(s.entries, id) }

// Len returns the number of live entries.
func (s *Storage) Len() int { return len(s.entries) }

// advance moves the store to a new frame and evicts stale entries.
func (s *Storage) advance(frame uint64) {
	s.frame = frame
	if frame%storageMaxAge != 0 {
		return
	}
	for id, e := range s.entries {
		if frame-e.frame > storageMaxAge {
			delete(s.entries, id)
		}
	}
}
