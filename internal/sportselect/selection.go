package sportselect

import (
	"encoding/json"
	"slices"
)

// StudentSelection is the set of sport IDs a student has chosen. Membership
// is the only signal; there is no ordering and no per-entry metadata.
type StudentSelection map[string]struct{}

// NewSelection builds a selection from ids, dropping empties and duplicates.
func NewSelection(ids ...string) StudentSelection {
	sel := make(StudentSelection, len(ids))
	for _, id := range ids {
		if id != "" {
			sel[id] = struct{}{}
		}
	}
	return sel
}

func (s StudentSelection) Has(sportID string) bool {
	_, ok := s[sportID]
	return ok
}

// IDs returns the selected sport IDs in sorted order.
func (s StudentSelection) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Toggle returns a new selection with sportID flipped. The receiver is not
// modified.
func (s StudentSelection) Toggle(sportID string) StudentSelection {
	next := make(StudentSelection, len(s)+1)
	for id := range s {
		next[id] = struct{}{}
	}
	if _, ok := next[sportID]; ok {
		delete(next, sportID)
	} else {
		next[sportID] = struct{}{}
	}
	return next
}

// MarshalJSON encodes the set as {"<sportId>": true, ...}.
func (s StudentSelection) MarshalJSON() ([]byte, error) {
	m := make(map[string]bool, len(s))
	for id := range s {
		m[id] = true
	}
	return json.Marshal(m)
}

// UnmarshalJSON accepts {"<sportId>": true, ...}; entries set to false are
// treated as absent.
func (s *StudentSelection) UnmarshalJSON(data []byte) error {
	var m map[string]bool
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	sel := make(StudentSelection, len(m))
	for id, on := range m {
		if on && id != "" {
			sel[id] = struct{}{}
		}
	}
	*s = sel
	return nil
}
