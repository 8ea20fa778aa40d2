package compliance

import (
	"cmp"
	"slices"

	"github.com/playperu/sportselect/internal/sportselect"
)

// Roster returns the students whose selection includes sportID, ordered by
// name then ID. Selections for unknown students are ignored.
func Roster(sportID string, students []sportselect.Student, selections sportselect.Selections) []sportselect.Student {
	var out []sportselect.Student
	for _, st := range students {
		if selections.For(st.ID).Has(sportID) {
			out = append(out, st)
		}
	}
	slices.SortFunc(out, func(a, b sportselect.Student) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out
}
