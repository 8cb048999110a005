package trail

import (
	"slices"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
)

// InsertAt returns a copy of list with rec inserted at pos. pos may equal
// len(list), which appends. Duplicate ids are allowed.
func InsertAt(list []model.MediaRecord, pos int, rec model.MediaRecord) ([]model.MediaRecord, error) {
	if pos < 0 || pos > len(list) {
		return nil, &model.IndexOutOfRangeError{Index: pos, Len: len(list)}
	}
	out := make([]model.MediaRecord, 0, len(list)+1)
	out = append(out, list[:pos]...)
	out = append(out, rec)
	out = append(out, list[pos:]...)
	return out, nil
}

// RemoveAt returns a copy of list without the record at pos.
func RemoveAt(list []model.MediaRecord, pos int) ([]model.MediaRecord, error) {
	if pos < 0 || pos >= len(list) {
		return nil, &model.IndexOutOfRangeError{Index: pos, Len: len(list)}
	}
	out := make([]model.MediaRecord, 0, len(list)-1)
	out = append(out, list[:pos]...)
	out = append(out, list[pos+1:]...)
	return out, nil
}

// Move returns a copy of list with the record at from relocated to to. Both
// positions refer to the list as it is before the move.
func Move(list []model.MediaRecord, from, to int) ([]model.MediaRecord, error) {
	if from < 0 || from >= len(list) {
		return nil, &model.IndexOutOfRangeError{Index: from, Len: len(list)}
	}
	if to < 0 || to >= len(list) {
		return nil, &model.IndexOutOfRangeError{Index: to, Len: len(list)}
	}
	out := slices.Clone(list)
	if from == to {
		return out, nil
	}
	rec := out[from]
	out = slices.Delete(out, from, from+1)
	out = slices.Insert(out, to, rec)
	return out, nil
}

// Positions returns the indexes of every record whose id equals id.
func Positions(list []model.MediaRecord, id string) []int {
	var idx []int
	for i, r := range list {
		if r.ID == id {
			idx = append(idx, i)
		}
	}
	return idx
}

// DuplicateIDs returns each id that occurs more than once in list, in order
// of first occurrence. Blank ids are ignored.
func DuplicateIDs(list []model.MediaRecord) []string {
	seen := make(map[string]int, len(list))
	var dups []string
	for _, r := range list {
		if r.ID == "" {
			continue
		}
		seen[r.ID]++
		if seen[r.ID] == 2 {
			dups = append(dups, r.ID)
		}
	}
	return dups
}
