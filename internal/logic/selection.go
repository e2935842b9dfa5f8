package logic

// ToggleSelection returns a new selection with row removed if it was selected,
// or appended to the end if it was not. selection is not modified.
func ToggleSelection[R any](selection []R, row R, key KeyFunc[R]) []R {
	key = keyOrDefault(key)

	if i := indexOf(selection, key(row), key); i >= 0 {
		out := make([]R, 0, len(selection)-1)
		out = append(out, selection[:i]...)
		return append(out, selection[i+1:]...)
	}

	out := make([]R, 0, len(selection)+1)
	out = append(out, selection...)
	return append(out, row)
}

// IsSelected reports whether row is part of selection
func IsSelected[R any](selection []R, row R, key KeyFunc[R]) bool {
	key = keyOrDefault(key)
	return indexOf(selection, key(row), key) >= 0
}

// PruneSelection drops selected rows whose key no longer appears in rows.
// Surviving entries are replaced by the matching row from rows so the
// selection never holds outdated values. Selection order is kept.
func PruneSelection[R any](selection, rows []R, key KeyFunc[R]) (pruned []R, removed []R) {
	key = keyOrDefault(key)

	current := make(map[string]R, len(rows))
	for _, row := range rows {
		k := key(row)
		if _, seen := current[k]; !seen {
			current[k] = row
		}
	}

	pruned = make([]R, 0, len(selection))
	for _, sel := range selection {
		if row, ok := current[key(sel)]; ok {
			pruned = append(pruned, row)
		} else {
			removed = append(removed, sel)
		}
	}
	return pruned, removed
}

// SelectionKeys returns the keys of the selected rows, in selection order
func SelectionKeys[R any](selection []R, key KeyFunc[R]) []string {
	key = keyOrDefault(key)
	keys := make([]string, len(selection))
	for i, row := range selection {
		keys[i] = key(row)
	}
	return keys
}

func indexOf[R any](selection []R, k string, key KeyFunc[R]) int {
	for i, sel := range selection {
		if key(sel) == k {
			return i
		}
	}
	return -1
}

func keyOrDefault[R any](key KeyFunc[R]) KeyFunc[R] {
	if key == nil {
		return StructuralKey[R]
	}
	return key
}
