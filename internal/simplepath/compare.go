package simplepath

// Contains reports whether b occurs, entry for entry, as a contiguous run
// inside a.
//
// Only the first occurrence of b[0] in a is tried as the alignment start.
// An empty b is never contained.
func Contains(a, b Path) bool {
	if len(b) == 0 || len(b) > len(a) {
		return false
	}
	start := a.Index(b[0])
	if start < 0 || start+len(b) > len(a) {
		return false
	}
	for i := 1; i < len(b); i++ {
		if a[start+i] != b[i] {
			return false
		}
	}
	return true
}

// OverlapCompatible reports whether a and b follow the same route over a
// shared, gap-free region, each free to extend past the other only at its
// own start or end.
//
// The anchor is the first concrete entry of a that also occurs in b. At
// least one of the two anchor positions must be 0. From the anchor on, the
// paths must agree entry for entry until either one runs out, and a may not
// hold a spacer in that region.
func OverlapCompatible(a, b Path) bool {
	ia, ib, ok := anchor(a, b)
	if !ok || (ia != 0 && ib != 0) {
		return false
	}
	for ia, ib = ia+1, ib+1; ia < len(a) && ib < len(b); ia, ib = ia+1, ib+1 {
		if a[ia].IsSpacer() || a[ia] != b[ib] {
			return false
		}
	}
	return true
}

// anchor returns the position of the first concrete entry of a that also
// occurs in b, along with the position of its first occurrence in b.
func anchor(a, b Path) (ia, ib int, ok bool) {
	for i, e := range a {
		if e.IsSpacer() {
			continue
		}
		if j := b.Index(e); j >= 0 {
			return i, j, true
		}
	}
	return 0, 0, false
}

// RemoveContained returns the members of paths that are not contained in
// another member. Of several equal paths only the first is kept. Input order
// is preserved and the input slice is not modified.
func RemoveContained(paths []Path) []Path {
	var kept []Path
	for i, p := range paths {
		dropped := false
		for j, q := range paths {
			if i == j || !Contains(q, p) {
				continue
			}
			if len(q) > len(p) || j < i {
				dropped = true
				break
			}
		}
		if !dropped {
			kept = append(kept, p)
		}
	}
	return kept
}
