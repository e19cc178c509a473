package simplepath

import "fmt"

// Merge combines two overlap-compatible paths into one.
//
// The shape of the result depends on where the shared anchor sits:
//
//	anchor at 0 in a only:  a  .....=======       b  ====......
//	                        result is b, then a's tail past b's end
//	anchor at 0 in b only:  the mirror image, a first
//	anchor at 0 in both:    the longer path; b wins a tie
//
// It returns ErrIncompatiblePaths if OverlapCompatible(a, b) is false.
// The result never shares storage with a or b.
func Merge(a, b Path) (Path, error) {
	if !OverlapCompatible(a, b) {
		return nil, fmt.Errorf("merge %s with %s: %w", a, b, ErrIncompatiblePaths)
	}

	ia, ib, ok := anchor(a, b)
	if !ok {
		return nil, fmt.Errorf("merge %s with %s: %w", a, b, ErrMergeLogic)
	}

	switch {
	case ia == 0 && ib == 0:
		if len(a) > len(b) {
			return a.Clone(), nil
		}
		return b.Clone(), nil
	case ia == 0:
		return extend(b, a, len(b)-ib), nil
	case ib == 0:
		return extend(a, b, len(a)-ia), nil
	default:
		return nil, fmt.Errorf("merge %s with %s: anchor at %d/%d: %w", a, b, ia, ib, ErrMergeLogic)
	}
}

// extend copies head and appends tail[from:] when tail reaches past head.
func extend(head, tail Path, from int) Path {
	out := make(Path, 0, len(head)+max(len(tail)-from, 0))
	out = append(out, head...)
	if from < len(tail) {
		out = append(out, tail[from:]...)
	}
	return out
}

// MergeAll folds Merge over paths from left to right. It stops at the first
// path that is not compatible with the running result.
func MergeAll(paths ...Path) (Path, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	merged := paths[0].Clone()
	for i, p := range paths[1:] {
		next, err := Merge(merged, p)
		if err != nil {
			return nil, fmt.Errorf("merge path %d: %w", i+1, err)
		}
		merged = next
	}
	return merged, nil
}
