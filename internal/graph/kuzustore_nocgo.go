//go:build !cgo

package graph

import "errors"

// openKuzuBackend is unavailable in builds without cgo.
func openKuzuBackend(string) (Store, error) {
	return nil, errors.New("kuzu: backend requires a cgo-enabled build")
}
