// Package ident generates collision-resistant string ids with a
// collection-identifying prefix, e.g. "post-6f1c...".
package ident

import "github.com/google/uuid"

// New returns a fresh id with the given prefix.
func New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
