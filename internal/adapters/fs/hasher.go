// Package fs implements content based change detection of watched inputs.
package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns the XXHash of content as 16 hex characters.
func Fingerprint(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}
