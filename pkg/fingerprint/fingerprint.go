package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
)

// Generate hashes a set of "key=value" components into a 32-character hex
// string. Component order does not matter and empty components are ignored.
func Generate(components []string) string {
	filtered := make([]string, 0, len(components))
	for _, comp := range components {
		if comp != "" {
			filtered = append(filtered, comp)
		}
	}

	// Sort so that the same set of components always hashes the same way
	slices.Sort(filtered)

	combined := strings.Join(filtered, "|")
	hash := sha256.Sum256([]byte(combined))

	// Return first 16 bytes as 32-character hex string
	return hex.EncodeToString(hash[:16])
}

