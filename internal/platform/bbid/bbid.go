// Package bbid validates BookBrainz identifiers.
//
// A BBID is a lowercase, hyphenated 8-4-4-4-12 hexadecimal token. Validation is
// exact: no trimming, no case folding.
package bbid

import "regexp"

var bbidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// Valid reports whether s is a canonical BBID.
func Valid(s string) bool {
	return bbidRegex.MatchString(s)
}

// FirstInvalid returns the first entry of ids that is not a valid BBID.
func FirstInvalid(ids []string) (string, bool) {
	for _, id := range ids {
		if !Valid(id) {
			return id, true
		}
	}
	return "", false
}
