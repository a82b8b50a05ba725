package entity

import (
	"sort"
	"strings"
	"unicode"
)

// OrdinalAttribute is the attribute series members are ordered by.
const OrdinalAttribute = "position"

// SortRelationshipsByOrdinal orders views by the named attribute using a
// numeric-aware comparison ("2" before "10"). Missing values sort first. The
// sort is stable, so equal ordinals keep their load order.
func SortRelationshipsByOrdinal(views []RelationshipView, attribute string) {
	sort.SliceStable(views, func(i, j int) bool {
		return CompareNatural(views[i].Attribute(attribute), views[j].Attribute(attribute)) < 0
	})
}

// CompareNatural compares a and b treating runs of digits as numbers.
func CompareNatural(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		if unicode.IsDigit(ra[i]) && unicode.IsDigit(rb[j]) {
			si := i
			for i < len(ra) && unicode.IsDigit(ra[i]) {
				i++
			}
			sj := j
			for j < len(rb) && unicode.IsDigit(rb[j]) {
				j++
			}
			if c := compareDigits(string(ra[si:i]), string(rb[sj:j])); c != 0 {
				return c
			}
			continue
		}
		ca, cb := unicode.ToLower(ra[i]), unicode.ToLower(rb[j])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case len(ra)-i < len(rb)-j:
		return -1
	case len(ra)-i > len(rb)-j:
		return 1
	default:
		return 0
	}
}

func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
