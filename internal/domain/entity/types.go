package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Type is the closed set of entity kinds.
type Type string

const (
	TypeAuthor       Type = "Author"
	TypeEdition      Type = "Edition"
	TypeEditionGroup Type = "EditionGroup"
	TypePublisher    Type = "Publisher"
	TypeSeries       Type = "Series"
	TypeWork         Type = "Work"
)

var ErrUnknownType = errors.New("unrecognized entity type")

// Types lists every entity kind in display order.
func Types() []Type {
	return []Type{TypeAuthor, TypeEdition, TypeEditionGroup, TypePublisher, TypeSeries, TypeWork}
}

// ParseType accepts the canonical type name only.
func ParseType(name string) (Type, error) {
	for _, t := range Types() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: '%s'", ErrUnknownType, name)
}

// Route is the kebab-case path segment for t.
func (t Type) Route() string {
	return kebabCase(string(t))
}

func (t Type) String() string { return string(t) }

// SameType compares type names the way collection checks do: word-split and
// lowercased, so "EditionGroup", "editionGroup" and "Edition Group" all match.
func SameType(a, b string) bool {
	return lowerWords(a) == lowerWords(b)
}

func kebabCase(s string) string {
	return strings.ReplaceAll(lowerWords(s), " ", "-")
}

func lowerWords(s string) string {
	words := []string{}
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == ' ' || r == '-' || r == '_':
			flush()
		case r >= 'A' && r <= 'Z':
			prevLower := i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			prevUpper := i > 0 && runes[i-1] >= 'A' && runes[i-1] <= 'Z'
			if prevLower || (prevUpper && nextLower) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return strings.Join(words, " ")
}
