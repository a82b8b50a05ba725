package lookup

import "fmt"

// Kind names a lookup table the way pages refer to it.
type Kind string

const (
	KindAuthorTypes       Kind = "authorTypes"
	KindEditionFormats    Kind = "editionFormats"
	KindEditionStatuses   Kind = "editionStatuses"
	KindIdentifierTypes   Kind = "identifierTypes"
	KindEditionGroupTypes Kind = "editionGroupTypes"
	KindPublisherTypes    Kind = "publisherTypes"
	KindWorkTypes         Kind = "workTypes"
	KindRelationshipTypes Kind = "relationshipTypes"
	KindGenders           Kind = "genders"
	KindLanguages         Kind = "languages"
)

// Kinds lists every lookup kind.
func Kinds() []Kind {
	return []Kind{
		KindAuthorTypes,
		KindEditionFormats,
		KindEditionStatuses,
		KindIdentifierTypes,
		KindEditionGroupTypes,
		KindPublisherTypes,
		KindWorkTypes,
		KindRelationshipTypes,
		KindGenders,
		KindLanguages,
	}
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown lookup kind: %q", s)
}
