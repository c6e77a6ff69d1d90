package asset

import (
	"fmt"
	"strings"
)

// Type represents a recognized record type label.
type Type string

const (
	TypeGameObject Type = "GameObject"
	TypeMesh       Type = "Mesh"
	TypeTexture2D  Type = "Texture2D"
	TypeAnimator   Type = "Animator"
	TypeMaterial   Type = "Material"
)

// DefaultType is used when no type was requested.
const DefaultType = TypeGameObject

// Types lists the recognized vocabulary in display order.
var Types = []Type{TypeGameObject, TypeMesh, TypeTexture2D, TypeAnimator, TypeMaterial}

func (t Type) String() string {
	return string(t)
}

// UnknownTypeError reports a label outside of the recognized vocabulary.
type UnknownTypeError struct {
	Label string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%q is not a recognized type", e.Label)
}

// ParseType returns the vocabulary entry matching label exactly.
func ParseType(label string) (Type, error) {
	for _, candidate := range Types {
		if string(candidate) == label {
			return candidate, nil
		}
	}
	return "", &UnknownTypeError{Label: label}
}

// TypeSet is a set of recognized types.
type TypeSet map[Type]struct{}

// NewTypeSet creates a set holding the supplied types.
func NewTypeSet(types ...Type) TypeSet {
	ret := make(TypeSet, len(types))
	for _, t := range types {
		ret[t] = struct{}{}
	}
	return ret
}

// ParseTypes parses a comma separated list of labels. Labels are matched
// verbatim; the first unknown (or empty) label is reported as
// *UnknownTypeError.
func ParseTypes(csv string) (TypeSet, error) {
	labels := strings.Split(csv, ",")
	ret := make(TypeSet, len(labels))
	for _, label := range labels {
		t, err := ParseType(label)
		if err != nil {
			return nil, err
		}
		ret[t] = struct{}{}
	}
	return ret, nil
}

// Has reports whether label names a type in the set.
func (s TypeSet) Has(label string) bool {
	_, ok := s[Type(label)]
	return ok
}

// Labels returns set members in vocabulary order.
func (s TypeSet) Labels() []string {
	ret := make([]string, 0, len(s))
	for _, t := range Types {
		if _, ok := s[t]; ok {
			ret = append(ret, string(t))
		}
	}
	return ret
}
