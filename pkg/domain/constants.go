package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the category discriminator of an element.
// Content may define categories beyond the built-in ones.
type Type int

const (
	TypeVariable Type = 0
	TypeAbility  Type = 10
	TypeSpell    Type = 20
	TypeAction   Type = 30
	TypeFeat     Type = 40
	TypeItem     Type = 45
	TypeTrait    Type = 50
	TypeRace     Type = 60
	TypeFeature  Type = 70
	TypeClass    Type = 80
	TypeBase     Type = 90
)

// DefaultDescription is used when a descriptor leaves Description empty.
const DefaultDescription = "N/A"

var typeNames = map[Type]string{
	TypeVariable: "variable",
	TypeAbility:  "ability",
	TypeSpell:    "spell",
	TypeAction:   "action",
	TypeFeat:     "feat",
	TypeItem:     "item",
	TypeTrait:    "trait",
	TypeRace:     "race",
	TypeFeature:  "feature",
	TypeClass:    "class",
	TypeBase:     "base",
}

// String returns the lower-case name of a built-in type, or its number.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// Builtin reports whether t is one of the predefined categories.
func (t Type) Builtin() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType accepts a built-in type name ("spell") or a non-negative integer ("20").
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("unknown element type %q", s)
	}
	return Type(n), nil
}
