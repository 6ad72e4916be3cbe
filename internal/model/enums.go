package model

import "fmt"

// PosType classifies what kind of point of sale a location is.
type PosType string

const (
	TypeCafe           PosType = "CAFE"
	TypeVendingMachine PosType = "VENDING_MACHINE"
	TypeBakery         PosType = "BAKERY"
	TypeCafeteria      PosType = "CAFETERIA"
)

// Campus identifies the university campus a point of sale belongs to.
type Campus string

const (
	CampusAltstadt Campus = "ALTSTADT"
	CampusBergheim Campus = "BERGHEIM"
	CampusINF      Campus = "INF"
)

// Valid reports whether t is a member of the PosType enumeration.
func (t PosType) Valid() bool {
	switch t {
	case TypeCafe, TypeVendingMachine, TypeBakery, TypeCafeteria:
		return true
	}
	return false
}

// Valid reports whether c is a member of the Campus enumeration.
func (c Campus) Valid() bool {
	switch c {
	case CampusAltstadt, CampusBergheim, CampusINF:
		return true
	}
	return false
}

// ParsePosType converts a raw string into a PosType.
func ParsePosType(s string) (PosType, error) {
	t := PosType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown pos type: %q", s)
	}
	return t, nil
}

// ParseCampus converts a raw string into a Campus.
func ParseCampus(s string) (Campus, error) {
	c := Campus(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown campus: %q", s)
	}
	return c, nil
}
