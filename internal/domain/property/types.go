package property

import "errors"

var (
	ErrInvalidPurpose = errors.New("invalid property purpose")
	ErrInvalidType    = errors.New("invalid property type")
	ErrInvalidStatus  = errors.New("invalid property status")
)

// Purpose decides which marketplace flow a listing belongs to. Only stays are bookable.
type Purpose string

const (
	PurposeSale Purpose = "sale"
	PurposeRent Purpose = "rent"
	PurposeStay Purpose = "stay"
)

func (p Purpose) String() string { return string(p) }

func (p Purpose) IsValid() bool {
	switch p {
	case PurposeSale, PurposeRent, PurposeStay:
		return true
	default:
		return false
	}
}

func (p Purpose) IsBookable() bool { return p == PurposeStay }

func NewPurpose(s string) (Purpose, error) {
	p := Purpose(s)
	if !p.IsValid() {
		return "", ErrInvalidPurpose
	}
	return p, nil
}

type Type string

const (
	TypeApartment  Type = "apartment"
	TypeHouse      Type = "house"
	TypeVilla      Type = "villa"
	TypeCommercial Type = "commercial"
	TypeLand       Type = "land"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case TypeApartment, TypeHouse, TypeVilla, TypeCommercial, TypeLand:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
