package booking

import "errors"

var (
	ErrNotBookable       = errors.New("property is not offered for stays")
	ErrInvalidRange      = errors.New("check-out must be after check-in")
	ErrPastDate          = errors.New("check-in cannot be in the past")
	ErrInvalidInstant    = errors.New("instant must carry an explicit UTC offset")
	ErrConflict          = errors.New("requested stay overlaps a confirmed booking")
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	ErrPriceOutOfRange   = errors.New("total price exceeds the supported amount")
	ErrInvalidStatus     = errors.New("invalid booking status")
)
