package inquiry

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid inquiry status")
	ErrNameLength    = errors.New("name must be between 2 and 255 characters")
	ErrMessageLength = errors.New("message must be at least 10 characters")
	ErrPhoneLength   = errors.New("phone must be at most 20 characters")
)

// Status tracks how far the listing agent has followed up on an inquiry.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusConverted Status = "converted"
	StatusClosed    Status = "closed"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusConverted, StatusClosed:
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
