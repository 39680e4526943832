package qrcode

import "errors"

var ErrInvalidStatus = errors.New("invalid qr code status")

// Status is the lifecycle of a physical tag: generated into inventory,
// placed in a store, sold and assigned to a customer, then claimed once the
// story page is set up.
type Status string

const (
	StatusAvailable Status = "available"
	StatusInStore   Status = "in_store"
	StatusAssigned  Status = "assigned"
	StatusClaimed   Status = "claimed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusInStore, StatusAssigned, StatusClaimed:
		return true
	default:
		return false
	}
}

// Scannable reports whether a tag can still be sold at the counter.
// Assigned and claimed tags conflict with a new sale.
func (s Status) Scannable() bool {
	return s == StatusAvailable || s == StatusInStore
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
