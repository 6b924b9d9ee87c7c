package verification

import "strings"

type Status string

const (
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
	StatusFailed    Status = "failed"
)

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool {
	return s == StatusFulfilled || s == StatusFailed
}

// ParseStatus accepts the canonical vocabulary plus the aliases emitted by the
// on-chain listener: "completed" is fulfilled, "error" is failed.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, nil
	case "fulfilled", "completed":
		return StatusFulfilled, nil
	case "failed", "error":
		return StatusFailed, nil
	default:
		return "", ErrInvalidStatus
	}
}

type Type string

const (
	TypeReserve   Type = "reserve"
	TypeInventory Type = "inventory"
)

func (t Type) String() string { return string(t) }

func ParseType(raw string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(raw))) {
	case TypeReserve:
		return TypeReserve, nil
	case TypeInventory:
		return TypeInventory, nil
	default:
		return "", ErrInvalidType
	}
}
