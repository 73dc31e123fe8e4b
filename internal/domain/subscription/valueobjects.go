package subscription

// Status is the lifecycle state of a company subscription.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusCancelled Status = "cancelled"
)

// ValidStatuses enumerates the accepted subscription statuses.
var ValidStatuses = map[Status]bool{
	StatusActive:    true,
	StatusSuspended: true,
	StatusCancelled: true,
}

// IsValid reports whether the status is one of the known states.
func (s Status) IsValid() bool {
	return ValidStatuses[s]
}

func (s Status) String() string {
	return string(s)
}
