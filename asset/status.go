package asset

// Status classifies the lifecycle state of an asset.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusPlanned  Status = "Planned"
)

// AllStatuses holds the fixed status enumeration.
var AllStatuses = []Status{
	StatusActive,
	StatusInactive,
	StatusPlanned,
}

// String cast Status to string.
func (s Status) String() string {
	return string(s)
}

// IsValid will validate whether the status is valid or not.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPlanned:
		return true
	}
	return false
}
