package types

// Status represents the lifecycle state of a stored record. This is
// orthogonal to domain-specific statuses like the invoice status.
type Status string

const (
	StatusPublished Status = "published"
	StatusDeleted   Status = "deleted"
	StatusArchived  Status = "archived"
)

func (s Status) String() string {
	return string(s)
}
