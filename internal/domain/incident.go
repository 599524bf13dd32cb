package domain

import "time"

// IncidentStatus enumerates lifecycle states for incidents.
type IncidentStatus string

const (
	IncidentStatusOpen       IncidentStatus = "OPEN"
	IncidentStatusInProgress IncidentStatus = "IN_PROGRESS"
	IncidentStatusClosed     IncidentStatus = "CLOSED"
	IncidentStatusWaiting    IncidentStatus = "WAITING"
)

// IncidentPriority enumerates urgency levels.
type IncidentPriority string

const (
	IncidentPriorityLow      IncidentPriority = "LOW"
	IncidentPriorityMedium   IncidentPriority = "MEDIUM"
	IncidentPriorityHigh     IncidentPriority = "HIGH"
	IncidentPriorityCritical IncidentPriority = "CRITICAL"
)

// Incident is the aggregate for trackable issue records.
// ID is a zero-padded numeric string assigned by the store.
type Incident struct {
	ID          string
	Title       string
	Description string
	AssignedTo  string
	Priority    IncidentPriority
	Status      IncidentStatus
	CreatedBy   string
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

// Resolved reports whether a resolution date has been set.
func (i *Incident) Resolved() bool {
	return i.ResolvedAt != nil
}
