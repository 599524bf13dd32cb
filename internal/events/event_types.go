package events

import (
	"time"

	"github.com/incidentops/incident-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventIncidentCreated  EventType = "incident_created"
	EventIncidentModified EventType = "incident_modified"
	EventIncidentsDeleted EventType = "incidents_deleted"
)

// Actor captures who triggered the event.
type Actor struct {
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// IncidentCreatedPayload payload.
type IncidentCreatedPayload struct {
	IncidentID string                  `json:"incident_id"`
	Title      string                  `json:"title"`
	Priority   domain.IncidentPriority `json:"priority"`
}

// IncidentModifiedPayload payload.
type IncidentModifiedPayload struct {
	IncidentID string `json:"incident_id"`
	Title      string `json:"title"`
}

// IncidentsDeletedPayload payload.
type IncidentsDeletedPayload struct {
	IncidentIDs []string `json:"incident_ids"`
	Count       int      `json:"count"`
}
