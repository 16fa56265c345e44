package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events by their primary purpose.
// Consumers route categories to different retention policies.
type EventCategory string

const (
	// CategoryCompliance covers events that change a user's financial standing
	// or close a dispute. These require long retention.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers read-only or advisory activity useful for
	// operational visibility. These can be sampled or aggregated.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so sinks can fan out. Identifiers of people are carried
// only as keyed hashes.
type Event struct {
	Category  EventCategory     `json:"category"`
	Timestamp time.Time         `json:"timestamp"`
	Action    string            `json:"action"`
	ReportID  string            `json:"report_id,omitempty"`
	Subject   string            `json:"subject,omitempty"`
	Actor     string            `json:"actor,omitempty"`
	Decision  string            `json:"decision,omitempty"`
	Reason    string            `json:"reason,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

type AuditEvent string

const (
	EventDisputeFiled         AuditEvent = "dispute_filed"
	EventDisputeResolved      AuditEvent = "dispute_resolved"
	EventDisputeDeleted       AuditEvent = "dispute_deleted"
	EventCorroborationChecked AuditEvent = "corroboration_checked"
)

// eventCategories maps each audit event to its category.
var eventCategories = map[AuditEvent]EventCategory{
	EventDisputeResolved: CategoryCompliance,
	EventDisputeDeleted:  CategoryCompliance,

	EventDisputeFiled:         CategoryOperations,
	EventCorroborationChecked: CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists or forwards audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}
