package events

import (
	"time"

	"github.com/Zomujo/dial4inclusion/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintSubmitted     EventType = "complaint_submitted"
	EventComplaintStatusChanged EventType = "complaint_status_changed"
	EventComplaintAssigned      EventType = "complaint_assigned"
	EventComplaintEscalated     EventType = "complaint_escalated"
)

// Actor identifies the session user behind an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a local domain event emitted by the store and coordinators.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID string      `json:"complaint_id"`
	Actor       Actor       `json:"actor"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// StatusChangedPayload payload.
type StatusChangedPayload struct {
	OldStatus domain.ComplaintStatus `json:"old_status"`
	NewStatus domain.ComplaintStatus `json:"new_status"`
}

// AssignedPayload payload.
type AssignedPayload struct {
	AssigneeID             string     `json:"assignee_id"`
	ExpectedResolutionDate *time.Time `json:"expected_resolution_date,omitempty"`
}

// EscalatedPayload payload.
type EscalatedPayload struct {
	TargetAdminID string `json:"target_admin_id"`
	Reason        string `json:"reason"`
}

// SubmittedPayload payload.
type SubmittedPayload struct {
	Code     string          `json:"code"`
	District domain.District `json:"district"`
}
