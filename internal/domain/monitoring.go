package domain

import "time"

// ComplaintStats carries the server-computed dashboard counters.
type ComplaintStats struct {
	ActiveCases      int     `json:"activeCases"`
	AvgResponseHours float64 `json:"avgResponseHours"`
	ResolutionRate   float64 `json:"resolutionRate"`
	OverdueCases     int     `json:"overdueCases"`
}

// NavigatorUpdate is one entry of the recent-activity feed.
type NavigatorUpdate struct {
	ID             string    `json:"id"`
	ComplaintID    string    `json:"complaintId"`
	ComplaintTitle string    `json:"complaintTitle"`
	NavigatorName  string    `json:"navigatorName"`
	NavigatorEmail string    `json:"navigatorEmail,omitempty"`
	OldStatus      string    `json:"oldStatus"`
	NewStatus      string    `json:"newStatus"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
