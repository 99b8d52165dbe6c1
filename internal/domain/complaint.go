package domain

import "time"

// ComplaintStatus enumerates workflow states for complaints.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusEscalated  ComplaintStatus = "escalated"
	StatusResolved   ComplaintStatus = "resolved"
	StatusRejected   ComplaintStatus = "rejected"
)

// Valid reports whether the status is one of the known workflow states.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusEscalated, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the status ends the workflow. Terminal records are
// never deleted client-side and stay viewable.
func (s ComplaintStatus) Terminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// Label returns the human-readable status name.
func (s ComplaintStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusEscalated:
		return "Escalated"
	case StatusResolved:
		return "Resolved"
	case StatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// District identifies the pilot district a complaint belongs to. Set at
// creation, never changed.
type District string

const (
	DistrictAblekumaCentral   District = "ablekuma_central"
	DistrictObuasiMunicipal   District = "obuasi_municipal"
	DistrictUpperDenkyiraEast District = "upper_denkyira_east"
)

// Category classifies the reported issue.
type Category string

const (
	CategoryFundDelay            Category = "disability_fund_delay"
	CategoryInaccessibleBuilding Category = "inaccessible_building"
	CategoryDiscriminationAbuse  Category = "discrimination_abuse"
	CategoryOther                Category = "other"
)

// Complaint is the central case record, mirroring the remote API wire shape.
// The assignedTo/createdBy users are denormalized for display and lazily
// backfilled; the id-valued fields are authoritative.
type Complaint struct {
	ID   string `json:"id"`
	Code string `json:"code"`

	// Subject details, present only for detailed submissions.
	FullName                  string  `json:"fullName,omitempty"`
	Age                       int     `json:"age,omitempty"`
	Gender                    string  `json:"gender,omitempty"`
	PrimaryDisabilityCategory string  `json:"primaryDisabilityCategory,omitempty"`
	OtherDisability           *string `json:"otherDisability,omitempty"`
	AssistiveDevice           string  `json:"assistiveDevice,omitempty"`
	OtherAssistiveDevice      *string `json:"otherAssistiveDevice,omitempty"`

	PhoneNumber          string `json:"phoneNumber"`
	CaregiverPhoneNumber string `json:"caregiverPhoneNumber,omitempty"`
	Language             string `json:"language,omitempty"`

	Category       Category `json:"category"`
	OtherCategory  *string  `json:"otherCategory,omitempty"`
	IssueTypes     []string `json:"issueTypes,omitempty"`
	OtherIssueType *string  `json:"otherIssueType,omitempty"`

	RequestType        string  `json:"requestType,omitempty"`
	RequestDescription string  `json:"requestDescription,omitempty"`
	OtherRequest       *string `json:"otherRequest,omitempty"`

	District    District        `json:"district"`
	Description string          `json:"description,omitempty"`
	Status      ComplaintStatus `json:"status"`

	AssignedToID *string `json:"assignedToId,omitempty"`
	AssignedTo   *User   `json:"assignedTo,omitempty"`
	CreatedByID  *string `json:"createdById,omitempty"`
	CreatedBy    *User   `json:"createdBy,omitempty"`

	ExpectedResolutionDate *time.Time `json:"expectedResolutionDate,omitempty"`
	RespondedAt            *time.Time `json:"respondedAt,omitempty"`
	EscalatedAt            *time.Time `json:"escalatedAt,omitempty"`
	EscalationReason       *string    `json:"escalationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Assigned reports whether the complaint has an assignee.
func (c *Complaint) Assigned() bool {
	return c.AssignedToID != nil && *c.AssignedToID != ""
}

// AssignedToUser reports whether the complaint is assigned to the given user.
func (c *Complaint) AssignedToUser(userID string) bool {
	return c.AssignedToID != nil && *c.AssignedToID == userID
}

// CreatedByUser reports whether the complaint was logged by the given user.
func (c *Complaint) CreatedByUser(userID string) bool {
	return c.CreatedByID != nil && *c.CreatedByID == userID
}
