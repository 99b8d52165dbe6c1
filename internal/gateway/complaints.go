package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Zomujo/dial4inclusion/internal/domain"
)

// ListOptions selects a page of complaints. District is only honored
// server-side for admin tokens.
type ListOptions struct {
	Page     int
	PageSize int
	District *domain.District
}

// ComplaintPage is one server-side page of complaints.
type ComplaintPage struct {
	Rows     []domain.Complaint `json:"rows"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
}

// SubmitInput is the create-complaint payload. Optional fields are omitted
// for reduced (self-service) submissions.
type SubmitInput struct {
	FullName                  string   `json:"fullName,omitempty"`
	Age                       int      `json:"age,omitempty"`
	Gender                    string   `json:"gender,omitempty"`
	PrimaryDisabilityCategory string   `json:"primaryDisabilityCategory,omitempty"`
	OtherDisability           string   `json:"otherDisability,omitempty"`
	AssistiveDevice           string   `json:"assistiveDevice,omitempty"`
	OtherAssistiveDevice      string   `json:"otherAssistiveDevice,omitempty"`
	PhoneNumber               string   `json:"phoneNumber"`
	CaregiverPhoneNumber      string   `json:"caregiverPhoneNumber,omitempty"`
	Language                  string   `json:"language,omitempty"`
	Category                  string   `json:"category"`
	OtherCategory             string   `json:"otherCategory,omitempty"`
	IssueTypes                []string `json:"issueTypes,omitempty"`
	OtherIssueType            string   `json:"otherIssueType,omitempty"`
	RequestType               string   `json:"requestType,omitempty"`
	OtherRequest              string   `json:"otherRequest,omitempty"`
	District                  string   `json:"district"`
	Description               string   `json:"description,omitempty"`
}

// AssignInput is the assign-complaint payload.
type AssignInput struct {
	AssignedToID           string `json:"assignedToId"`
	ExpectedResolutionDate string `json:"expectedResolutionDate"`
}

// EscalateInput is the escalate-complaint payload. The endpoint forces
// status=escalated server-side; the client never sends the status.
type EscalateInput struct {
	AssignedToID     string `json:"assignedToId"`
	EscalationReason string `json:"escalationReason"`
}

type statusInput struct {
	Status domain.ComplaintStatus `json:"status"`
}

// ListComplaints fetches one page of complaints visible to the token's user.
func (c *Client) ListComplaints(ctx context.Context, token string, opts ListOptions) (*ComplaintPage, error) {
	values := url.Values{}
	if opts.Page > 0 {
		values.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(opts.PageSize))
	}
	if opts.District != nil {
		values.Set("district", string(*opts.District))
	}
	var page ComplaintPage
	if err := c.get(ctx, "/complaints"+encodeQuery(values), token, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetComplaint fetches a single complaint by id.
func (c *Client) GetComplaint(ctx context.Context, token, id string) (*domain.Complaint, error) {
	var complaint domain.Complaint
	if err := c.get(ctx, "/complaints/"+url.PathEscape(id), token, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

// SubmitComplaint creates a complaint and returns the server-assigned code.
func (c *Client) SubmitComplaint(ctx context.Context, token string, input SubmitInput) (string, error) {
	var code string
	if err := c.post(ctx, "/complaints", token, input, &code); err != nil {
		return "", err
	}
	return code, nil
}

// AssignComplaint assigns a complaint to a district officer.
func (c *Client) AssignComplaint(ctx context.Context, token, id string, input AssignInput) (*domain.Complaint, error) {
	var complaint domain.Complaint
	if err := c.put(ctx, "/complaints/"+url.PathEscape(id)+"/assign", token, input, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

// EscalateComplaint reassigns a complaint to an admin with a reason.
func (c *Client) EscalateComplaint(ctx context.Context, token, id string, input EscalateInput) (*domain.Complaint, error) {
	var complaint domain.Complaint
	if err := c.put(ctx, "/complaints/"+url.PathEscape(id)+"/escalate", token, input, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

// UpdateComplaintStatus changes a complaint's workflow status.
func (c *Client) UpdateComplaintStatus(ctx context.Context, token, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	var complaint domain.Complaint
	if err := c.put(ctx, "/complaints/"+url.PathEscape(id)+"/status", token, statusInput{Status: status}, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}
