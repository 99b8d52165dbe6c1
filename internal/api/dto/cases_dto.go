package dto

import (
	"github.com/Zomujo/dial4inclusion/internal/domain"
	"github.com/Zomujo/dial4inclusion/internal/store"
)

// RefreshRequest overrides pagination/district for one list refresh.
type RefreshRequest struct {
	District string `json:"district,omitempty"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}

// StatusUpdateRequest payload.
type StatusUpdateRequest struct {
	Status domain.ComplaintStatus `json:"status"`
}

// StatusFilterRequest payload.
type StatusFilterRequest struct {
	Status string `json:"status"`
}

// CasesView is the derived case-list view-model.
type CasesView struct {
	Visible          []domain.Complaint `json:"visible"`
	EscalatedToMe    []domain.Complaint `json:"escalatedToMe"`
	Active           *domain.Complaint  `json:"active"`
	Loading          bool               `json:"loading"`
	LastError        string             `json:"lastError,omitempty"`
	Page             int                `json:"page"`
	PageSize         int                `json:"pageSize"`
	Total            int                `json:"total"`
	StatusFilter     string             `json:"statusFilter"`
	SelectedID       string             `json:"selectedId,omitempty"`
	StatusUpdatingID string             `json:"statusUpdatingId,omitempty"`
	Feedback         *store.Feedback    `json:"feedback,omitempty"`
	LastAction       *store.ActionNote  `json:"lastAction,omitempty"`
	SubmitStatus     string             `json:"submitStatus,omitempty"`
}

// NewCasesView maps a store snapshot onto the response shape.
func NewCasesView(snapshot store.Snapshot) CasesView {
	return CasesView{
		Visible:          snapshot.Visible,
		EscalatedToMe:    snapshot.EscalatedToMe,
		Active:           snapshot.Active,
		Loading:          snapshot.Loading,
		LastError:        snapshot.LastError,
		Page:             snapshot.Page,
		PageSize:         snapshot.PageSize,
		Total:            snapshot.Total,
		StatusFilter:     string(snapshot.StatusFilter),
		SelectedID:       snapshot.SelectedID,
		StatusUpdatingID: snapshot.StatusUpdatingID,
		Feedback:         snapshot.Feedback,
		LastAction:       snapshot.LastAction,
		SubmitStatus:     snapshot.SubmitStatus,
	}
}

// SubmitResponse returns the server-assigned complaint code.
type SubmitResponse struct {
	Code string `json:"code"`
}

// AssignRequest payload.
type AssignRequest struct {
	AssignedToID           string `json:"assignedToId"`
	ExpectedResolutionDate string `json:"expectedResolutionDate"`
}

// EscalateRequest payload.
type EscalateRequest struct {
	AssignedToID     string `json:"assignedToId"`
	EscalationReason string `json:"escalationReason"`
}

// OptionsResponse exposes the static form catalogs.
type OptionsResponse struct {
	Districts        []domain.Option `json:"districts"`
	Categories       []domain.Option `json:"categories"`
	IssueTypes       []domain.Option `json:"issueTypes"`
	AssistiveDevices []domain.Option `json:"assistiveDevices"`
	RequestTypes     []domain.Option `json:"requestTypes"`
	Statuses         []domain.Option `json:"statuses"`
	AdminStatuses    []domain.Option `json:"adminStatuses"`
}
