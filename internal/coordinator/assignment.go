package coordinator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zomujo/dial4inclusion/internal/domain"
	"github.com/Zomujo/dial4inclusion/internal/events"
	"github.com/Zomujo/dial4inclusion/internal/gateway"
	"github.com/Zomujo/dial4inclusion/internal/store"
	apperrors "github.com/Zomujo/dial4inclusion/pkg/errorutil"
)

// Phase is the pending-action state: idle -> open -> submitting, back to open
// on error or idle on success/cancel.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseOpen       Phase = "open"
	PhaseSubmitting Phase = "submitting"
)

// AssignAPI is the slice of the gateway the assignment coordinator needs.
type AssignAPI interface {
	ListUsers(ctx context.Context, token string, role domain.Role, district *domain.District) ([]domain.User, error)
	AssignComplaint(ctx context.Context, token, id string, input gateway.AssignInput) (*domain.Complaint, error)
}

// Assignment drives the assign-case flow: fetch eligible district officers,
// validate the pending action, submit, and merge the authoritative response
// back into the store.
type Assignment struct {
	api        AssignAPI
	session    store.Session
	cases      *store.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu              sync.Mutex
	phase           Phase
	assignee        string
	expectedDate    string
	officers        []domain.User
	officersLoading bool
	lastError       string
}

// NewAssignment constructs the coordinator.
func NewAssignment(api AssignAPI, session store.Session, cases *store.Store, dispatcher events.Dispatcher, logger *zap.Logger) *Assignment {
	return &Assignment{
		api:        api,
		session:    session,
		cases:      cases,
		dispatcher: dispatcher,
		logger:     logger,
		phase:      PhaseIdle,
	}
}

// Open starts a pending assignment and fetches a fresh officer list.
func (a *Assignment) Open(ctx context.Context) {
	a.mu.Lock()
	a.phase = PhaseOpen
	a.assignee = ""
	a.lastError = ""
	a.mu.Unlock()
	a.RefreshTargets(ctx)
}

// RefreshTargets reloads eligible district officers for the active
// complaint's district. The server filters by district; a defensive re-filter
// still happens at read time. Fetch failures keep the previous list.
func (a *Assignment) RefreshTargets(ctx context.Context) {
	token := a.session.Token()
	user := a.session.CurrentUser()
	if token == "" || user == nil {
		return
	}
	if user.Role != domain.RoleAdmin && user.Role != domain.RoleDistrictOfficer {
		return
	}

	var district *domain.District
	if active := a.cases.ActiveComplaint(); active != nil && active.District != "" {
		d := active.District
		district = &d
	}

	a.mu.Lock()
	a.officersLoading = true
	a.mu.Unlock()

	officers, err := a.api.ListUsers(ctx, token, domain.RoleDistrictOfficer, district)

	a.mu.Lock()
	a.officersLoading = false
	if err != nil {
		a.mu.Unlock()
		a.logger.Warn("failed to load district officers", zap.Error(err))
		return
	}
	a.officers = officers
	a.mu.Unlock()
}

// SetAssignee records the chosen officer id.
func (a *Assignment) SetAssignee(id string) {
	a.mu.Lock()
	a.assignee = id
	a.lastError = ""
	a.mu.Unlock()
}

// SetExpectedDate records the chosen expected resolution date.
func (a *Assignment) SetExpectedDate(date string) {
	a.mu.Lock()
	a.expectedDate = date
	a.lastError = ""
	a.mu.Unlock()
}

// Submit validates the pending assignment and calls the assign endpoint. On
// success the server record is merged into the store and the modal closes; on
// failure the modal stays open with a translated error.
func (a *Assignment) Submit(ctx context.Context) error {
	token := a.session.Token()
	if token == "" {
		return a.reject("Session expired. Please sign in again.")
	}
	active := a.cases.ActiveComplaint()
	if active == nil {
		return a.reject("No active complaint selected.")
	}

	a.mu.Lock()
	assignee := a.assignee
	expectedDate := a.expectedDate
	officers := append([]domain.User{}, a.officers...)
	a.mu.Unlock()

	if assignee == "" {
		return a.reject("Please select a district officer.")
	}
	officer := findUser(officers, assignee)
	if active.District != "" && (officer == nil || !officer.InDistrict(active.District)) {
		return a.reject(fmt.Sprintf("Please select a district officer in %s.", active.District.Label()))
	}
	if expectedDate == "" {
		return a.reject("Expected resolution date is required.")
	}
	normalized, err := normalizeDate(expectedDate)
	if err != nil {
		return a.reject("Expected resolution date is invalid.")
	}

	a.mu.Lock()
	a.phase = PhaseSubmitting
	a.lastError = ""
	a.mu.Unlock()

	complaint, err := a.api.AssignComplaint(ctx, token, active.ID, gateway.AssignInput{
		AssignedToID:           assignee,
		ExpectedResolutionDate: normalized,
	})
	if err != nil {
		a.mu.Lock()
		a.phase = PhaseOpen
		a.lastError = apperrors.FriendlyAssignmentError(err)
		a.mu.Unlock()
		return err
	}

	a.cases.Merge(complaint)
	detail := assignee
	if officer != nil {
		detail = officer.DisplayName()
	}
	a.cases.SetLastAction(store.ActionNote{Type: "assign", Detail: detail})

	a.mu.Lock()
	a.phase = PhaseIdle
	a.assignee = ""
	a.expectedDate = ""
	a.mu.Unlock()

	a.publish(ctx, events.Event{
		Type:        events.EventComplaintAssigned,
		ComplaintID: complaint.ID,
		Payload:     events.AssignedPayload{AssigneeID: assignee, ExpectedResolutionDate: complaint.ExpectedResolutionDate},
	})
	return nil
}

// Close cancels the pending assignment, discarding its state.
func (a *Assignment) Close() {
	a.mu.Lock()
	a.phase = PhaseIdle
	a.assignee = ""
	a.expectedDate = ""
	a.lastError = ""
	a.mu.Unlock()
}

// State is a copy of the coordinator state for presentation.
type State struct {
	Phase          Phase         `json:"phase"`
	Assignee       string        `json:"assignee,omitempty"`
	ExpectedDate   string        `json:"expectedDate,omitempty"`
	Targets        []domain.User `json:"targets"`
	TargetsLoading bool          `json:"targetsLoading"`
	LastError      string        `json:"lastError,omitempty"`
}

// State returns the current assignment state. Targets are re-filtered to the
// active complaint's district defensively, even though the server already
// scopes the fetch.
func (a *Assignment) State() State {
	active := a.cases.ActiveComplaint()

	a.mu.Lock()
	defer a.mu.Unlock()

	eligible := a.officers
	if active != nil && active.District != "" {
		eligible = make([]domain.User, 0, len(a.officers))
		for _, officer := range a.officers {
			if officer.InDistrict(active.District) {
				eligible = append(eligible, officer)
			}
		}
	}
	return State{
		Phase:          a.phase,
		Assignee:       a.assignee,
		ExpectedDate:   a.expectedDate,
		Targets:        eligible,
		TargetsLoading: a.officersLoading,
		LastError:      a.lastError,
	}
}

func (a *Assignment) reject(message string) error {
	a.mu.Lock()
	a.lastError = message
	a.mu.Unlock()
	return apperrors.NewValidationError(message, nil)
}

func (a *Assignment) publish(ctx context.Context, event events.Event) {
	if a.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	if user := a.session.CurrentUser(); user != nil {
		event.Actor = events.Actor{UserID: user.ID, Role: user.Role}
	}
	_ = a.dispatcher.Publish(ctx, event)
}

func findUser(users []domain.User, id string) *domain.User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

// normalizeDate converts form date input to an RFC3339 UTC timestamp.
func normalizeDate(raw string) (string, error) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC().Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", raw)
}
