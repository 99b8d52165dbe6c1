package coordinator

import (
	"context"
	"errors"
	"strings"
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

// EscalateAPI is the slice of the gateway the escalation coordinator needs.
type EscalateAPI interface {
	ListUsers(ctx context.Context, token string, role domain.Role, district *domain.District) ([]domain.User, error)
	EscalateComplaint(ctx context.Context, token, id string, input gateway.EscalateInput) (*domain.Complaint, error)
}

// Escalation drives the escalate-case flow. Targets are admins with no
// district constraint: escalation crosses districts intentionally, since a
// case may need ministry-level attention. The escalate endpoint forces
// status=escalated server-side.
type Escalation struct {
	api        EscalateAPI
	session    store.Session
	cases      *store.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu            sync.Mutex
	phase         Phase
	targetAdmin   string
	reason        string
	admins        []domain.User
	adminsLoading bool
	lastError     string
}

// NewEscalation constructs the coordinator.
func NewEscalation(api EscalateAPI, session store.Session, cases *store.Store, dispatcher events.Dispatcher, logger *zap.Logger) *Escalation {
	return &Escalation{
		api:        api,
		session:    session,
		cases:      cases,
		dispatcher: dispatcher,
		logger:     logger,
		phase:      PhaseIdle,
	}
}

// Open starts a pending escalation, fetching admins if none are cached yet.
// RefreshTargets stays available as an explicit action because the eligible
// admin set can change between sessions.
func (e *Escalation) Open(ctx context.Context) {
	e.mu.Lock()
	e.phase = PhaseOpen
	e.lastError = ""
	needFetch := len(e.admins) == 0
	e.mu.Unlock()
	if needFetch {
		e.RefreshTargets(ctx)
	}
}

// RefreshTargets reloads the eligible admin list. Fetch failures keep the
// previous list.
func (e *Escalation) RefreshTargets(ctx context.Context) {
	token := e.session.Token()
	user := e.session.CurrentUser()
	if token == "" || user == nil {
		return
	}
	if user.Role != domain.RoleAdmin && user.Role != domain.RoleDistrictOfficer {
		return
	}

	e.mu.Lock()
	e.adminsLoading = true
	e.mu.Unlock()

	admins, err := e.api.ListUsers(ctx, token, domain.RoleAdmin, nil)

	e.mu.Lock()
	e.adminsLoading = false
	if err != nil {
		e.mu.Unlock()
		e.logger.Warn("failed to load admins", zap.Error(err))
		return
	}
	if len(admins) == 0 {
		e.logger.Warn("no admins returned for escalation targets")
	}
	e.admins = admins
	e.mu.Unlock()
}

// SetTarget records the chosen admin id.
func (e *Escalation) SetTarget(id string) {
	e.mu.Lock()
	e.targetAdmin = id
	e.lastError = ""
	e.mu.Unlock()
}

// SetReason records the escalation reason.
func (e *Escalation) SetReason(reason string) {
	e.mu.Lock()
	e.reason = reason
	e.lastError = ""
	e.mu.Unlock()
}

// Submit validates the pending escalation and calls the escalate endpoint.
// Validation failures never reach the network.
func (e *Escalation) Submit(ctx context.Context) error {
	token := e.session.Token()
	if token == "" {
		return e.reject("Session expired. Please sign in again.")
	}
	active := e.cases.ActiveComplaint()
	if active == nil {
		return e.reject("No active complaint selected.")
	}

	e.mu.Lock()
	target := e.targetAdmin
	reason := strings.TrimSpace(e.reason)
	admins := append([]domain.User{}, e.admins...)
	e.mu.Unlock()

	if target == "" {
		return e.reject("Please select an admin to escalate to.")
	}
	if reason == "" {
		return e.reject("Escalation reason is required.")
	}

	e.mu.Lock()
	e.phase = PhaseSubmitting
	e.lastError = ""
	e.mu.Unlock()

	complaint, err := e.api.EscalateComplaint(ctx, token, active.ID, gateway.EscalateInput{
		AssignedToID:     target,
		EscalationReason: reason,
	})
	if err != nil {
		message := err.Error()
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			message = apiErr.Message
		}
		e.mu.Lock()
		e.phase = PhaseOpen
		e.lastError = message
		e.mu.Unlock()
		return err
	}

	e.cases.Merge(complaint)
	detail := target
	if admin := findUser(admins, target); admin != nil {
		detail = admin.DisplayName()
	}
	e.cases.SetLastAction(store.ActionNote{Type: "escalate", Detail: detail})

	e.mu.Lock()
	e.phase = PhaseIdle
	e.targetAdmin = ""
	e.reason = ""
	e.mu.Unlock()

	e.publish(ctx, events.Event{
		Type:        events.EventComplaintEscalated,
		ComplaintID: complaint.ID,
		Payload:     events.EscalatedPayload{TargetAdminID: target, Reason: reason},
	})
	return nil
}

// Close cancels the pending escalation, discarding its state.
func (e *Escalation) Close() {
	e.mu.Lock()
	e.phase = PhaseIdle
	e.targetAdmin = ""
	e.reason = ""
	e.lastError = ""
	e.mu.Unlock()
}

// State returns the current escalation state for presentation.
func (e *Escalation) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{
		Phase:          e.phase,
		Assignee:       e.targetAdmin,
		Targets:        append([]domain.User{}, e.admins...),
		TargetsLoading: e.adminsLoading,
		LastError:      e.lastError,
	}
}

func (e *Escalation) reject(message string) error {
	e.mu.Lock()
	e.lastError = message
	e.mu.Unlock()
	return apperrors.NewValidationError(message, nil)
}

func (e *Escalation) publish(ctx context.Context, event events.Event) {
	if e.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	if user := e.session.CurrentUser(); user != nil {
		event.Actor = events.Actor{UserID: user.ID, Role: user.Role}
	}
	_ = e.dispatcher.Publish(ctx, event)
}
