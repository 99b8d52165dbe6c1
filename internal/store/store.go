package store

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
	apperrors "github.com/Zomujo/dial4inclusion/pkg/errorutil"
)

// Gateway is the slice of the remote API the store depends on.
type Gateway interface {
	ListComplaints(ctx context.Context, token string, opts gateway.ListOptions) (*gateway.ComplaintPage, error)
	GetComplaint(ctx context.Context, token, id string) (*domain.Complaint, error)
	SubmitComplaint(ctx context.Context, token string, input gateway.SubmitInput) (string, error)
	UpdateComplaintStatus(ctx context.Context, token, id string, status domain.ComplaintStatus) (*domain.Complaint, error)
}

// Session exposes the parts of the session holder the store reads.
type Session interface {
	Token() string
	CurrentUser() *domain.User
}

// Feedback is a user-facing outcome message scoped to the cases section.
type Feedback struct {
	Kind    string `json:"kind"` // "success" or "error"
	Message string `json:"message"`
}

// ActionNote records the last completed assign/escalate action for display.
type ActionNote struct {
	Type   string `json:"type"` // "assign" or "escalate"
	Detail string `json:"detail"`
}

// pendingUpdate tracks the single in-flight optimistic status mutation. The
// request id ties the eventual rollback to the snapshot taken at dispatch, so
// a late failure can never revert to anything but its own pre-call status.
type pendingUpdate struct {
	requestID   string
	complaintID string
	previous    domain.ComplaintStatus
}

// RefreshOverrides optionally replaces the stored pagination/district values
// for one refresh call.
type RefreshOverrides struct {
	District *domain.District
	Page     int
	PageSize int
}

// Store holds the authoritative local complaint cache and performs
// create/read/update operations against the gateway. The cache is the single
// authoritative complaint list per session: wholesale replaced by Refresh,
// patch-merged by action responses.
type Store struct {
	gateway    Gateway
	session    Session
	users      *UserCache
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu            sync.Mutex
	cache         []domain.Complaint
	loading       bool
	lastError     string
	page          int
	pageSize      int
	total         int
	statusFilter  StatusFilter
	adminDistrict *domain.District
	selectedID    string
	updatingID    string
	pending       *pendingUpdate
	feedback      *Feedback
	lastAction    *ActionNote
	submitStatus  string
	refreshSeq    uint64
}

// Dependencies bundles collaborators for the store.
type Dependencies struct {
	Gateway    Gateway
	Session    Session
	Users      *UserCache
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// New constructs the store.
func New(deps Dependencies) *Store {
	return &Store{
		gateway:      deps.Gateway,
		session:      deps.Session,
		users:        deps.Users,
		dispatcher:   deps.Dispatcher,
		logger:       deps.Logger,
		page:         1,
		pageSize:     10,
		statusFilter: FilterAll,
	}
}

// Refresh replaces the cache wholesale from the list endpoint. Responses are
// fenced by a monotonic sequence: one arriving after a newer request was
// dispatched is discarded instead of overwriting newer state.
func (s *Store) Refresh(ctx context.Context, overrides *RefreshOverrides) error {
	token := s.session.Token()
	if token == "" {
		return apperrors.NewSessionExpired()
	}
	user := s.session.CurrentUser()

	s.mu.Lock()
	if overrides != nil {
		if overrides.Page > 0 {
			s.page = overrides.Page
		}
		if overrides.PageSize > 0 {
			s.pageSize = overrides.PageSize
		}
		if overrides.District != nil {
			s.adminDistrict = overrides.District
		}
	}
	opts := gateway.ListOptions{Page: s.page, PageSize: s.pageSize}
	if user != nil && user.Role == domain.RoleAdmin && s.adminDistrict != nil {
		opts.District = s.adminDistrict
	}
	s.loading = true
	s.lastError = ""
	s.refreshSeq++
	seq := s.refreshSeq
	s.mu.Unlock()

	page, err := s.gateway.ListComplaints(ctx, token, opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.refreshSeq {
		s.logger.Debug("discarding stale complaint list response", zap.Uint64("seq", seq))
		return nil
	}
	s.loading = false
	if err != nil {
		s.lastError = err.Error()
		return err
	}
	s.cache = page.Rows
	s.total = page.Total
	if page.Page > 0 {
		s.page = page.Page
	}
	if page.PageSize > 0 {
		s.pageSize = page.PageSize
	}
	return nil
}

// Submit validates the form, builds the role-appropriate payload, creates the
// complaint, and refreshes the cache. Returns the server-assigned code; the
// caller clears the form only on success.
func (s *Store) Submit(ctx context.Context, form ComplaintForm) (string, error) {
	token := s.session.Token()
	if token == "" {
		return "", apperrors.NewSessionExpired()
	}
	if err := form.validate(); err != nil {
		return "", err
	}

	role := domain.Role("")
	if user := s.session.CurrentUser(); user != nil {
		role = user.Role
	}
	code, err := s.gateway.SubmitComplaint(ctx, token, form.payload(role))
	if err != nil {
		s.mu.Lock()
		s.submitStatus = ""
		s.lastError = err.Error()
		s.mu.Unlock()
		return "", err
	}

	if err := s.Refresh(ctx, nil); err != nil {
		s.logger.Warn("refresh after submit failed", zap.Error(err))
	}

	s.mu.Lock()
	s.submitStatus = fmt.Sprintf("Complaint submitted successfully. Code: %s", code)
	s.mu.Unlock()

	s.publish(ctx, events.Event{
		Type:    events.EventComplaintSubmitted,
		Payload: events.SubmittedPayload{Code: code, District: domain.District(form.District)},
	})
	return code, nil
}

// Select focuses a complaint, fetches its full record, and best-effort
// backfills the denormalized createdBy/assignedTo users when the session role
// permits cross-user lookups. Lookup failures are swallowed; presentation
// falls back to placeholder labels.
func (s *Store) Select(ctx context.Context, id string) error {
	s.mu.Lock()
	s.selectedID = id
	s.lastAction = nil
	s.feedback = nil
	s.mu.Unlock()

	token := s.session.Token()
	if token == "" {
		return apperrors.NewSessionExpired()
	}

	full, err := s.gateway.GetComplaint(ctx, token, id)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.mu.Unlock()
		return err
	}

	user := s.session.CurrentUser()
	canLookup := user != nil && (user.Role == domain.RoleAdmin || user.Role == domain.RoleNavigator)
	if canLookup {
		var wg sync.WaitGroup
		if full.CreatedByID != nil && *full.CreatedByID != "" && missingUser(full.CreatedBy) {
			wg.Add(1)
			go func(userID string) {
				defer wg.Done()
				if result := s.users.Lookup(ctx, token, userID); result.User != nil {
					full.CreatedBy = result.User
				}
			}(*full.CreatedByID)
		}
		if full.AssignedToID != nil && *full.AssignedToID != "" && missingUser(full.AssignedTo) {
			wg.Add(1)
			go func(userID string) {
				defer wg.Done()
				if result := s.users.Lookup(ctx, token, userID); result.User != nil {
					full.AssignedTo = result.User
				}
			}(*full.AssignedToID)
		}
		wg.Wait()
	}

	s.mu.Lock()
	s.mergeLocked(full)
	s.mu.Unlock()
	return nil
}

// UpdateStatus applies a status transition optimistically and reconciles with
// the server: the cache shows the new status immediately, the server response
// is merged on success, and on failure the entry rolls back to the exact
// pre-call status.
func (s *Store) UpdateStatus(ctx context.Context, id string, newStatus domain.ComplaintStatus) error {
	token := s.session.Token()
	user := s.session.CurrentUser()
	if token == "" {
		return s.fail(apperrors.NewSessionExpired(), "Session expired. Please sign in again.")
	}

	s.mu.Lock()
	current := s.findLocked(id)
	if current == nil {
		s.mu.Unlock()
		return s.fail(apperrors.NewStaleData("complaint missing from cache"),
			"This case is no longer available. Please refresh.")
	}
	if user != nil && user.Role == domain.RoleDistrictOfficer {
		if current.Assigned() && !current.AssignedToUser(user.ID) {
			s.mu.Unlock()
			return s.fail(apperrors.NewForbidden("complaint assigned to another officer"),
				"You can only change the status of cases assigned to you.")
		}
		if !current.Assigned() {
			s.mu.Unlock()
			return s.fail(apperrors.NewForbidden("complaint unassigned"),
				"You can't change the status until the case is assigned.")
		}
	}
	if current.Status == newStatus {
		s.mu.Unlock()
		return nil
	}
	if s.pending != nil {
		s.mu.Unlock()
		return s.fail(apperrors.NewValidationError("another status update is in progress", nil),
			"Another status update is still in progress.")
	}

	// Optimistic write: the UI reflects the change before the round-trip.
	pending := &pendingUpdate{
		requestID:   uuid.NewString(),
		complaintID: id,
		previous:    current.Status,
	}
	current.Status = newStatus
	s.pending = pending
	s.updatingID = id
	s.feedback = nil
	s.mu.Unlock()

	updated, err := s.gateway.UpdateComplaintStatus(ctx, token, id, newStatus)

	s.mu.Lock()
	defer func() {
		// Always settle: clear the in-flight marker regardless of outcome.
		if s.pending != nil && s.pending.requestID == pending.requestID {
			s.pending = nil
			s.updatingID = ""
		}
		s.mu.Unlock()
	}()

	if err != nil {
		// Roll back to the status captured at dispatch, not whatever is
		// current now.
		if s.pending != nil && s.pending.requestID == pending.requestID {
			if entry := s.findLocked(id); entry != nil {
				entry.Status = pending.previous
			}
		}
		s.feedback = &Feedback{Kind: "error", Message: apperrors.FriendlyStatusUpdateError(err)}
		return err
	}

	finalStatus := newStatus
	if updated != nil {
		if updated.Status.Valid() {
			finalStatus = updated.Status
		}
		s.mergeLocked(updated)
	}
	if entry := s.findLocked(id); entry != nil {
		entry.Status = finalStatus
	}
	s.feedback = &Feedback{Kind: "success", Message: fmt.Sprintf("Status updated to %s.", finalStatus.Label())}

	s.publish(ctx, events.Event{
		Type:        events.EventComplaintStatusChanged,
		ComplaintID: id,
		Payload:     events.StatusChangedPayload{OldStatus: pending.previous, NewStatus: finalStatus},
	})
	return nil
}

// Merge writes an authoritative server record into the cache entry, keyed by
// id. Used by coordinators after assign/escalate responses.
func (s *Store) Merge(complaint *domain.Complaint) {
	if complaint == nil {
		return
	}
	s.mu.Lock()
	s.mergeLocked(complaint)
	s.mu.Unlock()
}

// SetStatusFilter narrows the visible list.
func (s *Store) SetStatusFilter(filter StatusFilter) {
	s.mu.Lock()
	s.statusFilter = filter
	s.mu.Unlock()
}

// SetAdminDistrict stores the admin-chosen district toggle. Takes effect on
// the next Refresh (district scoping is a re-query, not a local filter).
func (s *Store) SetAdminDistrict(district *domain.District) {
	s.mu.Lock()
	s.adminDistrict = district
	s.mu.Unlock()
}

// ClearSelection drops the explicit selection along with its action note and
// feedback, returning the view to default focus.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.selectedID = ""
	s.lastAction = nil
	s.feedback = nil
	s.mu.Unlock()
}

// SetLastAction records a completed coordinator action for display.
func (s *Store) SetLastAction(note ActionNote) {
	s.mu.Lock()
	s.lastAction = &note
	s.mu.Unlock()
}

// ClearSubmitStatus drops the last submission success message.
func (s *Store) ClearSubmitStatus() {
	s.mu.Lock()
	s.submitStatus = ""
	s.mu.Unlock()
}

// UserLookupLoading reports whether a denormalization fetch for the user id
// is in flight.
func (s *Store) UserLookupLoading(id string) bool {
	return s.users.Loading(id)
}

// Snapshot is a consistent copy of store state plus the role-scoped
// derivations, handed to presentation.
type Snapshot struct {
	Complaints       []domain.Complaint
	Visible          []domain.Complaint
	EscalatedToMe    []domain.Complaint
	Active           *domain.Complaint
	Loading          bool
	LastError        string
	Page             int
	PageSize         int
	Total            int
	StatusFilter     StatusFilter
	SelectedID       string
	StatusUpdatingID string
	Feedback         *Feedback
	LastAction       *ActionNote
	SubmitStatus     string
}

// Snapshot derives the current view-model under the lock.
func (s *Store) Snapshot() Snapshot {
	user := s.session.CurrentUser()

	s.mu.Lock()
	defer s.mu.Unlock()

	cache := make([]domain.Complaint, len(s.cache))
	copy(cache, s.cache)
	visible := Visible(cache, user, s.statusFilter)

	return Snapshot{
		Complaints:       cache,
		Visible:          visible,
		EscalatedToMe:    EscalatedTo(cache, user),
		Active:           Active(cache, visible, s.selectedID),
		Loading:          s.loading,
		LastError:        s.lastError,
		Page:             s.page,
		PageSize:         s.pageSize,
		Total:            s.total,
		StatusFilter:     s.statusFilter,
		SelectedID:       s.selectedID,
		StatusUpdatingID: s.updatingID,
		Feedback:         s.feedback,
		LastAction:       s.lastAction,
		SubmitStatus:     s.submitStatus,
	}
}

// ActiveComplaint resolves the focused complaint outside a full snapshot.
func (s *Store) ActiveComplaint() *domain.Complaint {
	snapshot := s.Snapshot()
	return snapshot.Active
}

func (s *Store) findLocked(id string) *domain.Complaint {
	for i := range s.cache {
		if s.cache[i].ID == id {
			return &s.cache[i]
		}
	}
	return nil
}

func (s *Store) mergeLocked(complaint *domain.Complaint) {
	for i := range s.cache {
		if s.cache[i].ID == complaint.ID {
			merged := *complaint
			merged.ID = s.cache[i].ID
			s.cache[i] = merged
			return
		}
	}
}

// fail records an error feedback and returns the error unchanged.
func (s *Store) fail(err error, message string) error {
	s.mu.Lock()
	s.feedback = &Feedback{Kind: "error", Message: message}
	s.mu.Unlock()
	return err
}

func (s *Store) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if user := s.session.CurrentUser(); user != nil {
		event.Actor = events.Actor{UserID: user.ID, Role: user.Role}
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func missingUser(user *domain.User) bool {
	return user == nil || user.FullName == ""
}
