package monitor

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Zomujo/dial4inclusion/internal/domain"
	"github.com/Zomujo/dial4inclusion/internal/events"
	"github.com/Zomujo/dial4inclusion/internal/store"
	apperrors "github.com/Zomujo/dial4inclusion/pkg/errorutil"
)

// API is the slice of the gateway the aggregator needs.
type API interface {
	Stats(ctx context.Context, token string, district *domain.District) (*domain.ComplaintStats, error)
	NavigatorUpdates(ctx context.Context, token string, district *domain.District, page, pageSize int) ([]domain.NavigatorUpdate, error)
	OverdueComplaints(ctx context.Context, token string) ([]domain.Complaint, error)
	ListUsers(ctx context.Context, token string, role domain.Role, district *domain.District) ([]domain.User, error)
}

// Aggregator fetches read-only summary statistics and activity feeds for the
// monitoring dashboard. The server computes all aggregates; nothing here
// mutates complaint state.
type Aggregator struct {
	api     API
	session store.Session
	logger  *zap.Logger

	mu         sync.Mutex
	stats      *domain.ComplaintStats
	overdue    []domain.Complaint
	updates    []domain.NavigatorUpdate
	navigators []domain.User
}

// New constructs the aggregator.
func New(api API, session store.Session, logger *zap.Logger) *Aggregator {
	return &Aggregator{api: api, session: session, logger: logger}
}

// SubscribeTo refreshes stats whenever an admin completes a mutation, keeping
// dashboard counters current without coupling the store to the monitor.
func (a *Aggregator) SubscribeTo(dispatcher events.Dispatcher) {
	handler := func(ctx context.Context, event events.Event) error {
		if event.Actor.Role != domain.RoleAdmin {
			return nil
		}
		if err := a.RefreshStats(ctx, nil); err != nil {
			a.logger.Warn("stats refresh after action failed", zap.Error(err))
		}
		return nil
	}
	dispatcher.Subscribe(events.EventComplaintStatusChanged, handler)
	dispatcher.Subscribe(events.EventComplaintAssigned, handler)
	dispatcher.Subscribe(events.EventComplaintEscalated, handler)
}

// RefreshStats fetches aggregate counters, optionally scoped to a district.
func (a *Aggregator) RefreshStats(ctx context.Context, district *domain.District) error {
	token := a.session.Token()
	if token == "" {
		return apperrors.NewSessionExpired()
	}
	stats, err := a.api.Stats(ctx, token, district)
	if err != nil {
		a.logger.Warn("failed to load stats", zap.Error(err))
		return err
	}
	a.mu.Lock()
	a.stats = stats
	a.mu.Unlock()
	return nil
}

// RefreshNavigatorUpdates fetches the recent-activity feed.
func (a *Aggregator) RefreshNavigatorUpdates(ctx context.Context, district *domain.District, page, pageSize int) error {
	token := a.session.Token()
	if token == "" {
		return apperrors.NewSessionExpired()
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	updates, err := a.api.NavigatorUpdates(ctx, token, district, page, pageSize)
	if err != nil {
		a.logger.Warn("failed to load navigator updates", zap.Error(err))
		return err
	}
	a.mu.Lock()
	a.updates = updates
	a.mu.Unlock()
	return nil
}

// RefreshOverdue fetches complaints past their expected resolution date.
func (a *Aggregator) RefreshOverdue(ctx context.Context) error {
	token := a.session.Token()
	if token == "" {
		return apperrors.NewSessionExpired()
	}
	overdue, err := a.api.OverdueComplaints(ctx, token)
	if err != nil {
		a.logger.Warn("failed to load overdue complaints", zap.Error(err))
		return err
	}
	a.mu.Lock()
	a.overdue = overdue
	a.mu.Unlock()
	return nil
}

// RefreshNavigators loads the navigator roster. Admin-only; other roles get a
// silent no-op, matching the dashboard behavior.
func (a *Aggregator) RefreshNavigators(ctx context.Context) error {
	token := a.session.Token()
	user := a.session.CurrentUser()
	if token == "" || user == nil || user.Role != domain.RoleAdmin {
		return nil
	}
	navigators, err := a.api.ListUsers(ctx, token, domain.RoleNavigator, nil)
	if err != nil {
		a.logger.Warn("failed to load navigators", zap.Error(err))
		return err
	}
	a.mu.Lock()
	a.navigators = navigators
	a.mu.Unlock()
	return nil
}

// Snapshot is the monitoring view-model.
type Snapshot struct {
	Stats      *domain.ComplaintStats   `json:"stats"`
	Overdue    []domain.Complaint       `json:"overdue"`
	Updates    []domain.NavigatorUpdate `json:"updates"`
	Navigators []domain.User            `json:"navigators"`
}

// Snapshot returns a copy of the last fetched values.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		Stats:      a.stats,
		Overdue:    append([]domain.Complaint{}, a.overdue...),
		Updates:    append([]domain.NavigatorUpdate{}, a.updates...),
		Navigators: append([]domain.User{}, a.navigators...),
	}
}
