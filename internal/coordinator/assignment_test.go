package coordinator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zomujo/dial4inclusion/internal/domain"
	"github.com/Zomujo/dial4inclusion/internal/gateway"
	"github.com/Zomujo/dial4inclusion/internal/store"
)

type fakeSession struct {
	token string
	user  *domain.User
}

func (f *fakeSession) Token() string             { return f.token }
func (f *fakeSession) CurrentUser() *domain.User { return f.user }

type stubGateway struct {
	rows []domain.Complaint
}

func (g *stubGateway) ListComplaints(context.Context, string, gateway.ListOptions) (*gateway.ComplaintPage, error) {
	return &gateway.ComplaintPage{Rows: g.rows, Total: len(g.rows), Page: 1, PageSize: 10}, nil
}

func (g *stubGateway) GetComplaint(context.Context, string, string) (*domain.Complaint, error) {
	return nil, errors.New("unused")
}

func (g *stubGateway) SubmitComplaint(context.Context, string, gateway.SubmitInput) (string, error) {
	return "", errors.New("unused")
}

func (g *stubGateway) UpdateComplaintStatus(context.Context, string, string, domain.ComplaintStatus) (*domain.Complaint, error) {
	return nil, errors.New("unused")
}

type fakeAssignAPI struct {
	officers    []domain.User
	listErr     error
	assignFn    func(ctx context.Context, token, id string, input gateway.AssignInput) (*domain.Complaint, error)
	assignCalls int
}

func (f *fakeAssignAPI) ListUsers(context.Context, string, domain.Role, *domain.District) ([]domain.User, error) {
	return f.officers, f.listErr
}

func (f *fakeAssignAPI) AssignComplaint(ctx context.Context, token, id string, input gateway.AssignInput) (*domain.Complaint, error) {
	f.assignCalls++
	if f.assignFn != nil {
		return f.assignFn(ctx, token, id, input)
	}
	return nil, errors.New("unexpected assign")
}

func strPtr(s string) *string { return &s }

func obuasiOfficer(id, name string) domain.User {
	district := domain.DistrictObuasiMunicipal
	return domain.User{ID: id, FullName: name, Role: domain.RoleDistrictOfficer, District: &district}
}

func newCaseStore(t *testing.T, sess *fakeSession, rows []domain.Complaint) *store.Store {
	t.Helper()
	s := store.New(store.Dependencies{
		Gateway: &stubGateway{rows: rows},
		Session: sess,
		Users:   store.NewUserCache(nil, nil, 0, zap.NewNop()),
		Logger:  zap.NewNop(),
	})
	require.NoError(t, s.Refresh(context.Background(), nil))
	return s
}

func pendingCase(id string) domain.Complaint {
	return domain.Complaint{ID: id, Status: domain.StatusPending, District: domain.DistrictObuasiMunicipal}
}

func TestAssignmentSubmitRequiresSession(t *testing.T) {
	sess := &fakeSession{user: &domain.User{ID: "admin-1", Role: domain.RoleAdmin}}
	api := &fakeAssignAPI{}
	cases := store.New(store.Dependencies{Gateway: &stubGateway{}, Session: sess, Logger: zap.NewNop()})
	a := NewAssignment(api, sess, cases, nil, zap.NewNop())

	err := a.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Session expired. Please sign in again.", a.State().LastError)
	assert.Zero(t, api.assignCalls)
}

func TestAssignmentSubmitRequiresActiveComplaint(t *testing.T) {
	sess := &fakeSession{token: "token", user: &domain.User{ID: "admin-1", Role: domain.RoleAdmin}}
	api := &fakeAssignAPI{}
	cases := newCaseStore(t, sess, nil)
	a := NewAssignment(api, sess, cases, nil, zap.NewNop())

	err := a.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, "No active complaint selected.", a.State().LastError)
	assert.Zero(t, api.assignCalls)
}

func TestAssignmentSubmitRequiresAssignee(t *testing.T) {
	sess := &fakeSession{token: "token", user: &domain.User{ID: "admin-1", Role: domain.RoleAdmin}}
	api := &fakeAssignAPI{}
	cases := newCaseStore(t, sess, []domain.Complaint{pendingCase("c1")})
	a := NewAssignment(api, sess, cases, nil, zap.NewNop())

	err := a.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Please select a district officer.", a.State().LastError)
	assert.Zero(t, api.assignCalls)
}

func TestAssignmentSubmitRejectsOfficerOutsideDistrict(t *testing.T) {
	sess := &fakeSession{token: "token", user: &domain.User{ID: "admin-1", Role: domain.RoleAdmin}}
	outside := domain.DistrictAblekumaCentral
	api := &fakeAssignAPI{officers: []domain.User{
		{ID: "officer-9", FullName: "Yaw", Role: domain.RoleDistrictOfficer, District: &outside},
	}}
	cases := newCaseStore(t, sess, []domain.Complaint{pendingCase("c1")})
	a := NewAssignment(api, sess, cases, nil, zap.NewNop())
	a.Open(context.Background())
	a.SetAssignee("officer-9")
	a.SetExpectedDate("2026-09-30")

	err := a.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Please select a district officer in Obuasi Municipal.", a.State().LastError)
	assert.Zero(t, api.assignCalls)
}

func TestAssignmentSubmitRequiresExpectedDate(t *testing.T) {
	sess := &fakeSession{token: "token", user: &domain.User{ID: "admin-1", Role: domain.RoleAdmin}}
	api := &fakeAssignAPI{officers: []domain.User{obuasiOfficer("officer-1", "Kofi Boateng")}}
	cases := newCaseStore(t, sess, []domain.Complaint{pendingCase("c1")})
	a := NewAssignment(api, sess, cases, nil, zap.NewNop())
	a.Open(context.Background())
	a.SetAssignee("officer-1")

	err := a.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Expected resolution date is required.", a.State().LastError)
	assert.Zero(t, api.assignCalls)
}

func TestAssignmentSubmitSuccessMergesAndCloses(t *testing.T) {
	sess := &fakeSession{token: "token", user: &domain.User{ID: "admin-1", Role: domain.RoleAdmin}}
	api := &fakeAssignAPI{officers: []domain.User{obuasiOfficer("officer-1", "Kofi Boateng")}}
	api.assignFn = func(_ context.Context, _, id string, input gateway.AssignInput) (*domain.Complaint, error) {
		return &domain.Complaint{
			ID:           id,
			Status:       domain.StatusInProgress,
			District:     domain.DistrictObuasiMunicipal,
			AssignedToID: strPtr(input.AssignedToID),
		}, nil
	}
	cases := newCaseStore(t, sess, []domain.Complaint{pendingCase("c1")})
	a := NewAssignment(api, sess, cases, nil, zap.NewNop())
	a.Open(context.Background())
	a.SetAssignee("officer-1")
	a.SetExpectedDate("2026-09-30")

	require.NoError(t, a.Submit(context.Background()))

	assert.Equal(t, PhaseIdle, a.State().Phase)
	snapshot := cases.Snapshot()
	require.Len(t, snapshot.Complaints, 1)
	assert.Equal(t, domain.StatusInProgress, snapshot.Complaints[0].Status)
	require.NotNil(t, snapshot.LastAction)
	assert.Equal(t, "assign", snapshot.LastAction.Type)
	assert.Equal(t, "Kofi Boateng", snapshot.LastAction.Detail)
}

func TestAssignmentSubmitFailureKeepsModalOpen(t *testing.T) {
	sess := &fakeSession{token: "token", user: &domain.User{ID: "admin-1", Role: domain.RoleAdmin}}
	api := &fakeAssignAPI{officers: []domain.User{obuasiOfficer("officer-1", "Kofi Boateng")}}
	api.assignFn = func(context.Context, string, string, gateway.AssignInput) (*domain.Complaint, error) {
		return nil, errors.New("expectedResolutionDate should not be empty")
	}
	cases := newCaseStore(t, sess, []domain.Complaint{pendingCase("c1")})
	a := NewAssignment(api, sess, cases, nil, zap.NewNop())
	a.Open(context.Background())
	a.SetAssignee("officer-1")
	a.SetExpectedDate("2026-09-30")

	err := a.Submit(context.Background())

	require.Error(t, err)
	state := a.State()
	assert.Equal(t, PhaseOpen, state.Phase)
	assert.Equal(t, "Please set an expected resolution date (it must be in the future).", state.LastError)
}

func TestAssignmentStateFiltersTargetsToActiveDistrict(t *testing.T) {
	sess := &fakeSession{token: "token", user: &domain.User{ID: "admin-1", Role: domain.RoleAdmin}}
	outside := domain.DistrictAblekumaCentral
	api := &fakeAssignAPI{officers: []domain.User{
		obuasiOfficer("officer-1", "Kofi"),
		{ID: "officer-9", FullName: "Yaw", Role: domain.RoleDistrictOfficer, District: &outside},
	}}
	cases := newCaseStore(t, sess, []domain.Complaint{pendingCase("c1")})
	a := NewAssignment(api, sess, cases, nil, zap.NewNop())
	a.Open(context.Background())

	state := a.State()

	require.Len(t, state.Targets, 1)
	assert.Equal(t, "officer-1", state.Targets[0].ID)
}

func TestAssignmentRefreshTargetsIgnoredForNavigators(t *testing.T) {
	sess := &fakeSession{token: "token", user: &domain.User{ID: "nav-1", Role: domain.RoleNavigator}}
	api := &fakeAssignAPI{officers: []domain.User{obuasiOfficer("officer-1", "Kofi")}}
	cases := store.New(store.Dependencies{Gateway: &stubGateway{}, Session: sess, Logger: zap.NewNop()})
	a := NewAssignment(api, sess, cases, nil, zap.NewNop())

	a.RefreshTargets(context.Background())

	assert.Empty(t, a.State().Targets)
}

func TestNormalizeDateAcceptsFormInputs(t *testing.T) {
	for _, raw := range []string{"2026-09-30", "2026-09-30T12:30", "2026-09-30T12:30:00Z"} {
		normalized, err := normalizeDate(raw)
		require.NoError(t, err, raw)
		assert.Contains(t, normalized, "2026-09-30")
	}

	_, err := normalizeDate("next tuesday")
	assert.Error(t, err)
}
