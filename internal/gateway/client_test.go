package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zomujo/dial4inclusion/internal/config"
	"github.com/Zomujo/dial4inclusion/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.APIConfig{BaseURL: server.URL, TimeoutSeconds: 5}, zap.NewNop())
}

func TestListComplaintsUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/complaints", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"rows":     []map[string]any{{"id": "c1", "status": "pending"}},
				"total":    41,
				"page":     2,
				"pageSize": 10,
			},
		})
	})

	page, err := client.ListComplaints(context.Background(), "token-123", ListOptions{Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, 41, page.Total)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "c1", page.Rows[0].ID)
	assert.Equal(t, domain.StatusPending, page.Rows[0].Status)
}

func TestClientDecodesUnwrappedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.User{ID: "u1", FullName: "Ama"})
	})

	user, err := client.Profile(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "Ama", user.FullName)
}

func TestClientMapsErrorEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message":    "Cannot change unassigned complaint",
			"statusCode": 422,
		})
	})

	_, err := client.UpdateComplaintStatus(context.Background(), "token", "c1", domain.StatusResolved)

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Cannot change unassigned complaint", apiErr.Message)
}

func TestClientFallbackErrorMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := client.GetComplaint(context.Background(), "token", "c1")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed with status 502", apiErr.Message)
}

func TestSubmitComplaintReturnsCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var input SubmitInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "0241234567", input.PhoneNumber)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": "D4I-007"})
	})

	code, err := client.SubmitComplaint(context.Background(), "token", SubmitInput{
		PhoneNumber: "0241234567",
		District:    string(domain.DistrictObuasiMunicipal),
		Category:    string(domain.CategoryFundDelay),
	})

	require.NoError(t, err)
	assert.Equal(t, "D4I-007", code)
}

func TestLoginSendsIdentifierPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ama@example.com", payload["userIdentifier"])
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"user":        map[string]any{"id": "u1", "role": "admin"},
				"accessToken": "jwt-token",
			},
		})
	})

	result, err := client.Login(context.Background(), "ama@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", result.AccessToken)
	assert.Equal(t, domain.RoleAdmin, result.User.Role)
}

func TestListUsersUnwrapsRows(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "district_officer", r.URL.Query().Get("role"))
		assert.Equal(t, "obuasi_municipal", r.URL.Query().Get("district"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"rows": []map[string]any{{"id": "officer-1", "fullName": "Kofi"}},
			},
		})
	})

	district := domain.DistrictObuasiMunicipal
	users, err := client.ListUsers(context.Background(), "token", domain.RoleDistrictOfficer, &district)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "officer-1", users[0].ID)
}
