package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zomujo/dial4inclusion/internal/domain"
)

type fakeUserAPI struct {
	calls int
	users map[string]*domain.User
	err   error
}

func (f *fakeUserAPI) GetUser(_ context.Context, _, id string) (*domain.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, errors.New("not found")
}

func TestLookupCachesResolvedUser(t *testing.T) {
	api := &fakeUserAPI{users: map[string]*domain.User{
		"u1": {ID: "u1", FullName: "Ama Serwaa"},
	}}
	cache := NewUserCache(api, nil, time.Minute, zap.NewNop())

	first := cache.Lookup(context.Background(), "token", "u1")
	second := cache.Lookup(context.Background(), "token", "u1")

	require.NotNil(t, first.User)
	assert.Equal(t, "Ama Serwaa", first.User.FullName)
	require.NotNil(t, second.User)
	assert.Equal(t, 1, api.calls)
}

func TestLookupCachesFailures(t *testing.T) {
	api := &fakeUserAPI{err: errors.New("upstream down")}
	cache := NewUserCache(api, nil, time.Minute, zap.NewNop())

	first := cache.Lookup(context.Background(), "token", "u1")
	second := cache.Lookup(context.Background(), "token", "u1")

	require.Error(t, first.Err)
	require.Error(t, second.Err)
	assert.Equal(t, 1, api.calls)
}

func TestLookupRefetchesAfterTTL(t *testing.T) {
	api := &fakeUserAPI{users: map[string]*domain.User{"u1": {ID: "u1"}}}
	cache := NewUserCache(api, nil, 10*time.Millisecond, zap.NewNop())

	cache.Lookup(context.Background(), "token", "u1")
	time.Sleep(20 * time.Millisecond)
	cache.Lookup(context.Background(), "token", "u1")

	assert.Equal(t, 2, api.calls)
}

func TestLoadingClearsAfterLookup(t *testing.T) {
	api := &fakeUserAPI{users: map[string]*domain.User{"u1": {ID: "u1"}}}
	cache := NewUserCache(api, nil, time.Minute, zap.NewNop())

	cache.Lookup(context.Background(), "token", "u1")

	assert.False(t, cache.Loading("u1"))
}
