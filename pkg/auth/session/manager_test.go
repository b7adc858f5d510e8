package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/royalstarlog/freightdesk-backend/pkg/config"
	redisclient "github.com/royalstarlog/freightdesk-backend/pkg/redis"
)

type mockStore struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprint(value)
	return nil
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return "", redisclient.ErrNotFound
	}
	return val, nil
}

func (m *mockStore) Del(ctx context.Context, keys ...string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockStore) SessionKey(accessID string) string {
	return fmt.Sprintf("sess:%s", accessID)
}

func newTestManager(store *mockStore) *Manager {
	return &Manager{
		store: store,
		keyer: store,
		ttl:   time.Hour,
	}
}

func TestStartAndHasSession(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)
	ctx := context.Background()

	if err := manager.Start(ctx, "access-123", "ops@freightdesk.test"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if stored := store.data[store.SessionKey("access-123")]; stored != "ops@freightdesk.test" {
		t.Fatalf("expected email stored, got %q", stored)
	}

	live, err := manager.HasSession(ctx, "access-123")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !live {
		t.Fatal("expected live session")
	}

	live, err = manager.HasSession(ctx, "unknown")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if live {
		t.Fatal("expected no session for unknown access id")
	}
}

func TestStartRequiresAccessID(t *testing.T) {
	manager := newTestManager(newMockStore())
	if err := manager.Start(context.Background(), "  ", "ops@freightdesk.test"); err == nil {
		t.Fatal("expected error for blank access id")
	}
}

func TestHasSessionBlankAccessID(t *testing.T) {
	manager := newTestManager(newMockStore())
	live, err := manager.HasSession(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if live {
		t.Fatal("blank access id must not map to a session")
	}
}

func TestHasSessionPropagatesStoreErrors(t *testing.T) {
	store := newMockStore()
	store.err = fmt.Errorf("redis down")
	manager := newTestManager(store)

	if _, err := manager.HasSession(context.Background(), "access-123"); err == nil {
		t.Fatal("expected store error to propagate")
	}
}

func TestRevoke(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)
	ctx := context.Background()

	if err := manager.Start(ctx, "access-123", "ops@freightdesk.test"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := manager.Revoke(ctx, "access-123"); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	live, err := manager.HasSession(ctx, "access-123")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if live {
		t.Fatal("expected session revoked")
	}

	if err := manager.Revoke(ctx, "never-existed"); err != nil {
		t.Fatalf("revoking unknown session should be a no-op, got %v", err)
	}
}

func TestNewManagerValidation(t *testing.T) {
	if _, err := NewManager(nil, config.JWTConfig{SessionTTLMinutes: 60}); err == nil {
		t.Fatal("expected error for nil client")
	}
	if _, err := NewManager(&redisclient.Client{}, config.JWTConfig{}); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}
