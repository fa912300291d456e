package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"

	"github.com/sun-min-kim/TaskManagementAPI/internal/infrastructure/config"
)

func TestConnect_PingsAndServesSessions(t *testing.T) {
	m, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(m.Close)

	client, err := Connect(context.Background(), config.RedisConfig{Addr: m.Addr()})
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	t.Cleanup(func() {
		if cerr := client.Close(); cerr != nil {
			t.Errorf("close redis client: %v", cerr)
		}
	})

	// The connected client must be usable by the session store.
	store := NewSessionStore(client, time.Hour)
	if err := store.Put(context.Background(), "tok-1", "user-1"); err != nil {
		t.Fatalf("put through connected client failed: %v", err)
	}
	uid, err := store.Get(context.Background(), "tok-1")
	if err != nil || uid != "user-1" {
		t.Fatalf("get through connected client: uid=%q err=%v", uid, err)
	}
}

func TestConnect_FailsWhenServerDown(t *testing.T) {
	m, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	addr := m.Addr()
	m.Close()

	if _, err := Connect(context.Background(), config.RedisConfig{Addr: addr}); err == nil {
		t.Fatal("expected connect to fail against a closed server")
	}
}
