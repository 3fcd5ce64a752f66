package cache

import (
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := Key([]byte(`{"incident":"x"}`))

	if _, found := c.Get(key); found {
		t.Error("Expected miss on empty cache")
	}

	if err := c.Set(key, []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get(key)
	if !found || string(val) != "value" {
		t.Errorf("Expected hit with value, got %q found=%v", val, found)
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("Expected miss after delete")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := Key([]byte("short-lived"))
	_ = c.Set(key, []byte("value"), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get(key); found {
		t.Error("Expected entry to expire")
	}
}

func TestKey_Deterministic(t *testing.T) {
	a := Key([]byte("payload"))
	b := Key([]byte("payload"))
	other := Key([]byte("different"))

	if a != b {
		t.Error("Same payload must produce the same key")
	}
	if a == other {
		t.Error("Different payloads must produce different keys")
	}
}
