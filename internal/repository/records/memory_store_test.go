package records

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(nopLogger{})
	ctx := context.Background()
	sessionId := uuid.New()

	type prefs struct {
		Name string `json:"name"`
	}

	found, err := store.Get(ctx, sessionId, "prefs", &prefs{})
	if err != nil || found {
		t.Fatalf("Get on empty store = %v, %v", found, err)
	}

	if err := store.Put(ctx, sessionId, "prefs", prefs{Name: "Mario"}); err != nil {
		t.Fatalf("Put error = %v", err)
	}

	var got prefs
	found, err = store.Get(ctx, sessionId, "prefs", &got)
	if err != nil || !found {
		t.Fatalf("Get = %v, %v", found, err)
	}
	if got.Name != "Mario" {
		t.Errorf("Name = %q", got.Name)
	}

	// Records are scoped per session.
	found, _ = store.Get(ctx, uuid.New(), "prefs", &got)
	if found {
		t.Error("record leaked across sessions")
	}

	if err := store.Delete(ctx, sessionId, "prefs"); err != nil {
		t.Fatalf("Delete error = %v", err)
	}
	found, _ = store.Get(ctx, sessionId, "prefs", &got)
	if found {
		t.Error("record survived delete")
	}
}

func TestMemoryStoreCorruptRecord(t *testing.T) {
	store := NewMemoryStore(nopLogger{})
	ctx := context.Background()
	sessionId := uuid.New()

	if err := store.Put(ctx, sessionId, "prefs", "just a string"); err != nil {
		t.Fatalf("Put error = %v", err)
	}

	// Shape mismatch reads as missing, never as an error.
	var out struct {
		Name string `json:"name"`
	}
	found, err := store.Get(ctx, sessionId, "prefs", &out)
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if found {
		t.Error("corrupt record should read as missing")
	}
}
