package services

import (
	"fmt"
	"testing"
)

func TestEventService_RecordAndGetRecent(t *testing.T) {
	db := newTestDB(t, "eventsvc")
	svc := NewEventService(db, nil)

	id := "t1"
	svc.Record("task.created", "Task created: a", &id)
	svc.Record("task.deleted", "Task deleted", &id)
	svc.Record("product.created", "Product created: widget", nil)

	events, err := svc.GetRecent(50)
	if err != nil {
		t.Fatalf("get recent: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events: got %d, want 3", len(events))
	}
	if events[0].ResourceID != nil && *events[0].ResourceID == "" {
		t.Fatalf("resource id mangled: %+v", events[0])
	}

	limited, err := svc.GetRecent(2)
	if err != nil || len(limited) != 2 {
		t.Fatalf("limited: %v len=%d", err, len(limited))
	}
}

func TestEventService_GetRecentNewestFirst(t *testing.T) {
	db := newTestDB(t, "eventsvc_order")
	svc := NewEventService(db, nil)

	// All of these land within the same created_at second, so the ordering
	// must not depend on the timestamp alone.
	const n = 20
	for i := 0; i < n; i++ {
		svc.Record("task.created", fmt.Sprintf("msg-%d", i), nil)
	}

	events, err := svc.GetRecent(n)
	if err != nil {
		t.Fatalf("get recent: %v", err)
	}
	if len(events) != n {
		t.Fatalf("events: got %d, want %d", len(events), n)
	}
	for i, event := range events {
		want := fmt.Sprintf("msg-%d", n-1-i)
		if event.Message != want {
			t.Fatalf("position %d: got %q, want %q (not newest-first)", i, event.Message, want)
		}
	}

	// The limit keeps the newest entries, not the oldest.
	limited, err := svc.GetRecent(2)
	if err != nil || len(limited) != 2 {
		t.Fatalf("limited: %v len=%d", err, len(limited))
	}
	if limited[0].Message != "msg-19" || limited[1].Message != "msg-18" {
		t.Fatalf("limited ordering: got %q, %q", limited[0].Message, limited[1].Message)
	}
}
