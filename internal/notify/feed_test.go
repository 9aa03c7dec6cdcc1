package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/client"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/view"
	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

func str(s string) *string { return &s }

func TestUnreadCountsFullSet(t *testing.T) {
	feed := NewFeed()

	var items []models.Notification
	for i := 0; i < 40; i++ {
		n := models.Notification{ID: models.FlexID(fmt.Sprintf("n%d", i)), Message: "m"}
		if i%2 == 0 {
			n.ReadAt = str("2025-01-01T00:00:00Z")
		}
		items = append(items, n)
	}
	feed.Replace(items)

	// Display is trimmed to the bounded prefix...
	if got := len(feed.Display()); got != DisplayLimit {
		t.Fatalf("display should trim to %d, got %d", DisplayLimit, got)
	}
	// ...but the unread counter covers the full set.
	if got := feed.Unread(); got != 20 {
		t.Fatalf("unread should count all 20, got %d", got)
	}
	if feed.Len() != 40 {
		t.Fatalf("full set should stay in memory")
	}
}

func TestPrependIncrementsUnread(t *testing.T) {
	feed := NewFeed()
	feed.Replace([]models.Notification{{ID: "a", ReadAt: str("x")}})

	feed.Prepend(models.Notification{ID: "b", Message: "new event"})
	if feed.Unread() != 1 {
		t.Fatalf("prepended event should be unread")
	}
	if got := feed.Display(); got[0].ID != "b" {
		t.Fatalf("new event must be at the head, got %+v", got[0])
	}
}

func TestMarkAllReadRefetches(t *testing.T) {
	var mu sync.Mutex
	marked := false

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/notifications/mark-all-read":
			marked = true
			w.Write([]byte(`{"message":"ok"}`))
		case r.URL.Path == "/notifications":
			readAt := `null`
			if marked {
				readAt = `"2025-06-01T10:00:00Z"`
			}
			fmt.Fprintf(w, `{"data":[{"id":"n1","message":"hi","created_at":"2025-06-01T09:00:00Z","read_at":%s}]}`, readAt)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	api := client.New(srv.URL, "tok")
	feed := NewFeed()
	var guard view.Latest

	if err := Refresh(context.Background(), api, feed, &guard); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if feed.Unread() != 1 {
		t.Fatalf("expected 1 unread before mark, got %d", feed.Unread())
	}

	// The list only changes after the re-fetch resolves; MarkAllRead
	// performs both steps.
	if err := MarkAllRead(context.Background(), api, feed, &guard); err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}
	if feed.Unread() != 0 {
		t.Fatalf("expected 0 unread after mark+refetch, got %d", feed.Unread())
	}
}

func TestStaleRefreshDiscarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"old","message":"stale","read_at":null}]}`))
	}))
	defer srv.Close()

	api := client.New(srv.URL, "tok")
	feed := NewFeed()
	feed.Replace([]models.Notification{{ID: "fresh", Message: "current"}})

	var guard view.Latest
	stale := guard.Next()
	guard.Next() // a newer fetch was issued while the first was in flight

	// Replaying the stale completion by hand: Refresh would discard it.
	items, err := api.ListNotifications(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if guard.Keep(stale) {
		t.Fatalf("stale sequence must not be kept")
	}
	_ = items

	if feed.Display()[0].ID != "fresh" {
		t.Fatalf("stale response overwrote newer state")
	}
}
