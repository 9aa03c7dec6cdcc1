// Package notify mirrors the server's notification list in memory and
// keeps it current from the real-time channel.
package notify

import (
	"context"
	"sync"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/client"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/view"
	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

// DisplayLimit bounds how many entries the list command prints. The
// unread counter is computed over the full in-memory set.
const DisplayLimit = 30

// Feed is the shared in-memory notification list behind the list
// command and the watch stream.
type Feed struct {
	mu    sync.Mutex
	items []models.Notification
}

func NewFeed() *Feed { return &Feed{} }

// Replace swaps in a freshly fetched list wholesale.
func (f *Feed) Replace(items []models.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]models.Notification(nil), items...)
}

// Prepend inserts a just-received notification at the head.
func (f *Feed) Prepend(n models.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]models.Notification{n}, f.items...)
}

// Unread counts entries with no read_at over the full set.
func (f *Feed) Unread() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, it := range f.items {
		if it.ReadAt == nil {
			n++
		}
	}
	return n
}

// Display returns the bounded prefix the list command prints.
func (f *Feed) Display() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	limit := len(f.items)
	if limit > DisplayLimit {
		limit = DisplayLimit
	}
	return append([]models.Notification(nil), f.items[:limit]...)
}

// Len returns the full in-memory count.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

// Refresh re-fetches the list and applies it unless a newer refresh was
// issued while this one was in flight.
func Refresh(ctx context.Context, api *client.Client, feed *Feed, guard *view.Latest) error {
	seq := guard.Next()
	items, err := api.ListNotifications(ctx)
	if err != nil {
		return err
	}
	if !guard.Keep(seq) {
		return nil
	}
	feed.Replace(items)
	return nil
}

// MarkAllRead asks the server to stamp everything read, then
// re-fetches. The feed only changes after the re-fetch resolves; there
// is no optimistic update.
func MarkAllRead(ctx context.Context, api *client.Client, feed *Feed, guard *view.Latest) error {
	if err := api.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}
	return Refresh(ctx, api, feed, guard)
}
