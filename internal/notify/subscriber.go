package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

// BroadcastChannel is the fixed channel every client listens on.
const BroadcastChannel = "notifications"

// PrivateChannel is the per-user channel name.
func PrivateChannel(userID int) string {
	return fmt.Sprintf("notifications.user.%d", userID)
}

// Subscriber mirrors real-time events into the feed. It owns the
// pub/sub connection and releases it when the context is cancelled.
type Subscriber struct {
	rdb    *redis.Client
	feed   *Feed
	log    *slog.Logger
	userID int

	// OnEvent, when set, fires after each event is applied. The CLI
	// uses it to raise the local notification line; a nil hook means
	// permission was not granted.
	OnEvent func(models.Notification)
}

func NewSubscriber(addr string, userID int, feed *Feed, log *slog.Logger) *Subscriber {
	return &Subscriber{
		rdb:    redis.NewClient(&redis.Options{Addr: addr}),
		feed:   feed,
		log:    log,
		userID: userID,
	}
}

// Run subscribes to the broadcast and private channels and pumps events
// into the feed until ctx is cancelled. The connection is closed on the
// way out.
func (s *Subscriber) Run(ctx context.Context) error {
	pubsub := s.rdb.Subscribe(ctx, BroadcastChannel, PrivateChannel(s.userID))
	defer pubsub.Close()

	// Fail fast if the broker is unreachable.
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribing to notification channel: %w", err)
	}

	s.log.Info("subscribed",
		"channel", BroadcastChannel,
		"private", PrivateChannel(s.userID))

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			s.handle(msg)
		}
	}
}

func (s *Subscriber) handle(msg *redis.Message) {
	var ev models.NotificationEvent
	if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
		s.log.Warn("dropping malformed event", "channel", msg.Channel, "err", err)
		return
	}
	text := ev.Text()
	if text == "" {
		s.log.Warn("dropping empty event", "channel", msg.Channel)
		return
	}

	n := models.Notification{
		ID:        models.FlexID(uuid.NewString()),
		Message:   text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.feed.Prepend(n)
	s.log.Info("notification", "message", text, "unread", s.feed.Unread())

	if s.OnEvent != nil {
		s.OnEvent(n)
	}
}

// Close releases the underlying redis connection. Safe after Run has
// returned.
func (s *Subscriber) Close() error {
	return s.rdb.Close()
}
