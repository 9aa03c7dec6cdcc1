package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/config"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/notify"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/view"
	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

var notificationID string

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Read and follow notifications",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the notification feed and unread count",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()

		feed := notify.NewFeed()
		var guard view.Latest
		if err := notify.Refresh(context.Background(), api, feed, &guard); err != nil {
			fail("fetching notifications", err)
		}

		if jsonOutput {
			printJSON(map[string]any{
				"notifications": feed.Display(),
				"unread":        feed.Unread(),
			})
			return
		}
		items := feed.Display()
		if len(items) == 0 {
			fmt.Println("No notifications.")
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "\tWHEN\tMESSAGE")
		fmt.Fprintln(w, "\t----\t-------")
		for _, n := range items {
			marker := " "
			if n.ReadAt == nil {
				marker = "*"
			}
			when := n.CreatedAt
			if t, err := time.Parse(time.RFC3339, n.CreatedAt); err == nil {
				when = t.Local().Format("2006-01-02 15:04")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", marker, when, n.Message)
		}
		w.Flush()
		fmt.Printf("%d unread (%d total)\n", feed.Unread(), feed.Len())
	},
}

var notificationsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream real-time notifications until interrupted",
	Run: func(cmd *cobra.Command, args []string) {
		api, sess := requireSession()

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		feed := notify.NewFeed()
		var guard view.Latest

		// Seed the feed so the unread counter starts from server truth.
		if err := notify.Refresh(context.Background(), api, feed, &guard); err != nil {
			fail("fetching notifications", err)
		}
		fmt.Printf("%d unread. Watching for new notifications (Ctrl-C to stop)...\n", feed.Unread())

		sub := notify.NewSubscriber(config.RedisAddr(), sess.UserID, feed, logger)
		defer sub.Close()

		// The local push line only fires when the preference allows it.
		if viper.GetBool("notifications_enabled") || !viper.IsSet("notifications_enabled") {
			sub.OnEvent = func(n models.Notification) {
				fmt.Printf("[%s] %s\n", time.Now().Format("15:04:05"), n.Message)
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := sub.Run(ctx); err != nil && ctx.Err() == nil {
			fmt.Printf("Error watching notifications: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nStopped. %d unread.\n", feed.Unread())
	},
}

var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification read",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()

		feed := notify.NewFeed()
		var guard view.Latest
		if err := notify.MarkAllRead(context.Background(), api, feed, &guard); err != nil {
			fail("marking notifications read", err)
		}
		fmt.Printf("All read. %d unread remain.\n", feed.Unread())
	},
}

var notificationsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all notifications",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()

		if err := api.ClearNotifications(context.Background()); err != nil {
			fail("clearing notifications", err)
		}
		fmt.Println("Notifications cleared.")
	},
}

var notificationsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete one notification",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()

		if err := api.DeleteNotification(context.Background(), notificationID); err != nil {
			fail("deleting notification", err)
		}
		fmt.Println("Notification deleted.")
	},
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsWatchCmd)
	notificationsCmd.AddCommand(notificationsReadAllCmd)
	notificationsCmd.AddCommand(notificationsClearCmd)

	notificationsCmd.AddCommand(notificationsDeleteCmd)
	notificationsDeleteCmd.Flags().StringVar(&notificationID, "id", "", "Notification ID")
	_ = notificationsDeleteCmd.MarkFlagRequired("id")
}
