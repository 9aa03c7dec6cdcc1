package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/router"
)

// homeCmd is the one parametrized dashboard. It branches on the role's
// capability descriptor instead of shipping per-role copies.
var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the role dashboard",
	Run: func(cmd *cobra.Command, args []string) {
		sess := store.Get()

		dest := router.Resolve(sess.Role)
		switch dest {
		case router.UnauthenticatedRedirect:
			fmt.Println("Not logged in. Please run 'smch-cli login' first.")
			return
		case router.UnknownRoleFallback:
			fmt.Printf("Unrecognized role %q. Please contact support.\n", sess.Role)
			return
		}

		fmt.Printf("Welcome back, %s (%s)\n", sess.Name, sess.Role)
		fmt.Print("Sections:")
		for _, tab := range router.Tabs(sess.Role) {
			fmt.Printf(" %s", tab)
		}
		fmt.Println()

		caps := router.CapabilitiesFor(sess.Role)
		if !caps.ViewStats {
			return
		}

		api, _ := requireSession()
		stats, err := api.GetStats(context.Background())
		if err != nil {
			fail("fetching stats", err)
		}
		if jsonOutput {
			printJSON(stats)
			return
		}
		fmt.Println()
		fmt.Printf("Devices:  %d (%d available)\n", stats.Devices, stats.AvailableDevices)
		fmt.Printf("Offices:  %d\n", stats.Offices)
		fmt.Printf("Users:    %d\n", stats.Users)
		fmt.Printf("Reports:  %d pending, %d resolved\n", stats.PendingReports, stats.ResolvedReports)
	},
}

func init() {
	rootCmd.AddCommand(homeCmd)
}
