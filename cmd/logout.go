package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the current session",
	Run: func(cmd *cobra.Command, args []string) {
		sess := store.Get()
		if !sess.Authenticated() {
			fmt.Println("Already logged out.")
			return
		}

		api, _ := requireSession()
		// Best effort server-side; the local session is cleared either way.
		if err := api.Logout(context.Background()); err != nil {
			fmt.Printf("Warning: server logout failed: %v\n", err)
		}
		if err := store.Clear(); err != nil {
			fmt.Printf("Error clearing session: %v\n", err)
			return
		}
		fmt.Println("Logged out.")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
