package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/router"
)

var userID int

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Browse accounts (admin only)",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Run: func(cmd *cobra.Command, args []string) {
		api, sess := requireSession()
		if !router.CapabilitiesFor(sess.Role).ViewUsers {
			fmt.Println("Error: Your role cannot view users.")
			return
		}

		users, err := api.ListUsers(context.Background())
		if err != nil {
			fail("fetching users", err)
		}
		if jsonOutput {
			printJSON(users)
			return
		}
		if len(users) == 0 {
			fmt.Println("No users found.")
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
		fmt.Fprintln(w, "--\t----\t-----\t----")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
		}
		w.Flush()
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show one user",
	Run: func(cmd *cobra.Command, args []string) {
		api, sess := requireSession()
		if !router.CapabilitiesFor(sess.Role).ViewUsers {
			fmt.Println("Error: Your role cannot view users.")
			return
		}

		u, err := api.GetUser(context.Background(), userID)
		if err != nil {
			fail("fetching user", err)
		}
		if jsonOutput {
			printJSON(u)
			return
		}
		fmt.Printf("User #%d: %s <%s> (%s)\n", u.ID, u.Name, u.Email, u.Role)
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd)

	usersCmd.AddCommand(usersGetCmd)
	usersGetCmd.Flags().IntVar(&userID, "id", 0, "User ID")
	_ = usersGetCmd.MarkFlagRequired("id")
}
