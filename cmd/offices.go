package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/client"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/router"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/view"
	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

var (
	officeID       int
	officeName     string
	officeLocation string
	officePage     int
	officePublic   bool
)

var officesCmd = &cobra.Command{
	Use:   "offices",
	Short: "Manage offices",
	Long:  `List, inspect, create, update and delete offices.`,
}

var officesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List offices",
	Run: func(cmd *cobra.Command, args []string) {
		// The office list is public; --public skips the login gate so
		// the registration flow can browse it.
		var api *client.Client
		if officePublic {
			api = publicClient()
		} else {
			api, _ = requireSession()
		}

		offices, err := api.ListOffices(context.Background())
		if err != nil {
			fail("fetching offices", err)
		}

		pageItems, totalPages := view.Paginate(offices, officePage, view.ReportPageSize)

		if jsonOutput {
			printJSON(map[string]any{
				"offices":     pageItems,
				"total_pages": totalPages,
			})
			return
		}
		if len(offices) == 0 {
			fmt.Println("No offices found.")
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tLOCATION")
		fmt.Fprintln(w, "--\t----\t--------")
		for _, o := range pageItems {
			fmt.Fprintf(w, "%d\t%s\t%s\n", o.ID, o.Name, o.Location)
		}
		w.Flush()
	},
}

var officesGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show one office",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()

		o, err := api.GetOffice(context.Background(), officeID)
		if err != nil {
			fail("fetching office", err)
		}
		if jsonOutput {
			printJSON(o)
			return
		}
		fmt.Printf("Office #%d: %s\n", o.ID, o.Name)
		if o.Location != "" {
			fmt.Printf("  Location: %s\n", o.Location)
		}
	},
}

var officesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an office (admin only)",
	Run: func(cmd *cobra.Command, args []string) {
		if officeName == "" {
			fmt.Println(&client.ValidationError{Field: "name"})
			return
		}
		api, sess := requireSession()
		if !router.CapabilitiesFor(sess.Role).ManageOffices {
			fmt.Println("Error: Your role cannot manage offices.")
			return
		}

		o, err := api.CreateOffice(context.Background(), models.OfficePayload{
			Name:     officeName,
			Location: officeLocation,
		})
		if err != nil {
			fail("creating office", err)
		}
		fmt.Printf("Office #%d created.\n", o.ID)
	},
}

var officesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an office (admin only)",
	Run: func(cmd *cobra.Command, args []string) {
		api, sess := requireSession()
		if !router.CapabilitiesFor(sess.Role).ManageOffices {
			fmt.Println("Error: Your role cannot manage offices.")
			return
		}

		o, err := api.UpdateOffice(context.Background(), officeID, models.OfficePayload{
			Name:     officeName,
			Location: officeLocation,
		})
		if err != nil {
			fail("updating office", err)
		}
		fmt.Printf("Office #%d updated.\n", o.ID)
	},
}

var officesDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an office (admin only)",
	Run: func(cmd *cobra.Command, args []string) {
		api, sess := requireSession()
		if !router.CapabilitiesFor(sess.Role).ManageOffices {
			fmt.Println("Error: Your role cannot manage offices.")
			return
		}

		if err := api.DeleteOffice(context.Background(), officeID); err != nil {
			fail("deleting office", err)
		}
		fmt.Println("Office deleted.")
	},
}

func init() {
	rootCmd.AddCommand(officesCmd)

	officesCmd.AddCommand(officesListCmd)
	officesListCmd.Flags().IntVar(&officePage, "page", 1, "Page number")
	officesListCmd.Flags().BoolVar(&officePublic, "public", false, "Use the public endpoint (no login required)")

	officesCmd.AddCommand(officesGetCmd)
	officesGetCmd.Flags().IntVar(&officeID, "id", 0, "Office ID")
	_ = officesGetCmd.MarkFlagRequired("id")

	officesCmd.AddCommand(officesCreateCmd)
	officesCreateCmd.Flags().StringVar(&officeName, "name", "", "Office name")
	officesCreateCmd.Flags().StringVar(&officeLocation, "location", "", "Office location")
	_ = officesCreateCmd.MarkFlagRequired("name")

	officesCmd.AddCommand(officesUpdateCmd)
	officesUpdateCmd.Flags().IntVar(&officeID, "id", 0, "Office ID")
	officesUpdateCmd.Flags().StringVar(&officeName, "name", "", "Office name")
	officesUpdateCmd.Flags().StringVar(&officeLocation, "location", "", "Office location")
	_ = officesUpdateCmd.MarkFlagRequired("id")

	officesCmd.AddCommand(officesDeleteCmd)
	officesDeleteCmd.Flags().IntVar(&officeID, "id", 0, "Office ID")
	_ = officesDeleteCmd.MarkFlagRequired("id")
}
