package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/client"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/view"
	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

// Variables to hold flag values
var (
	devCategory    int
	devType        int
	devSubcategory int
	devOffice      int
	devStatus      string
	devSearch      string
	devPage        int

	devID          int
	devName        string
	devDescription string
)

// Parent Command
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Manage devices",
	Long:  `List, inspect, create, update and delete devices.`,
}

var devicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List devices with filters and pagination",
	Example: `  smch-cli devices list --category 2 --status available
  smch-cli devices list --search printer --page 2`,
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()
		ctx := context.Background()

		// Type and subcategory only exist under a category.
		if devCategory == 0 && (devType != 0 || devSubcategory != 0) {
			fmt.Println(&client.ValidationError{Field: "category"})
			return
		}

		sel := view.Selection{
			OfficeID: devOffice,
			Status:   devStatus,
			Search:   devSearch,
		}
		sel.SetCategory(devCategory)
		sel.TypeID = devType
		sel.SubcategoryID = devSubcategory

		// Dependent option lists are only fetched once a category is
		// selected; a category change already cleared the old ones.
		// They back the --type/--subcategory validation and the name
		// columns below.
		if sel.CategoryID != 0 {
			types, err := api.ListTypes(ctx, sel.CategoryID)
			if err != nil {
				fail("fetching device types", err)
			}
			subs, err := api.ListSubcategories(ctx, sel.CategoryID)
			if err != nil {
				fail("fetching device subcategories", err)
			}
			sel.Types = types
			sel.Subcategories = subs

			if err := sel.ValidateDependents(); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}

		catID, typeID, subID, officeID, status := sel.ServerFilter()
		items, err := api.ListDevices(ctx, client.DeviceFilter{
			CategoryID:    catID,
			TypeID:        typeID,
			SubcategoryID: subID,
			OfficeID:      officeID,
			Status:        status,
		})
		if err != nil {
			fail("fetching devices", err)
		}

		// Re-apply the filters locally (search is client-only) and page.
		filtered := view.FilterDevices(items, sel)

		pager := view.NewPager(view.DevicePageSize)
		pager.SetCount(len(filtered))
		pager.SetPage(devPage)
		pageItems, totalPages := view.Paginate(filtered, pager.Current(), pager.PageSize())

		// --- JSON OUTPUT ---
		if jsonOutput {
			printJSON(map[string]any{
				"devices":     pageItems,
				"page":        pager.Current(),
				"total_pages": totalPages,
			})
			return
		}
		// -------------------

		if len(filtered) == 0 {
			fmt.Println("No devices found.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSTATUS\tTYPE\tSUBCATEGORY\tOFFICE")
		fmt.Fprintln(w, "--\t----\t------\t----\t-----------\t------")
		for _, d := range pageItems {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n",
				d.ID, d.Name, d.Status,
				sel.TypeName(d.TypeID), sel.SubcategoryName(d.SubcategoryID),
				d.OfficeID)
		}
		w.Flush()
		fmt.Printf("Page %d of %d (%d devices)\n", pager.Current(), totalPages, len(filtered))
	},
}

var devicesGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show one device",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()

		d, err := api.GetDevice(context.Background(), devID)
		if err != nil {
			fail("fetching device", err)
		}
		if jsonOutput {
			printJSON(d)
			return
		}
		fmt.Printf("Device #%d: %s\n", d.ID, d.Name)
		fmt.Printf("  Status:   %s\n", d.Status)
		fmt.Printf("  Category: %d  Type: %d  Subcategory: %d\n", d.CategoryID, d.TypeID, d.SubcategoryID)
		fmt.Printf("  Office:   %d\n", d.OfficeID)
		if d.Description != "" {
			fmt.Printf("  Notes:    %s\n", d.Description)
		}
	},
}

var devicesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a device",
	Run: func(cmd *cobra.Command, args []string) {
		if devName == "" {
			fmt.Println(&client.ValidationError{Field: "name"})
			return
		}
		api, _ := requireSession()

		d, err := api.CreateDevice(context.Background(), models.DevicePayload{
			Name:          devName,
			Description:   devDescription,
			Status:        devStatus,
			CategoryID:    devCategory,
			TypeID:        devType,
			SubcategoryID: devSubcategory,
			OfficeID:      devOffice,
		})
		if err != nil {
			fail("creating device", err)
		}
		fmt.Printf("Device #%d created.\n", d.ID)
	},
}

var devicesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a device",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()

		d, err := api.UpdateDevice(context.Background(), devID, models.DevicePayload{
			Name:          devName,
			Description:   devDescription,
			Status:        devStatus,
			CategoryID:    devCategory,
			TypeID:        devType,
			SubcategoryID: devSubcategory,
			OfficeID:      devOffice,
		})
		if err != nil {
			fail("updating device", err)
		}
		fmt.Printf("Device #%d updated.\n", d.ID)
	},
}

var devicesDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a device",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()

		if err := api.DeleteDevice(context.Background(), devID); err != nil {
			fail("deleting device", err)
		}
		fmt.Println("Device deleted.")
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)

	devicesCmd.AddCommand(devicesListCmd)
	devicesListCmd.Flags().IntVar(&devCategory, "category", 0, "Filter by category ID")
	devicesListCmd.Flags().IntVar(&devType, "type", 0, "Filter by type ID (requires --category)")
	devicesListCmd.Flags().IntVar(&devSubcategory, "subcategory", 0, "Filter by subcategory ID (requires --category)")
	devicesListCmd.Flags().IntVar(&devOffice, "office", 0, "Filter by office ID")
	devicesListCmd.Flags().StringVar(&devStatus, "status", "", "Filter by status")
	devicesListCmd.Flags().StringVar(&devSearch, "search", "", "Case-insensitive substring search (applied locally)")
	devicesListCmd.Flags().IntVar(&devPage, "page", 1, "Page number")

	devicesCmd.AddCommand(devicesGetCmd)
	devicesGetCmd.Flags().IntVar(&devID, "id", 0, "Device ID")
	_ = devicesGetCmd.MarkFlagRequired("id")

	devicesCmd.AddCommand(devicesCreateCmd)
	devicesCreateCmd.Flags().StringVar(&devName, "name", "", "Device name")
	devicesCreateCmd.Flags().StringVar(&devDescription, "description", "", "Description")
	devicesCreateCmd.Flags().StringVar(&devStatus, "status", "", "Initial status")
	devicesCreateCmd.Flags().IntVar(&devCategory, "category", 0, "Category ID")
	devicesCreateCmd.Flags().IntVar(&devType, "type", 0, "Type ID")
	devicesCreateCmd.Flags().IntVar(&devSubcategory, "subcategory", 0, "Subcategory ID")
	devicesCreateCmd.Flags().IntVar(&devOffice, "office", 0, "Office ID")
	_ = devicesCreateCmd.MarkFlagRequired("name")

	devicesCmd.AddCommand(devicesUpdateCmd)
	devicesUpdateCmd.Flags().IntVar(&devID, "id", 0, "Device ID")
	devicesUpdateCmd.Flags().StringVar(&devName, "name", "", "Device name")
	devicesUpdateCmd.Flags().StringVar(&devDescription, "description", "", "Description")
	devicesUpdateCmd.Flags().StringVar(&devStatus, "status", "", "Status")
	devicesUpdateCmd.Flags().IntVar(&devCategory, "category", 0, "Category ID")
	devicesUpdateCmd.Flags().IntVar(&devType, "type", 0, "Type ID")
	devicesUpdateCmd.Flags().IntVar(&devSubcategory, "subcategory", 0, "Subcategory ID")
	devicesUpdateCmd.Flags().IntVar(&devOffice, "office", 0, "Office ID")
	_ = devicesUpdateCmd.MarkFlagRequired("id")

	devicesCmd.AddCommand(devicesDeleteCmd)
	devicesDeleteCmd.Flags().IntVar(&devID, "id", 0, "Device ID")
	_ = devicesDeleteCmd.MarkFlagRequired("id")
}
