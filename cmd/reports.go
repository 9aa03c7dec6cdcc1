package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/client"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/router"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/view"
	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

var (
	reportID          int
	reportOrder       string
	reportStatus      string
	reportPage        int
	reportTitle       string
	reportDescription string
	reportDeviceID    int
	reportOfficeID    int
	reportNote        string
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Manage issue reports",
	Long:  `List, file, resolve and re-status reports.`,
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reports",
	Example: `  smch-cli reports list --order latest --status pending
  smch-cli reports list --order earliest --page 2`,
	Run: func(cmd *cobra.Command, args []string) {
		if reportOrder != "" && reportOrder != client.OrderLatest && reportOrder != client.OrderEarliest {
			fmt.Println("Error: --order must be 'latest' or 'earliest'.")
			return
		}
		api, _ := requireSession()

		// The server sorts; the status filter and re-sort are applied
		// again locally so cached lists agree with what is shown.
		items, err := api.ListReports(context.Background(), reportOrder)
		if err != nil {
			fail("fetching reports", err)
		}
		filtered := view.FilterReports(items, reportStatus)
		filtered = view.SortReports(filtered, reportOrder)

		pager := view.NewPager(view.ReportPageSize)
		pager.SetCount(len(filtered))
		pager.SetPage(reportPage)
		pageItems, totalPages := view.Paginate(filtered, pager.Current(), pager.PageSize())

		if jsonOutput {
			printJSON(map[string]any{
				"reports":     pageItems,
				"page":        pager.Current(),
				"total_pages": totalPages,
			})
			return
		}
		if len(filtered) == 0 {
			fmt.Println("No reports found.")
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tCREATED")
		fmt.Fprintln(w, "--\t-----\t------\t-------")
		for _, r := range pageItems {
			created := r.CreatedAt
			if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
				created = t.Local().Format("2006-01-02 15:04")
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.Title, r.Status, created)
		}
		w.Flush()
		fmt.Printf("Page %d of %d (%d reports)\n", pager.Current(), totalPages, len(filtered))
	},
}

var reportsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show one report",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()

		r, err := api.GetReport(context.Background(), reportID)
		if err != nil {
			fail("fetching report", err)
		}
		if jsonOutput {
			printJSON(r)
			return
		}
		fmt.Printf("Report #%d: %s [%s]\n", r.ID, r.Title, r.Status)
		if r.Description != "" {
			fmt.Printf("  %s\n", r.Description)
		}
		if r.ResolutionNote != "" {
			fmt.Printf("  Resolution: %s\n", r.ResolutionNote)
		}
	},
}

var reportsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "File a new report",
	Run: func(cmd *cobra.Command, args []string) {
		if reportTitle == "" {
			fmt.Println(&client.ValidationError{Field: "title"})
			return
		}
		api, _ := requireSession()

		r, err := api.CreateReport(context.Background(), models.ReportPayload{
			Title:       reportTitle,
			Description: reportDescription,
			DeviceID:    reportDeviceID,
			OfficeID:    reportOfficeID,
		})
		if err != nil {
			fail("creating report", err)
		}
		fmt.Printf("Report #%d filed.\n", r.ID)
	},
}

var reportsResolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a report with a note (staff/admin)",
	Run: func(cmd *cobra.Command, args []string) {
		api, sess := requireSession()
		if !router.CapabilitiesFor(sess.Role).ResolveReports {
			fmt.Println("Error: Your role cannot resolve reports.")
			return
		}

		if err := api.ResolveReport(context.Background(), reportID, reportNote); err != nil {
			fail("resolving report", err)
		}
		fmt.Printf("Report #%d resolved.\n", reportID)
	},
}

var reportsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Patch a report's status (staff/admin)",
	Run: func(cmd *cobra.Command, args []string) {
		if reportStatus == "" {
			fmt.Println(&client.ValidationError{Field: "status"})
			return
		}
		api, sess := requireSession()
		if !router.CapabilitiesFor(sess.Role).ResolveReports {
			fmt.Println("Error: Your role cannot change report status.")
			return
		}

		if err := api.UpdateReportStatus(context.Background(), reportID, reportStatus); err != nil {
			fail("updating report status", err)
		}
		fmt.Printf("Report #%d is now %s.\n", reportID, reportStatus)
	},
}

func init() {
	rootCmd.AddCommand(reportsCmd)

	reportsCmd.AddCommand(reportsListCmd)
	reportsListCmd.Flags().StringVar(&reportOrder, "order", "latest", "Sort by creation time: latest or earliest")
	reportsListCmd.Flags().StringVar(&reportStatus, "status", "", "Filter by status (pending, resolved)")
	reportsListCmd.Flags().IntVar(&reportPage, "page", 1, "Page number")

	reportsCmd.AddCommand(reportsGetCmd)
	reportsGetCmd.Flags().IntVar(&reportID, "id", 0, "Report ID")
	_ = reportsGetCmd.MarkFlagRequired("id")

	reportsCmd.AddCommand(reportsCreateCmd)
	reportsCreateCmd.Flags().StringVar(&reportTitle, "title", "", "Report title")
	reportsCreateCmd.Flags().StringVar(&reportDescription, "description", "", "What happened")
	reportsCreateCmd.Flags().IntVar(&reportDeviceID, "device", 0, "Related device ID")
	reportsCreateCmd.Flags().IntVar(&reportOfficeID, "office", 0, "Related office ID")
	_ = reportsCreateCmd.MarkFlagRequired("title")

	reportsCmd.AddCommand(reportsResolveCmd)
	reportsResolveCmd.Flags().IntVar(&reportID, "id", 0, "Report ID")
	reportsResolveCmd.Flags().StringVar(&reportNote, "note", "", "Resolution note")
	_ = reportsResolveCmd.MarkFlagRequired("id")

	reportsCmd.AddCommand(reportsStatusCmd)
	reportsStatusCmd.Flags().IntVar(&reportID, "id", 0, "Report ID")
	reportsStatusCmd.Flags().StringVar(&reportStatus, "status", "", "New status")
	_ = reportsStatusCmd.MarkFlagRequired("id")
	_ = reportsStatusCmd.MarkFlagRequired("status")
}
