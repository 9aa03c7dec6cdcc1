package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/client"
)

var catCategoryID int

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Browse the device taxonomy",
	Long:  `List device categories and their dependent types and subcategories.`,
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List device categories",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()

		cats, err := api.ListCategories(context.Background())
		if err != nil {
			fail("fetching categories", err)
		}
		if jsonOutput {
			printJSON(cats)
			return
		}
		if len(cats) == 0 {
			fmt.Println("No categories found.")
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		fmt.Fprintln(w, "--\t----")
		for _, c := range cats {
			fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Name)
		}
		w.Flush()
	},
}

var typesListCmd = &cobra.Command{
	Use:   "types",
	Short: "List the types under a category",
	Run: func(cmd *cobra.Command, args []string) {
		if catCategoryID == 0 {
			fmt.Println(&client.ValidationError{Field: "category"})
			return
		}
		api, _ := requireSession()

		types, err := api.ListTypes(context.Background(), catCategoryID)
		if err != nil {
			fail("fetching types", err)
		}
		if jsonOutput {
			printJSON(types)
			return
		}
		if len(types) == 0 {
			fmt.Println("No types under this category.")
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY")
		fmt.Fprintln(w, "--\t----\t--------")
		for _, t := range types {
			fmt.Fprintf(w, "%d\t%s\t%d\n", t.ID, t.Name, t.CategoryID)
		}
		w.Flush()
	},
}

var subcategoriesListCmd = &cobra.Command{
	Use:   "subcategories",
	Short: "List the subcategories under a category",
	Run: func(cmd *cobra.Command, args []string) {
		if catCategoryID == 0 {
			fmt.Println(&client.ValidationError{Field: "category"})
			return
		}
		api, _ := requireSession()

		subs, err := api.ListSubcategories(context.Background(), catCategoryID)
		if err != nil {
			fail("fetching subcategories", err)
		}
		if jsonOutput {
			printJSON(subs)
			return
		}
		if len(subs) == 0 {
			fmt.Println("No subcategories under this category.")
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY")
		fmt.Fprintln(w, "--\t----\t--------")
		for _, s := range subs {
			fmt.Fprintf(w, "%d\t%s\t%d\n", s.ID, s.Name, s.CategoryID)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesListCmd)

	categoriesCmd.AddCommand(typesListCmd)
	typesListCmd.Flags().IntVar(&catCategoryID, "category", 0, "Category ID")
	_ = typesListCmd.MarkFlagRequired("category")

	categoriesCmd.AddCommand(subcategoriesListCmd)
	subcategoriesListCmd.Flags().IntVar(&catCategoryID, "category", 0, "Category ID")
	_ = subcategoriesListCmd.MarkFlagRequired("category")
}
