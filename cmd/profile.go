package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/session"
	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

var (
	profileName  string
	profileEmail string
	profilePhoto string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and edit your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()

		u, err := api.GetProfile(context.Background())
		if err != nil {
			fail("fetching profile", err)
		}
		if jsonOutput {
			printJSON(u)
			return
		}
		fmt.Printf("%s <%s>\n", u.Name, u.Email)
		fmt.Printf("Role: %s\n", u.Role)
		if u.ImageURL != "" {
			fmt.Printf("Avatar: %s\n", u.ImageURL)
		}
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update name or email",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()

		u, err := api.UpdateProfile(context.Background(), models.ProfilePayload{
			Name:  profileName,
			Email: profileEmail,
		})
		if err != nil {
			fail("updating profile", err)
		}

		// Mirror the edited fields into the stored session.
		if err := store.Set(session.Partial{Name: &u.Name, Email: &u.Email}); err != nil {
			fmt.Printf("Warning: profile updated but local session not saved: %v\n", err)
		}
		fmt.Println("Profile updated.")
	},
}

var profilePhotoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Upload a new profile photo",
	Example: `  smch-cli profile photo --file ./me.jpg`,
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := requireSession()

		u, err := api.UploadProfilePhoto(context.Background(), profilePhoto)
		if err != nil {
			fail("uploading photo", err)
		}
		if err := store.Set(session.Partial{AvatarURL: &u.ImageURL}); err != nil {
			fmt.Printf("Warning: photo uploaded but local session not saved: %v\n", err)
		}
		fmt.Println("Photo uploaded.")
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd)

	profileCmd.AddCommand(profileUpdateCmd)
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "New display name")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "New email")

	profileCmd.AddCommand(profilePhotoCmd)
	profilePhotoCmd.Flags().StringVar(&profilePhoto, "file", "", "Path to the image file")
	_ = profilePhotoCmd.MarkFlagRequired("file")
}
