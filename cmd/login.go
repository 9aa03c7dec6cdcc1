package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/client"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/config"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/router"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/session"
)

// Variables to hold flag values
var (
	loginHost     string
	loginEmail    string
	loginPassword string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the SMCH server",
	Long: `Authenticates with the given credentials and saves the bearer token
and profile locally for future commands.

Example:
  smch-cli login --email admin@smch.local --password secret`,
	Run: func(cmd *cobra.Command, args []string) {
		if loginEmail == "" {
			fmt.Println(&client.ValidationError{Field: "email"})
			return
		}
		if loginPassword == "" {
			fmt.Println(&client.ValidationError{Field: "password"})
			return
		}

		baseURL := config.BaseURL()
		if loginHost != "" {
			baseURL = loginHost
			viper.Set("base_url", loginHost)
		}

		fmt.Printf("Authenticating against %s as '%s'...\n", baseURL, loginEmail)

		api := client.New(baseURL, "")
		token, user, err := api.Login(context.Background(), loginEmail, loginPassword)
		if err != nil {
			log.Fatalf("Fatal: Login failed: %v", err)
		}

		// Persist token, role and profile through the one session surface.
		err = store.Set(session.Partial{
			Token:     &token,
			Role:      &user.Role,
			UserID:    &user.ID,
			Name:      &user.Name,
			Email:     &user.Email,
			AvatarURL: &user.ImageURL,
		})
		if err != nil {
			log.Fatalf("Failed to save configuration file: %v", err)
		}

		dest := router.Resolve(user.Role)
		fmt.Printf("Logged in as %s (%s). Landing: %s.\n", user.Name, user.Role, dest)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginHost, "host", "", "API base URL (default from SMCH_API_URL or config)")
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password")

	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}
