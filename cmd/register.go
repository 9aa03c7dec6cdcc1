package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/client"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/session"
	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

var (
	regName     string
	regEmail    string
	regPassword string
	regConfirm  string
	regOfficeID int

	forgotEmail string

	resetToken    string
	resetEmail    string
	resetPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Run: func(cmd *cobra.Command, args []string) {
		// Required-field checks happen before any network call.
		for field, v := range map[string]string{
			"name": regName, "email": regEmail, "password": regPassword,
		} {
			if v == "" {
				fmt.Println(&client.ValidationError{Field: field})
				return
			}
		}
		if regConfirm == "" {
			regConfirm = regPassword
		}

		api := publicClient()
		token, user, err := api.Register(context.Background(), models.RegisterPayload{
			Name:                 regName,
			Email:                regEmail,
			Password:             regPassword,
			PasswordConfirmation: regConfirm,
			OfficeID:             regOfficeID,
		})
		if err != nil {
			log.Fatalf("Fatal: Registration failed: %v", err)
		}

		if token != "" {
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
			fmt.Printf("Registered and logged in as %s.\n", user.Name)
			return
		}
		fmt.Println("Registered. Run 'smch-cli login' to sign in.")
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Send a password reset email",
	Run: func(cmd *cobra.Command, args []string) {
		if forgotEmail == "" {
			fmt.Println(&client.ValidationError{Field: "email"})
			return
		}
		if err := publicClient().ForgotPassword(context.Background(), forgotEmail); err != nil {
			fail("requesting password reset", err)
		}
		fmt.Println("Reset email sent if the address exists.")
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password with a reset token",
	Example: `  smch-cli reset-password --token abc123 --email ada@smch.local --password newpass`,
	Run: func(cmd *cobra.Command, args []string) {
		for field, v := range map[string]string{
			"token": resetToken, "email": resetEmail, "password": resetPassword,
		} {
			if v == "" {
				fmt.Println(&client.ValidationError{Field: field})
				return
			}
		}
		err := publicClient().ResetPassword(context.Background(), resetToken, resetEmail, resetPassword)
		if err != nil {
			fail("resetting password", err)
		}
		fmt.Println("Password reset. Run 'smch-cli login' to sign in.")
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&regName, "name", "", "Full name")
	registerCmd.Flags().StringVar(&regEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&regPassword, "password", "", "Password")
	registerCmd.Flags().StringVar(&regConfirm, "confirm", "", "Password confirmation (defaults to password)")
	registerCmd.Flags().IntVar(&regOfficeID, "office", 0, "Office ID")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(forgotPasswordCmd)
	forgotPasswordCmd.Flags().StringVar(&forgotEmail, "email", "", "Account email")
	_ = forgotPasswordCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(resetPasswordCmd)
	resetPasswordCmd.Flags().StringVar(&resetToken, "token", "", "Reset token from the email")
	resetPasswordCmd.Flags().StringVar(&resetEmail, "email", "", "Account email")
	resetPasswordCmd.Flags().StringVar(&resetPassword, "password", "", "New password")
	_ = resetPasswordCmd.MarkFlagRequired("token")
	_ = resetPasswordCmd.MarkFlagRequired("email")
	_ = resetPasswordCmd.MarkFlagRequired("password")
}
