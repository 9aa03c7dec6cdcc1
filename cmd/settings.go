package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	settingTheme         string
	settingNotifications string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change local preferences",
	Run: func(cmd *cobra.Command, args []string) {
		changed := false
		if settingTheme != "" {
			viper.Set("theme", settingTheme)
			changed = true
		}
		if settingNotifications != "" {
			viper.Set("notifications_enabled", settingNotifications == "on")
			changed = true
		}
		if changed {
			if err := viper.WriteConfig(); err != nil {
				if err = viper.SafeWriteConfig(); err != nil {
					fmt.Printf("Error saving settings: %v\n", err)
					return
				}
			}
		}

		theme := viper.GetString("theme")
		if theme == "" {
			theme = "light"
		}
		notif := "on"
		if viper.IsSet("notifications_enabled") && !viper.GetBool("notifications_enabled") {
			notif = "off"
		}
		fmt.Printf("Theme:         %s\n", theme)
		fmt.Printf("Notifications: %s\n", notif)
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.Flags().StringVar(&settingTheme, "theme", "", "Set the theme (light or dark)")
	settingsCmd.Flags().StringVar(&settingNotifications, "notifications", "", "Turn local push lines on or off")
}
