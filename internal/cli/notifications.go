package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// addNotificationCommands adds the notification feed commands.
func addNotificationCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "Journal event feed",
		Example: `  fxjournal notifications
  fxjournal notifications read`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if !requireJournal(app, output) {
				return nil
			}

			notifications := app.Journal.Notifications()
			if output.IsJSON() {
				return output.JSON(notifications)
			}

			if len(notifications) == 0 {
				output.Info("No notifications.")
				return nil
			}

			output.Bold("Notifications (%d unread)", app.Journal.UnreadCount())
			output.Println()
			now := time.Now()
			for _, n := range notifications {
				marker := output.DimText("·")
				message := n.Message
				if !n.Read {
					marker = output.Cyan("●")
					message = output.BoldText(message)
				}
				output.Printf("  %s %s  %s\n", marker, message, output.DimText(FormatRelativeTime(n.Time, now)))
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "read",
		Short: "Mark all notifications as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if !requireJournal(app, output) {
				return nil
			}
			app.Journal.MarkAllNotificationsRead()
			output.Success("✓ All notifications marked as read")
			return nil
		},
	})

	rootCmd.AddCommand(cmd)
}
