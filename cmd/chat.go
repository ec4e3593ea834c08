package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <text...>",
	Short: "Send one message to the active candidate session",
	Args:  cobra.MinimumNArgs(1),
	Example: `  intervu chat Ana Silva
  intervu chat "ana@example.com 555-123-4567"
  intervu chat start`,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp(cmd)

		if a.Engine.ActiveCandidate() == nil {
			fmt.Println("No active candidate. Run 'intervu start' first.")
			return
		}

		// Let an expired deadline win before the message is routed, the
		// same way the interactive session's poller would.
		a.Engine.Tick()
		a.Engine.SubmitMessage(strings.Join(args, " "))

		rec := a.Engine.ActiveCandidate()
		fmt.Println(renderTranscript(rec.Chat, a.Config.ChatHistoryLimit))
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
