package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intervu/intervu/internal/app"
)

var beginCmd = &cobra.Command{
	Use:   "begin",
	Short: "Begin the interview for the active candidate",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := mustApp(cmd)
		if a.Engine.ActiveCandidate() == nil {
			return fmt.Errorf("%w: run 'intervu start' first", app.ErrNoActiveCandidate)
		}
		a.Engine.BeginInterview()
		printTail(cmd)
		return nil
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the running question timer",
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp(cmd)
		a.Engine.PauseInterview()
		printTail(cmd)
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a paused interview",
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp(cmd)
		a.Engine.ResumeInterview()
		printTail(cmd)
	},
}

// printTail shows the transcript tail plus the countdown after a control
// command.
func printTail(cmd *cobra.Command) {
	a := mustApp(cmd)
	rec := a.Engine.ActiveCandidate()
	if rec == nil {
		return
	}
	fmt.Println(renderTranscript(rec.Chat, a.Config.ChatHistoryLimit))
	if remaining := a.Engine.SecondsRemaining(); remaining != nil {
		state := "remaining"
		if a.Engine.IsPaused() {
			state = "remaining (paused)"
		}
		fmt.Println(timerStyle.Render(fmt.Sprintf("%ds %s", *remaining, state)))
	}
}

func init() {
	rootCmd.AddCommand(beginCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
}
