package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run the interactive interview session",
	Long: `Run the chat loop for the active candidate. Plain input is sent as a
candidate message; slash commands control the interview:

  /begin   start the interview
  /pause   pause the question timer
  /resume  resume a paused interview
  /switch  switch candidate by list number
  /list    list candidates
  /quit    leave the session (state is persisted)`,
	Run: func(cmd *cobra.Command, args []string) {
		runSession(cmd)
	},
}

func runSession(cmd *cobra.Command) {
	a := mustApp(cmd)

	if a.Engine.ActiveCandidate() == nil {
		fmt.Println("No active candidate. Run 'intervu start' first.")
		return
	}

	// Welcome-back prompt for a session left unfinished before a restart.
	if rec := a.Engine.WelcomeBackCandidate(); rec != nil {
		fmt.Println(titleStyle.Render("Welcome back"))
		fmt.Printf("%s has an unfinished interview (%s).\n",
			candidateLabel(rec), friendlyStatus(rec.Status))
		a.Engine.AcknowledgeWelcomeBack()
	}

	// The deadline poller: the only source of spontaneous state change.
	ticker := time.NewTicker(time.Duration(a.Config.TickIntervalMs) * time.Millisecond)
	defer ticker.Stop()
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				a.Engine.Tick()
			}
		}
	}()
	defer close(done)

	reader := bufio.NewReader(os.Stdin)
	for {
		rec := a.Engine.ActiveCandidate()
		if rec == nil {
			fmt.Println("No active candidate.")
			return
		}

		fmt.Println("\n" + titleStyle.Render("Interview: "+candidateLabel(rec)))
		fmt.Println(renderTranscript(rec.Chat, a.Config.ChatHistoryLimit))
		if remaining := a.Engine.SecondsRemaining(); remaining != nil {
			state := ""
			if a.Engine.IsPaused() {
				state = " (paused)"
			}
			fmt.Println(timerStyle.Render(fmt.Sprintf("⏱ %ds remaining%s", *remaining, state)))
		}

		fmt.Print("> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if quit := handleSessionCommand(cmd, input); quit {
				return
			}
			continue
		}

		a.Engine.SubmitMessage(input)
	}
}

// handleSessionCommand executes one slash command; returns true to quit.
func handleSessionCommand(cmd *cobra.Command, input string) bool {
	a := mustApp(cmd)
	fields := strings.Fields(input)

	switch fields[0] {
	case "/quit", "/q", "/exit":
		return true
	case "/begin":
		a.Engine.BeginInterview()
	case "/pause":
		a.Engine.PauseInterview()
	case "/resume":
		a.Engine.ResumeInterview()
	case "/list":
		listCmd.Run(cmd, nil)
	case "/switch":
		if len(fields) != 2 {
			fmt.Println("Usage: /switch <number>")
			return false
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Println("Usage: /switch <number>")
			return false
		}
		ordered := a.Engine.CandidatesOrdered()
		if n < 1 || n > len(ordered) {
			fmt.Printf("No candidate #%d\n", n)
			return false
		}
		a.Engine.SelectCandidate(ordered[n-1].ID)
	default:
		fmt.Println("Unknown command. Try /begin, /pause, /resume, /switch, /list, /quit")
	}
	return false
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
