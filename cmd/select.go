package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/intervu/intervu/internal/app"
)

var selectCmd = &cobra.Command{
	Use:   "select <number|id>",
	Short: "Switch the active candidate",
	Long: `Switch the active candidate by list number (see 'intervu list') or by id.
Switching always suspends whatever timer was running for the previous
candidate.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := mustApp(cmd)

		id := args[0]
		if n, err := strconv.Atoi(args[0]); err == nil {
			ordered := a.Engine.CandidatesOrdered()
			if n < 1 || n > len(ordered) {
				return fmt.Errorf("%w: no candidate #%d, run 'intervu list'", app.ErrInvalidArgument, n)
			}
			id = ordered[n-1].ID
		}

		if !a.Engine.SelectCandidate(id) {
			return fmt.Errorf("%w: %s", app.ErrCandidateNotFound, id)
		}

		rec := a.Engine.ActiveCandidate()
		fmt.Printf("%s %s (%s)\n", labelStyle.Render("Active candidate:"),
			candidateLabel(rec), friendlyStatus(rec.Status))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidate sessions, most recently started first",
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp(cmd)

		ordered := a.Engine.CandidatesOrdered()
		if len(ordered) == 0 {
			fmt.Println("No candidates yet. Run 'intervu start' to create one.")
			return
		}

		activeID := ""
		if rec := a.Engine.ActiveCandidate(); rec != nil {
			activeID = rec.ID
		}

		fmt.Println(titleStyle.Render("Candidates"))
		for i, rec := range ordered {
			marker := " "
			if rec.ID == activeID {
				marker = "*"
			}
			score := "-"
			if rec.FinalScore != nil {
				score = fmt.Sprintf("%d/100", *rec.FinalScore)
			}
			fmt.Printf("%s %d. %s  %s  %s\n", marker, i+1,
				candidateLabel(rec), friendlyStatus(rec.Status), score)
		}
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(listCmd)
}
