package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/intervu/intervu/internal/session"
	"github.com/intervu/intervu/pkg/models"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interviewer view of all candidate sessions",
	Long: `Review every candidate session: final scores, progress, and summaries.
Candidates are sorted by final score (unscored last), ties broken by most
recent activity.`,
	Example: `  intervu dashboard
  intervu dashboard --search ana
  intervu dashboard --detail 2
  intervu dashboard --history`,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp(cmd)

		if history, _ := cmd.Flags().GetBool("history"); history {
			printHistory(cmd)
			return
		}

		ranked := a.Engine.CandidatesRanked()
		if term, _ := cmd.Flags().GetString("search"); term != "" {
			ranked = session.SearchCandidates(ranked, term)
			if len(ranked) == 0 {
				fmt.Println("No matches for your search.")
				return
			}
		}
		if len(ranked) == 0 {
			fmt.Println("No candidates yet.")
			return
		}

		if detail, _ := cmd.Flags().GetInt("detail"); detail > 0 {
			if detail > len(ranked) {
				fmt.Printf("No candidate #%d in this view\n", detail)
				return
			}
			printCandidateDetail(ranked[detail-1])
			return
		}

		fmt.Println(titleStyle.Render("Interview Dashboard"))
		for i, rec := range ranked {
			score := "-"
			if rec.FinalScore != nil {
				score = fmt.Sprintf("%d/100", *rec.FinalScore)
			}
			answered := 0
			for _, q := range rec.Questions {
				if q.Status != models.QuestionPending {
					answered++
				}
			}
			fmt.Printf("%d. %s\n", i+1, labelStyle.Render(candidateLabel(rec)))
			fmt.Printf("   %s %s | %s %s | %s %d/%d | %s %ds\n",
				labelStyle.Render("Status:"), friendlyStatus(rec.Status),
				labelStyle.Render("Score:"), score,
				labelStyle.Render("Answered:"), answered, len(rec.Questions),
				labelStyle.Render("Time:"), rec.TotalTimeSeconds)
			if rec.Summary != "" {
				fmt.Printf("   %s\n", valueStyle.Render(rec.Summary))
			}
		}
	},
}

func printCandidateDetail(rec *models.CandidateRecord) {
	fmt.Println(titleStyle.Render(candidateLabel(rec)))
	fmt.Printf("%s %s\n", labelStyle.Render("Status:"), friendlyStatus(rec.Status))
	if rec.Profile.Email != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Email:"), rec.Profile.Email)
	}
	if rec.Profile.Phone != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Phone:"), rec.Profile.Phone)
	}
	if rec.Profile.ResumeFileName != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Resume:"), rec.Profile.ResumeFileName)
	}
	if rec.FinalScore != nil {
		fmt.Printf("%s %d/100\n", labelStyle.Render("Final score:"), *rec.FinalScore)
	}
	if rec.Summary != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Summary:"), rec.Summary)
	}

	if len(rec.Questions) > 0 {
		fmt.Println(labelStyle.Render("\nQuestions:"))
		for i, q := range rec.Questions {
			score := "-"
			if q.Score != nil {
				score = fmt.Sprintf("%d", *q.Score)
			}
			fmt.Printf("  %d. [%s] %s\n     %s %s | %s %s\n", i+1,
				q.Difficulty, q.Prompt,
				labelStyle.Render("Status:"), q.Status,
				labelStyle.Render("Score:"), score)
		}
	}

	fmt.Println(labelStyle.Render("\nTranscript:"))
	fmt.Println(renderTranscript(rec.Chat, 0))
}

func printHistory(cmd *cobra.Command) {
	a := mustApp(cmd)
	rows, err := a.Repo.ListTranscripts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching transcripts: %v\n", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		fmt.Println("No finalized interviews yet.")
		return
	}

	fmt.Println(titleStyle.Render("Finalized Interviews"))
	for _, row := range rows {
		name := row.CandidateName
		if name == "" {
			name = row.CandidateID
		}
		fmt.Printf("• %s  %d/100  %s\n", labelStyle.Render(name),
			row.FinalScore, row.CompletedAt.Format("2006-01-02 15:04"))
		if row.Summary != "" {
			fmt.Printf("  %s\n", valueStyle.Render(row.Summary))
		}
	}
}

func init() {
	dashboardCmd.Flags().String("search", "", "Filter by name, email, resume file, or summary")
	dashboardCmd.Flags().Int("detail", 0, "Show full detail for the Nth dashboard entry")
	dashboardCmd.Flags().Bool("history", false, "List finalized interviews from the transcript store")
	rootCmd.AddCommand(dashboardCmd)
}
