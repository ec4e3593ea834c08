package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/intervu/intervu/internal/profile"
	"github.com/intervu/intervu/internal/resume"
	"github.com/intervu/intervu/pkg/models"
)

var startCmd = &cobra.Command{
	Use:   "start [resume-file]",
	Short: "Start a new candidate session",
	Long: `Start a new interview session, optionally seeding the candidate profile
from a PDF or DOCX resume. The new candidate becomes the active one.`,
	Args: cobra.MaximumNArgs(1),
	Example: `  intervu start ~/Documents/resume.pdf
  intervu start --name "Ana Silva" --email ana@example.com`,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp(cmd)

		candidateProfile := models.CandidateProfile{}
		if len(args) == 1 {
			parsed, err := resume.Parse(args[0])
			if err != nil {
				// Extraction failure: surface the cause, commit nothing.
				fmt.Fprintf(os.Stderr, "Could not read the resume: %v\n", err)
				os.Exit(1)
			}
			candidateProfile = parsed
		}

		if name, _ := cmd.Flags().GetString("name"); name != "" && candidateProfile.Name == "" {
			candidateProfile.Name = name
		}
		if email, _ := cmd.Flags().GetString("email"); email != "" && candidateProfile.Email == "" {
			candidateProfile.Email = email
		}
		if phone, _ := cmd.Flags().GetString("phone"); phone != "" && candidateProfile.Phone == "" {
			candidateProfile.Phone = phone
		}

		pending := profile.MissingFields(candidateProfile)
		id := a.Engine.StartCandidate(candidateProfile, pending)

		fmt.Println(titleStyle.Render("New candidate session"))
		fmt.Printf("%s %s\n", labelStyle.Render("ID:"), id)
		if candidateProfile.Name != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Name:"), valueStyle.Render(candidateProfile.Name))
		}
		if len(pending) > 0 {
			fmt.Printf("%s %s\n", labelStyle.Render("Still needed:"), profile.DescribeMissing(pending))
		}
		fmt.Println("\nRun 'intervu session' to chat with the candidate.")
	},
}

func init() {
	startCmd.Flags().String("name", "", "Candidate name")
	startCmd.Flags().String("email", "", "Candidate email address")
	startCmd.Flags().String("phone", "", "Candidate phone number")
	rootCmd.AddCommand(startCmd)
}
