package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/intervu/intervu/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	aiStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("14"))

	candidateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	systemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true)

	timerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

// renderMessage renders one transcript entry with its role prefix.
func renderMessage(msg models.ChatMessage) string {
	switch msg.Role {
	case models.RoleAI:
		return aiStyle.Render("interviewer: ") + msg.Content
	case models.RoleCandidate:
		return candidateStyle.Render("you: ") + msg.Content
	default:
		return systemStyle.Render(msg.Content)
	}
}

// renderTranscript renders the last limit transcript entries, all of them
// when limit is zero or negative.
func renderTranscript(messages []models.ChatMessage, limit int) string {
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, renderMessage(msg))
	}
	return strings.Join(lines, "\n")
}

// friendlyStatus renders a candidate status for humans.
func friendlyStatus(status models.CandidateStatus) string {
	return strings.ReplaceAll(string(status), "-", " ")
}

// candidateLabel names a candidate for lists and headers.
func candidateLabel(rec *models.CandidateRecord) string {
	if rec.Profile.Name != "" {
		return rec.Profile.Name
	}
	if rec.Profile.ResumeFileName != "" {
		return rec.Profile.ResumeFileName
	}
	return fmt.Sprintf("candidate %.8s", rec.ID)
}
