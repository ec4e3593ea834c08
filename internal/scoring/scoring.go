// Package scoring holds the answer-scoring heuristics: per-answer scores,
// the weighted final score, and the interviewer-facing summary. All functions
// are pure.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/intervu/intervu/pkg/models"
)

const (
	lengthCap      = 60
	keywordCap     = 30
	structureBonus = 10

	strengthThreshold    = 70
	improvementThreshold = 30
)

var keywordBank = map[models.Difficulty][]string{
	models.DifficultyEasy:   {"state", "props", "component", "useeffect", "express"},
	models.DifficultyMedium: {"optimization", "performance", "security", "validation", "middleware"},
	models.DifficultyHard:   {"scalability", "distributed", "observability", "feature flag", "real-time", "resilience"},
}

var difficultyWeight = map[models.Difficulty]float64{
	models.DifficultyEasy:   0.2,
	models.DifficultyMedium: 0.3,
	models.DifficultyHard:   0.5,
}

// ScoreAnswer rates one answer 0-100: up to 60 points for length (2 per
// word), up to 30 for distinct difficulty keywords (10 each, case-insensitive
// substring match), and a flat 10 when the answer cites an example.
func ScoreAnswer(answer string, difficulty models.Difficulty) int {
	cleaned := strings.ToLower(strings.TrimSpace(answer))
	if cleaned == "" {
		return 0
	}

	wordCount := len(strings.Fields(cleaned))
	lengthScore := min(lengthCap, wordCount*2)

	matches := 0
	for _, keyword := range keywordBank[difficulty] {
		if strings.Contains(cleaned, keyword) {
			matches++
		}
	}
	keywordScore := min(keywordCap, matches*10)

	structureScore := 0
	if strings.Contains(cleaned, "example") || strings.Contains(cleaned, "for instance") {
		structureScore = structureBonus
	}

	return min(100, lengthScore+keywordScore+structureScore)
}

// ComputeFinalScore combines per-question scores into a single 0-100 value:
// a weighted average using the fixed difficulty weights (easy 0.2, medium
// 0.3, hard 0.5). Questions without a score count as zero.
func ComputeFinalScore(questions []models.InterviewQuestion) int {
	if len(questions) == 0 {
		return 0
	}

	weighted := 0.0
	totalWeight := 0.0
	for _, q := range questions {
		score := 0
		if q.Score != nil {
			score = *q.Score
		}
		w := difficultyWeight[q.Difficulty]
		weighted += float64(score) * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(weighted / totalWeight))
}

// BuildSummary synthesizes the two-sentence interviewer summary from the
// candidate's answered questions. Strengths are answers scoring at least 70,
// improvements those at 30 or below, each capped at two items.
func BuildSummary(candidate *models.CandidateRecord) string {
	answered := make([]models.InterviewQuestion, 0, len(candidate.Questions))
	for _, q := range candidate.Questions {
		if q.Status != models.QuestionPending {
			answered = append(answered, q)
		}
	}
	if len(answered) == 0 {
		return "Candidate did not provide answers for evaluation."
	}

	var strengths, improvements []string
	for _, q := range answered {
		score := 0
		if q.Score != nil {
			score = *q.Score
		}
		switch {
		case score >= strengthThreshold:
			strengths = append(strengths, "Strong on "+strings.ToLower(q.Prompt))
		case score <= improvementThreshold:
			improvements = append(improvements, "Needs deeper coverage on "+strings.ToLower(q.Prompt))
		}
	}

	strengthSentence := "Strengths were not clearly demonstrated during the interview."
	if len(strengths) > 0 {
		strengthSentence = fmt.Sprintf("Notable strengths: %s.", strings.Join(capItems(strengths, 2), "; "))
	}

	improvementSentence := "No major red flags detected; consider digging deeper in a follow-up conversation."
	if len(improvements) > 0 {
		improvementSentence = fmt.Sprintf("Focus areas: %s.", strings.Join(capItems(improvements, 2), "; "))
	}

	return strengthSentence + " " + improvementSentence
}

func capItems(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
