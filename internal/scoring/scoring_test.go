package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intervu/intervu/pkg/models"
)

func intPtr(v int) *int { return &v }

func TestScoreAnswerEmpty(t *testing.T) {
	for _, d := range []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
		assert.Equal(t, 0, ScoreAnswer("", d), "difficulty %s", d)
		assert.Equal(t, 0, ScoreAnswer("   \t\n", d), "difficulty %s", d)
	}
}

func TestScoreAnswerLengthComponent(t *testing.T) {
	// Two points per word, capped at 60. Use a filler word that is neither a
	// keyword nor an example marker so only the length component contributes.
	answer := func(words int) string {
		return strings.TrimSpace(strings.Repeat("banana ", words))
	}

	assert.Equal(t, 2, ScoreAnswer(answer(1), models.DifficultyEasy))
	assert.Equal(t, 20, ScoreAnswer(answer(10), models.DifficultyEasy))
	assert.Equal(t, 60, ScoreAnswer(answer(30), models.DifficultyEasy))
	assert.Equal(t, 60, ScoreAnswer(answer(500), models.DifficultyEasy))

	// Monotone non-decreasing in word count.
	prev := 0
	for n := 1; n <= 50; n++ {
		got := ScoreAnswer(answer(n), models.DifficultyEasy)
		assert.GreaterOrEqual(t, got, prev, "words=%d", n)
		prev = got
	}
}

func TestScoreAnswerKeywords(t *testing.T) {
	// Keywords only count against their own difficulty's bank, 10 points per
	// distinct keyword, capped at 30. Repeats of one keyword do not stack.
	assert.Equal(t, 2+10, ScoreAnswer("state", models.DifficultyEasy))
	assert.Equal(t, 8+10, ScoreAnswer("state state state state", models.DifficultyEasy))
	assert.Equal(t, 6+30, ScoreAnswer("state props component", models.DifficultyEasy))
	assert.Equal(t, 8+30, ScoreAnswer("state props component useeffect", models.DifficultyEasy))

	// Easy keywords are worthless on a hard question.
	assert.Equal(t, 6, ScoreAnswer("state props component", models.DifficultyHard))

	// Matching is case-insensitive substring.
	assert.Equal(t, 4+10, ScoreAnswer("Middleware chains", models.DifficultyMedium))
}

func TestScoreAnswerStructureBonus(t *testing.T) {
	withExample := ScoreAnswer("here is an example", models.DifficultyEasy)
	without := ScoreAnswer("here is an anecdote", models.DifficultyEasy)
	assert.Equal(t, 10, withExample-without)

	withInstance := ScoreAnswer("for instance this works", models.DifficultyHard)
	withoutInstance := ScoreAnswer("in practice this works", models.DifficultyHard)
	assert.Equal(t, 10, withInstance-withoutInstance)
}

func TestScoreAnswerCappedAtHundred(t *testing.T) {
	answer := strings.Repeat("filler ", 40) +
		"scalability distributed observability resilience for example"
	assert.Equal(t, 100, ScoreAnswer(answer, models.DifficultyHard))
}

func TestComputeFinalScore(t *testing.T) {
	questions := func(score int) []models.InterviewQuestion {
		out := make([]models.InterviewQuestion, 0, 6)
		for _, d := range []models.Difficulty{
			models.DifficultyEasy, models.DifficultyEasy,
			models.DifficultyMedium, models.DifficultyMedium,
			models.DifficultyHard, models.DifficultyHard,
		} {
			out = append(out, models.InterviewQuestion{Difficulty: d, Score: intPtr(score)})
		}
		return out
	}

	assert.Equal(t, 0, ComputeFinalScore(nil))
	assert.Equal(t, 0, ComputeFinalScore(questions(0)))
	assert.Equal(t, 100, ComputeFinalScore(questions(100)))
	assert.Equal(t, 50, ComputeFinalScore(questions(50)))

	// Unscored questions count as zero: dropping both hard answers removes
	// half the total weight's worth of points.
	unscored := questions(100)
	unscored[4].Score = nil
	unscored[5].Score = nil
	assert.Equal(t, 50, ComputeFinalScore(unscored))
}

func TestBuildSummary(t *testing.T) {
	t.Run("no answered questions", func(t *testing.T) {
		candidate := &models.CandidateRecord{
			Questions: []models.InterviewQuestion{{Status: models.QuestionPending}},
		}
		assert.Equal(t, "Candidate did not provide answers for evaluation.", BuildSummary(candidate))
	})

	t.Run("strengths and focus areas capped at two each", func(t *testing.T) {
		candidate := &models.CandidateRecord{
			Questions: []models.InterviewQuestion{
				{Prompt: "Explain React state", Status: models.QuestionAnswered, Score: intPtr(90)},
				{Prompt: "Explain props", Status: models.QuestionAnswered, Score: intPtr(80)},
				{Prompt: "Explain hooks", Status: models.QuestionAnswered, Score: intPtr(75)},
				{Prompt: "Explain middleware", Status: models.QuestionAutoSubmitted, Score: intPtr(0)},
				{Prompt: "Explain caching", Status: models.QuestionAutoSubmitted, Score: intPtr(10)},
				{Prompt: "Explain sharding", Status: models.QuestionAutoSubmitted, Score: intPtr(20)},
			},
		}
		summary := BuildSummary(candidate)
		assert.Contains(t, summary, "Notable strengths: Strong on explain react state; Strong on explain props.")
		assert.Contains(t, summary, "Focus areas: Needs deeper coverage on explain middleware; Needs deeper coverage on explain caching.")
		assert.NotContains(t, summary, "hooks")
		assert.NotContains(t, summary, "sharding")
	})

	t.Run("middling scores produce fallback sentences", func(t *testing.T) {
		candidate := &models.CandidateRecord{
			Questions: []models.InterviewQuestion{
				{Prompt: "Explain props", Status: models.QuestionAnswered, Score: intPtr(50)},
			},
		}
		assert.Equal(t,
			"Strengths were not clearly demonstrated during the interview. "+
				"No major red flags detected; consider digging deeper in a follow-up conversation.",
			BuildSummary(candidate))
	})
}
