// Package questionbank deals the fixed six-question interview set: two easy,
// two medium, two hard, in that order.
package questionbank

import (
	"math/rand"

	"github.com/intervu/intervu/pkg/models"
)

var prompts = map[models.Difficulty][]string{
	models.DifficultyEasy: {
		"Explain the difference between const, let, and var in JavaScript.",
		"How do you lift state up in React?",
		"What is the purpose of useEffect and when does it run?",
		"Describe how to create a simple REST endpoint in Express.",
		"What are props in React and how are they different from state?",
	},
	models.DifficultyMedium: {
		"How would you optimize bundle size in a React + Vite app?",
		"Describe the lifecycle of an HTTP request in a Node/Express server.",
		"How do you handle error boundaries in React?",
		"Explain how to design a reusable form component with validation.",
		"What strategies do you use to secure an Express API?",
	},
	models.DifficultyHard: {
		"Design a real-time notification system for a React/Node application.",
		"How would you scale a Node.js backend to handle burst traffic?",
		"Explain how you would implement server-side rendering with hydration.",
		"Describe how to build a feature flag system end-to-end.",
		"How do you instrument full-stack logging and tracing in production?",
	},
}

var timeLimits = map[models.Difficulty]int{
	models.DifficultyEasy:   20,
	models.DifficultyMedium: 60,
	models.DifficultyHard:   120,
}

// TimeLimitSeconds returns the fixed answering budget for a difficulty.
func TimeLimitSeconds(difficulty models.Difficulty) int {
	return timeLimits[difficulty]
}

// Generate returns the six-question interview set. Within each difficulty,
// prompts are drawn without replacement in randomized order; if a pool were
// ever smaller than the requested count, sampling wraps instead of failing.
func Generate() []models.InterviewQuestion {
	set := make([]models.InterviewQuestion, 0, 6)
	for _, difficulty := range []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
		set = append(set, pull(difficulty, 2)...)
	}
	return set
}

func pull(difficulty models.Difficulty, count int) []models.InterviewQuestion {
	pool := append([]string{}, prompts[difficulty]...)
	out := make([]models.InterviewQuestion, 0, count)

	for i := 0; i < count; i++ {
		var prompt string
		if len(pool) > 0 {
			idx := rand.Intn(len(pool))
			prompt = pool[idx]
			pool = append(pool[:idx], pool[idx+1:]...)
		} else {
			full := prompts[difficulty]
			prompt = full[i%len(full)]
		}
		out = append(out, models.InterviewQuestion{
			ID:               models.NewID(),
			Prompt:           prompt,
			Difficulty:       difficulty,
			TimeLimitSeconds: timeLimits[difficulty],
			Status:           models.QuestionPending,
		})
	}
	return out
}
