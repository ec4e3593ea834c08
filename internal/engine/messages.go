package engine

// Canned interviewer copy appended to candidate transcripts.
const (
	msgGreeting          = "Hi! I'm your AI interviewer. Let's get your profile ready before we jump in."
	msgProfileComplete   = `Great! I have everything I need. Type "start" whenever you are ready.`
	msgStillMissing      = "Thanks! I'm still missing your %s. Could you share that?"
	msgBeginMissing      = "I'm still missing your %s."
	msgBeginHint         = `Just let me know when you want to begin by typing "start".`
	msgPausedReminder    = "We are currently paused. Type /resume when you are ready to continue."
	msgCompletedReminder = "Your interview is complete. Start a new candidate to run another session."
	msgIntro             = "We will go through six questions: 2 easy, 2 medium, and 2 hard. Timer starts when each question is asked."
	msgQuestion          = "Question %d: %s\n(%s • %ds)"
	msgFeedbackStrong    = "Strong response!"
	msgFeedbackGood      = "Good effort; consider adding more specifics next time."
	msgFeedbackWeak      = "Thanks for the answer. We can build on this in future interviews."
	msgScored            = "%s I scored that answer %d/100."
	msgTimesUp           = "Time's up! Let's move to the next question."
	msgWrap              = "That's a wrap! Your final score is %d/100. Here's the summary: %s"
	msgPaused            = "Sure thing, the interview is paused. Resume when you are ready."
	msgResumed           = "Welcome back! Picking up right where we left off."
)

// Messages in ready state that begin the interview, matched
// case-insensitively.
var beginTriggers = map[string]struct{}{
	"start":           {},
	"start interview": {},
	"begin":           {},
}
