package question

import (
	"github.com/abhisek/quizmate/internal/quiz"
	"github.com/abhisek/quizmate/internal/selector"
)

// questionReadyMsg carries the result of the async question fetch.
type questionReadyMsg struct {
	Result *selector.Result
	Err    error
}

// answerRecordedMsg carries the graded feedback after the attempt has
// been written to the ledger.
type answerRecordedMsg struct {
	Feedback *quiz.Feedback
	Err      error
}
