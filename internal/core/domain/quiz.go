package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Question is a single multiple-choice question within a quiz.
type Question struct {
	// Text is the question text.
	Text string

	// Options are the labeled choices, in order. The service emits four
	// options, each prefixed with its label ("A. ...", "B. ...").
	Options []string

	// CorrectLabel is the label of the correct option.
	CorrectLabel string

	// Explanation describes why the correct answer is correct.
	Explanation string
}

// OptionLabel extracts the label from an option string ("A. Paris" -> "A").
func OptionLabel(option string) string {
	option = strings.TrimSpace(option)
	if option == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(option)
	return option[:size]
}

// Quiz is a generated quiz over one document. Once fetched it is immutable
// for the duration of an attempt.
type Quiz struct {
	// ID is the unique identifier for the quiz.
	ID int64

	// Title is the quiz title.
	Title string

	// Questions are the ordered questions.
	Questions []Question

	// CreatedAt is when the quiz was generated.
	CreatedAt time.Time
}

// QuizAttempt is the ephemeral, client-owned progress over one quiz.
// It is a value: every transition returns a new attempt, leaving the
// receiver untouched, so transition logic is testable in isolation from
// rendering. An unanswered question holds the empty string.
type QuizAttempt struct {
	// Quiz is the immutable quiz under attempt.
	Quiz Quiz

	// Current is the index of the question being shown.
	Current int

	// Answers holds the selected label per question, ordered as Questions.
	Answers []string

	// Finished is true once the attempt has advanced past the last question.
	Finished bool
}

// NewQuizAttempt initialises a fresh attempt: all answers unset, first
// question showing.
func NewQuizAttempt(quiz Quiz) QuizAttempt {
	return QuizAttempt{
		Quiz:    quiz,
		Answers: make([]string, len(quiz.Questions)),
	}
}

// Len returns the number of questions.
func (a QuizAttempt) Len() int {
	return len(a.Quiz.Questions)
}

// Question returns the question at the current index.
func (a QuizAttempt) Question() Question {
	return a.Quiz.Questions[a.Current]
}

// Answer returns the recorded label for the current question, or the
// empty string if unanswered.
func (a QuizAttempt) Answer() string {
	return a.Answers[a.Current]
}

// Answered reports whether the current question has a recorded answer.
func (a QuizAttempt) Answered() bool {
	return a.Answers[a.Current] != ""
}

// WithAnswer records label for the current question without advancing.
func (a QuizAttempt) WithAnswer(label string) QuizAttempt {
	answers := make([]string, len(a.Answers))
	copy(answers, a.Answers)
	answers[a.Current] = label
	a.Answers = answers
	return a
}

// Advanced moves to the next question, or to the finished state when the
// current question is the last one.
func (a QuizAttempt) Advanced() QuizAttempt {
	if a.Current < a.Len()-1 {
		a.Current++
		return a
	}
	a.Finished = true
	return a
}

// Retreated moves to the previous question. At the first question it is a
// no-op. From the finished state it clears Finished and resumes at the
// last question.
func (a QuizAttempt) Retreated() QuizAttempt {
	if a.Finished {
		a.Finished = false
		return a
	}
	if a.Current > 0 {
		a.Current--
	}
	return a
}

// Reset re-initialises the attempt against the same quiz.
func (a QuizAttempt) Reset() QuizAttempt {
	return NewQuizAttempt(a.Quiz)
}

// QuizScore is the outcome of a finished attempt.
type QuizScore struct {
	// Correct is the number of correctly answered questions.
	Correct int

	// Total is the number of questions.
	Total int

	// PerQuestion holds correctness per question, ordered as Questions.
	// An unanswered question is never correct.
	PerQuestion []bool
}

// Score computes the attempt outcome. It is only defined once the attempt
// is finished; callers gate on Finished (the engine returns ErrNotFinished
// otherwise).
func (a QuizAttempt) Score() QuizScore {
	score := QuizScore{
		Total:       a.Len(),
		PerQuestion: make([]bool, a.Len()),
	}
	for i, q := range a.Quiz.Questions {
		if a.Answers[i] != "" && a.Answers[i] == q.CorrectLabel {
			score.Correct++
			score.PerQuestion[i] = true
		}
	}
	return score
}
