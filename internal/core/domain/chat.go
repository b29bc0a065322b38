package domain

import "time"

// Exchange is one question/answer pair within a chat transcript.
type Exchange struct {
	// Question is the user's question as sent.
	Question string

	// Answer is the service's answer.
	Answer string

	// DocumentTitle is the title of the document the answer was drawn from.
	DocumentTitle string

	// AskedAt is when the question was asked, client clock.
	AskedAt time.Time
}
