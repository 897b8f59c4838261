package gmail

import "time"

// Message is a Gmail message reduced to headers and plaintext.
type Message struct {
	ID           string
	ThreadID     string
	Headers      map[string]string // lower-cased keys
	Body         string
	Snippet      string
	InternalDate time.Time
}
