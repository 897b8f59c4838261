package model

import "time"

// Suggestion is a proposed PTO window derived from mailbox content.
type Suggestion struct {
	WindowStart     time.Time
	WindowEnd       time.Time
	Reason          string
	SourceMessageID string  // Empty when the model did not name a message
	Confidence      float64 // 0..1
}
