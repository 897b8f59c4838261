package repository

import "time"

// ListMessagesOptions describes a mailbox search. Query is in Gmail search
// syntax; providers without it use the keyword fields instead.
type ListMessagesOptions struct {
	Query           string
	SubjectKeywords []string
	BodyKeywords    []string
	Since           time.Time
	MaxResults      int
}
