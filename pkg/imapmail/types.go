package imapmail

import (
	"errors"
	"time"
)

var (
	ErrMissingAddr    = errors.New("imapmail: server address is required")
	ErrMessageMissing = errors.New("imapmail: message not found")
)

// Config holds IMAP connection settings. Password is supplied externally.
type Config struct {
	Addr     string
	Username string
	Password string
	Mailbox  string
	TLS      bool
}

// SearchOptions approximates a Gmail search: any keyword in Subject or any
// body keyword in the body, received on or after Since.
type SearchOptions struct {
	SubjectKeywords []string
	BodyKeywords    []string
	Since           time.Time
	MaxResults      int
}

// Message is an IMAP message reduced to headers and plaintext.
type Message struct {
	ID      string
	Headers map[string]string // lower-cased keys
	Body    string
	Snippet string
	Date    time.Time
}
