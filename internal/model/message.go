package model

import "strings"

// Message is a mail item as seen by the suggestion pipeline. It is built once
// by a mail repository and never modified afterwards.
type Message struct {
	ID      string            // Provider message id (Gmail id or IMAP UID)
	Headers map[string]string // Lower-cased header name -> value
	Body    string            // Best-effort plaintext body
	Snippet string            // Short provider preview
}

// Header returns the value of the named header, case-insensitively.
func (m Message) Header(name string) string {
	return m.Headers[strings.ToLower(name)]
}

// Subject returns the Subject header.
func (m Message) Subject() string {
	return m.Header("subject")
}

// From returns the From header.
func (m Message) From() string {
	return m.Header("from")
}
