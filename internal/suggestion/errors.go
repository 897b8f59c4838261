package suggestion

import "errors"

var (
	ErrMailUnavailable = errors.New("mail provider is not configured")
	ErrListMessages    = errors.New("failed to list mailbox messages")
)
