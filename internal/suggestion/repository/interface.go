package repository

import (
	"context"

	"smart-pto/internal/model"
)

// MailRepository is read-only access to a mailbox.
type MailRepository interface {
	ListMessageIDs(ctx context.Context, opt ListMessagesOptions) ([]string, error)
	GetMessage(ctx context.Context, id string) (model.Message, error)
}
