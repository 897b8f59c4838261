package gmail

import (
	"context"

	"smart-pto/internal/model"
	"smart-pto/internal/suggestion/repository"
	pkgGmail "smart-pto/pkg/gmail"
)

// Client is the subset of pkg/gmail used here.
type Client interface {
	ListMessageIDs(ctx context.Context, query string, maxResults int64) ([]string, error)
	GetMessage(ctx context.Context, id string) (pkgGmail.Message, error)
}

type implRepository struct {
	client Client
}

// New creates a Gmail-backed MailRepository.
func New(client Client) repository.MailRepository {
	return &implRepository{client: client}
}

func (r *implRepository) ListMessageIDs(ctx context.Context, opt repository.ListMessagesOptions) ([]string, error) {
	return r.client.ListMessageIDs(ctx, opt.Query, int64(opt.MaxResults))
}

func (r *implRepository) GetMessage(ctx context.Context, id string) (model.Message, error) {
	msg, err := r.client.GetMessage(ctx, id)
	if err != nil {
		return model.Message{}, err
	}
	return model.Message{
		ID:      msg.ID,
		Headers: msg.Headers,
		Body:    msg.Body,
		Snippet: msg.Snippet,
	}, nil
}
