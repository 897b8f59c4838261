package imap

import (
	"context"

	"smart-pto/internal/model"
	"smart-pto/internal/suggestion/repository"
	"smart-pto/pkg/imapmail"
)

// Client is the subset of pkg/imapmail used here.
type Client interface {
	ListMessageIDs(ctx context.Context, opts imapmail.SearchOptions) ([]string, error)
	GetMessage(ctx context.Context, id string) (imapmail.Message, error)
}

type implRepository struct {
	client Client
}

// New creates an IMAP-backed MailRepository. The Gmail query string is ignored
// in favour of the keyword fields.
func New(client Client) repository.MailRepository {
	return &implRepository{client: client}
}

func (r *implRepository) ListMessageIDs(ctx context.Context, opt repository.ListMessagesOptions) ([]string, error) {
	return r.client.ListMessageIDs(ctx, imapmail.SearchOptions{
		SubjectKeywords: opt.SubjectKeywords,
		BodyKeywords:    opt.BodyKeywords,
		Since:           opt.Since,
		MaxResults:      opt.MaxResults,
	})
}

func (r *implRepository) GetMessage(ctx context.Context, id string) (model.Message, error) {
	msg, err := r.client.GetMessage(ctx, id)
	if err != nil {
		return model.Message{}, err
	}

	headers := msg.Headers
	if headers == nil {
		headers = make(map[string]string)
	}
	if _, ok := headers["date"]; !ok && !msg.Date.IsZero() {
		headers["date"] = msg.Date.Format("Mon, 02 Jan 2006 15:04:05 -0700")
	}
	return model.Message{
		ID:      msg.ID,
		Headers: headers,
		Body:    msg.Body,
		Snippet: msg.Snippet,
	}, nil
}
