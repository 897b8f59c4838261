package gmail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jhillyerd/enmime"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const (
	user = "me"

	// maxPageSize is the largest page Users.Messages.List accepts.
	maxPageSize = 500
)

// Client wraps the Gmail API service.
type Client struct {
	service *gmailapi.Service
}

// NewClientFromFiles creates a Gmail client from an OAuth client secret and a
// cached token. The token is refreshed transparently by the oauth2 transport.
func NewClientFromFiles(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	config, err := OAuthConfigFromFile(credentialsPath)
	if err != nil {
		return nil, err
	}
	tok, err := TokenFromFile(tokenPath)
	if err != nil {
		return nil, err
	}

	svc, err := gmailapi.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Gmail client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := gmailapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListMessageIDs returns up to maxResults ids of messages matching query,
// newest first.
func (c *Client) ListMessageIDs(ctx context.Context, query string, maxResults int64) ([]string, error) {
	ids := make([]string, 0)
	pageToken := ""

	for int64(len(ids)) < maxResults {
		pageSize := maxResults - int64(len(ids))
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}

		call := c.service.Users.Messages.List(user).Q(query).MaxResults(pageSize).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list messages: %w", err)
		}

		for _, m := range resp.Messages {
			ids = append(ids, m.Id)
		}

		if resp.NextPageToken == "" || len(resp.Messages) == 0 {
			break
		}
		pageToken = resp.NextPageToken
	}

	if int64(len(ids)) > maxResults {
		ids = ids[:maxResults]
	}
	return ids, nil
}

// GetMessage fetches one message in raw form and extracts headers and text.
func (c *Client) GetMessage(ctx context.Context, id string) (Message, error) {
	msg, err := c.service.Users.Messages.Get(user, id).Format("raw").Context(ctx).Do()
	if err != nil {
		return Message{}, fmt.Errorf("failed to get message %s: %w", id, err)
	}

	raw, err := decodeRaw(msg.Raw)
	if err != nil {
		return Message{}, fmt.Errorf("failed to decode message %s: %w", id, err)
	}

	parsed, err := ParseMIME(raw)
	if err != nil {
		return Message{}, fmt.Errorf("failed to parse message %s: %w", id, err)
	}

	parsed.ID = msg.Id
	parsed.ThreadID = msg.ThreadId
	parsed.Snippet = msg.Snippet
	if msg.InternalDate > 0 {
		parsed.InternalDate = time.UnixMilli(msg.InternalDate)
	}
	return parsed, nil
}

// ParseMIME extracts lower-cased headers and a plaintext body from an RFC 5322
// message. HTML-only messages are down-converted to text.
func ParseMIME(raw []byte) (Message, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return Message{}, err
	}

	headers := make(map[string]string)
	for _, key := range env.GetHeaderKeys() {
		headers[strings.ToLower(key)] = env.GetHeader(key)
	}

	return Message{
		Headers: headers,
		Body:    env.Text,
	}, nil
}

// Gmail sends URL-safe base64, with or without padding.
func decodeRaw(s string) ([]byte, error) {
	if b, err := base64.URLEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawURLEncoding.DecodeString(s)
}
