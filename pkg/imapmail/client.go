package imapmail

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
)

const defaultMailbox = "INBOX"

// session is the part of *client.Client the Client drives.
type session interface {
	State() imap.ConnState
	UidSearch(criteria *imap.SearchCriteria) ([]uint32, error)
	UidFetch(seqset *imap.SeqSet, items []imap.FetchItem, ch chan *imap.Message) error
	Logout() error
}

// Client keeps one logged-in session with the mailbox selected and reuses it
// across calls. A session that failed or was closed by the server is replaced
// on the next call. Calls are serialised.
type Client struct {
	cfg  Config
	dial func(cfg Config) (session, error)

	mu   sync.Mutex
	conn session
}

// New validates cfg and returns a Client. No connection is made yet.
func New(cfg Config) (*Client, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddr
	}
	if cfg.Mailbox == "" {
		cfg.Mailbox = defaultMailbox
	}
	return &Client{cfg: cfg, dial: dialSession}, nil
}

func dialSession(cfg Config) (session, error) {
	var (
		conn *client.Client
		err  error
	)
	if cfg.TLS {
		conn, err = client.DialTLS(cfg.Addr, nil)
	} else {
		conn, err = client.Dial(cfg.Addr)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to imap server: %w", err)
	}

	if err := conn.Login(cfg.Username, cfg.Password); err != nil {
		conn.Logout()
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	if _, err := conn.Select(cfg.Mailbox, true); err != nil {
		conn.Logout()
		return nil, fmt.Errorf("failed to select mailbox %s: %w", cfg.Mailbox, err)
	}
	return conn, nil
}

// session returns the live session, dialing a new one when needed. c.mu must be held.
func (c *Client) session(ctx context.Context) (session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.conn != nil && c.conn.State() == imap.SelectedState {
		return c.conn, nil
	}
	c.reset()

	conn, err := c.dial(c.cfg)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return conn, nil
}

// reset drops the current session. c.mu must be held.
func (c *Client) reset() {
	if c.conn != nil {
		c.conn.Logout()
		c.conn = nil
	}
}

// Close logs out of the current session, if any.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Logout()
	c.conn = nil
	return err
}

// ListMessageIDs returns UIDs of matching messages, newest first.
func (c *Client) ListMessageIDs(ctx context.Context, opts SearchOptions) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, err := c.session(ctx)
	if err != nil {
		return nil, err
	}

	uids, err := conn.UidSearch(buildCriteria(opts))
	if err != nil {
		c.reset()
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}

	sort.Slice(uids, func(i, j int) bool { return uids[i] > uids[j] })
	if opts.MaxResults > 0 && len(uids) > opts.MaxResults {
		uids = uids[:opts.MaxResults]
	}

	ids := make([]string, 0, len(uids))
	for _, uid := range uids {
		ids = append(ids, strconv.FormatUint(uint64(uid), 10))
	}
	return ids, nil
}

// GetMessage fetches the full message with the given UID without marking it seen.
func (c *Client) GetMessage(ctx context.Context, id string) (Message, error) {
	uid, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return Message{}, fmt.Errorf("invalid message id %q: %w", id, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	conn, err := c.session(ctx)
	if err != nil {
		return Message{}, err
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(uint32(uid))

	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{section.FetchItem(), imap.FetchInternalDate, imap.FetchUid}

	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- conn.UidFetch(seqSet, items, messages)
	}()

	var fetched *imap.Message
	for msg := range messages {
		if fetched == nil {
			fetched = msg
		}
	}
	if err := <-done; err != nil {
		c.reset()
		return Message{}, fmt.Errorf("failed to fetch message %s: %w", id, err)
	}
	if fetched == nil {
		return Message{}, ErrMessageMissing
	}

	r := fetched.GetBody(section)
	if r == nil {
		return Message{}, ErrMessageMissing
	}

	parsed, err := ParseMessage(r)
	if err != nil {
		return Message{}, fmt.Errorf("failed to parse message %s: %w", id, err)
	}
	parsed.ID = id
	if parsed.Date.IsZero() {
		parsed.Date = fetched.InternalDate
	}
	return parsed, nil
}

// buildCriteria folds every keyword into a right-nested OR tree under a SINCE bound.
func buildCriteria(opts SearchOptions) *imap.SearchCriteria {
	leaves := make([]*imap.SearchCriteria, 0, len(opts.SubjectKeywords)+len(opts.BodyKeywords))
	for _, kw := range opts.SubjectKeywords {
		leaf := imap.NewSearchCriteria()
		leaf.Header.Add("Subject", kw)
		leaves = append(leaves, leaf)
	}
	for _, kw := range opts.BodyKeywords {
		leaf := imap.NewSearchCriteria()
		leaf.Body = []string{kw}
		leaves = append(leaves, leaf)
	}

	root := imap.NewSearchCriteria()
	if !opts.Since.IsZero() {
		root.Since = opts.Since
	}

	switch len(leaves) {
	case 0:
	case 1:
		root.Header = leaves[0].Header
		root.Body = leaves[0].Body
	default:
		tree := leaves[len(leaves)-1]
		for i := len(leaves) - 2; i >= 1; i-- {
			node := imap.NewSearchCriteria()
			node.Or = [][2]*imap.SearchCriteria{{leaves[i], tree}}
			tree = node
		}
		root.Or = [][2]*imap.SearchCriteria{{leaves[0], tree}}
	}
	return root
}
