package imapmail

import (
	"errors"
	"io"
	"mime"
	"regexp"
	"strings"

	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
)

const snippetRunes = 200

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ParseMessage reads an RFC 5322 message and returns decoded headers and the
// first text/plain part. HTML is used, stripped of tags, when no plain part exists.
func ParseMessage(r io.Reader) (Message, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return Message{}, err
	}
	defer mr.Close()

	headers := make(map[string]string)
	fields := mr.Header.Fields()
	for fields.Next() {
		key := strings.ToLower(fields.Key())
		if _, ok := headers[key]; ok {
			continue
		}
		value, err := fields.Text()
		if err != nil {
			value = fields.Value()
		}
		headers[key] = value
	}

	msg := Message{Headers: headers}
	if date, err := mr.Header.Date(); err == nil {
		msg.Date = date
	}

	var plain, html string
	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Unknown charsets or broken parts still yield what was read so far.
			break
		}

		h, ok := p.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		mediaType, _, _ := mime.ParseMediaType(h.Get("Content-Type"))
		if mediaType == "" {
			mediaType = "text/plain"
		}

		body, err := io.ReadAll(p.Body)
		if err != nil {
			continue
		}
		switch mediaType {
		case "text/plain":
			if plain == "" {
				plain = string(body)
			}
		case "text/html":
			if html == "" {
				html = string(body)
			}
		}
	}

	msg.Body = plain
	if msg.Body == "" && html != "" {
		msg.Body = strings.TrimSpace(whitespaceRe.ReplaceAllString(htmlTagRe.ReplaceAllString(html, " "), " "))
	}
	msg.Snippet = snippet(msg.Body)
	return msg, nil
}

func snippet(body string) string {
	s := strings.TrimSpace(whitespaceRe.ReplaceAllString(body, " "))
	runes := []rune(s)
	if len(runes) > snippetRunes {
		return string(runes[:snippetRunes])
	}
	return s
}
