package gmail_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"smart-pto/pkg/gmail"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

const rawMessage = "From: Alex <alex@example.com>\r\n" +
	"To: ryan@example.com\r\n" +
	"Subject: Trip to Japan\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"I am going to Tokyo from Oct 3 to Oct 9.\r\n"

func newTestClient(t *testing.T, handler http.HandlerFunc) *gmail.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gmail.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestListMessageIDs(t *testing.T) {
	var pages int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gmail/v1/users/me/messages" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("q") == "" {
			t.Errorf("expected query to be forwarded")
		}
		pages++
		if r.URL.Query().Get("pageToken") == "" {
			w.Write([]byte(`{"messages":[{"id":"m1"},{"id":"m2"}],"nextPageToken":"p2"}`))
			return
		}
		w.Write([]byte(`{"messages":[{"id":"m3"},{"id":"m4"}]}`))
	})

	ids, err := client.ListMessageIDs(context.Background(), "subject:holiday", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %d (%v)", len(ids), ids)
	}
	if ids[0] != "m1" || ids[2] != "m3" {
		t.Errorf("unexpected ids: %v", ids)
	}
	if pages != 2 {
		t.Errorf("expected 2 pages, got %d", pages)
	}
}

func TestListMessageIDsFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := client.ListMessageIDs(context.Background(), "x", 10); err == nil {
		t.Fatal("expected error on server failure")
	}
}

func TestGetMessage(t *testing.T) {
	encoded := base64.URLEncoding.EncodeToString([]byte(rawMessage))
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gmail/v1/users/me/messages/m1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("format") != "raw" {
			t.Errorf("expected raw format, got %q", r.URL.Query().Get("format"))
		}
		w.Write([]byte(`{"id":"m1","threadId":"t1","snippet":"I am going to Tokyo","internalDate":"1700000000000","raw":"` + encoded + `"}`))
	})

	msg, err := client.GetMessage(context.Background(), "m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.ID != "m1" || msg.ThreadID != "t1" {
		t.Errorf("unexpected ids: %+v", msg)
	}
	if msg.Headers["subject"] != "Trip to Japan" {
		t.Errorf("unexpected subject: %q", msg.Headers["subject"])
	}
	if !strings.Contains(msg.Headers["from"], "alex@example.com") {
		t.Errorf("unexpected from: %q", msg.Headers["from"])
	}
	if !strings.Contains(msg.Body, "from Oct 3 to Oct 9") {
		t.Errorf("unexpected body: %q", msg.Body)
	}
	if msg.Snippet != "I am going to Tokyo" {
		t.Errorf("unexpected snippet: %q", msg.Snippet)
	}
	if msg.InternalDate.IsZero() {
		t.Error("expected internal date to be set")
	}
}

func TestParseMIMEHTMLOnly(t *testing.T) {
	raw := "Subject: OOO\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"\r\n" +
		"<p>Out of office <b>next Friday</b></p>\r\n"

	msg, err := gmail.ParseMIME([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msg.Body, "next Friday") {
		t.Errorf("expected html to be down-converted, got %q", msg.Body)
	}
	if strings.Contains(msg.Body, "<b>") {
		t.Errorf("expected tags to be stripped, got %q", msg.Body)
	}
}

func TestTokenFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token.json")

	if _, err := gmail.TokenFromFile(path); err != gmail.ErrTokenNotFound {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}

	tok := &oauth2.Token{AccessToken: "dummy", TokenType: "Bearer"}
	if err := gmail.SaveToken(path, tok); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	got, err := gmail.TokenFromFile(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if got.AccessToken != "dummy" {
		t.Errorf("unexpected token: %+v", got)
	}

	os.WriteFile(path, []byte(`{"broken": true`), 0600)
	if _, err := gmail.TokenFromFile(path); err == nil {
		t.Error("expected parse failure on bad token")
	}
}

func TestNewClientFromFilesMissingToken(t *testing.T) {
	dir := t.TempDir()
	creds := filepath.Join(dir, "credentials.json")
	os.WriteFile(creds, []byte(`{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`), 0600)

	_, err := gmail.NewClientFromFiles(context.Background(), creds, filepath.Join(dir, "token.json"))
	if err != gmail.ErrTokenNotFound {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}

	if _, err := gmail.NewClientFromFiles(context.Background(), filepath.Join(dir, "missing.json"), "x"); err == nil {
		t.Error("expected error for missing credentials")
	}
}
