package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-pto/internal/model"
	"smart-pto/internal/suggestion/repository"
	"smart-pto/pkg/datemath"
	"smart-pto/pkg/gemini"
	"smart-pto/pkg/log"
)

var errBoom = errors.New("boom")

type mockRepo struct {
	ids      []string
	listErr  error
	messages map[string]model.Message
	gotOpt   repository.ListMessagesOptions
	fetched  []string
}

func (m *mockRepo) ListMessageIDs(ctx context.Context, opt repository.ListMessagesOptions) ([]string, error) {
	m.gotOpt = opt
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.ids, nil
}

func (m *mockRepo) GetMessage(ctx context.Context, id string) (model.Message, error) {
	m.fetched = append(m.fetched, id)
	msg, ok := m.messages[id]
	if !ok {
		return model.Message{}, errBoom
	}
	return msg, nil
}

type mockLLM struct {
	text   string
	err    error
	calls  int
	prompt string
}

func (m *mockLLM) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	return nil, errors.New("not implemented")
}

func (m *mockLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.prompt = prompt
	return m.text, m.err
}

func (m *mockLLM) Model() string { return "mock-model" }

var fixedNow = time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo repository.MailRepository, llm gemini.IGemini) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return newUseCase(log.NewNop(), repo, llm, parser, Config{}, func() time.Time { return fixedNow })
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
