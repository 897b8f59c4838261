// Package bootstrap builds the collaborators shared by the API server and the CLI
// from configuration. Optional collaborators come back as nil interfaces when they
// are not configured or cannot be reached.
package bootstrap

import (
	"context"

	"smart-pto/config"
	ptoRepo "smart-pto/internal/pto/repository"
	ptoCalendarRepo "smart-pto/internal/pto/repository/gcalendar"
	ptoMemoryRepo "smart-pto/internal/pto/repository/memory"
	"smart-pto/internal/suggestion"
	suggestionRepo "smart-pto/internal/suggestion/repository"
	gmailRepo "smart-pto/internal/suggestion/repository/gmail"
	imapRepo "smart-pto/internal/suggestion/repository/imap"
	suggestionUC "smart-pto/internal/suggestion/usecase"
	"smart-pto/pkg/datemath"
	"smart-pto/pkg/gcalendar"
	"smart-pto/pkg/gemini"
	"smart-pto/pkg/gmail"
	"smart-pto/pkg/imapmail"
	"smart-pto/pkg/log"
)

// NewLogger initialises the zap logger from config.
func NewLogger(cfg *config.Config) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
}

// NewParser returns the date parser for pto.timezone, falling back to UTC.
func NewParser(ctx context.Context, l log.Logger, cfg *config.Config) *datemath.Parser {
	parser, err := datemath.NewParser(cfg.PTO.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.PTO.Timezone, err)
		parser, _ = datemath.NewParser("UTC")
	}
	return parser
}

// NewLLM returns nil when no API key is configured.
func NewLLM(ctx context.Context, l log.Logger, cfg *config.Config) gemini.IGemini {
	if cfg.Gemini.APIKey == "" {
		l.Warn(ctx, "GEMINI_API_KEY not set, LLM features disabled")
		return nil
	}

	client, err := gemini.New(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		APIURL:  cfg.Gemini.APIURL,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		l.Warnf(ctx, "Gemini not available: %v", err)
		return nil
	}

	l.Infof(ctx, "Gemini initialized (model: %s)", client.Model())
	return client
}

// NewMailRepository returns nil when the provider is "none" or cannot be reached.
// The returned cleanup releases the provider's connection and is never nil.
func NewMailRepository(ctx context.Context, l log.Logger, cfg *config.Config) (suggestionRepo.MailRepository, func()) {
	noop := func() {}

	switch cfg.Mail.Provider {
	case config.MailProviderGmail:
		client, err := gmail.NewClientFromFiles(ctx, cfg.Gmail.CredentialsPath, cfg.Gmail.TokenPath)
		if err != nil {
			l.Warnf(ctx, "Gmail not available: %v", err)
			l.Warn(ctx, "Run `smartpto auth` to generate ", cfg.Gmail.TokenPath)
			return nil, noop
		}
		l.Info(ctx, "Gmail initialized")
		return gmailRepo.New(client), noop

	case config.MailProviderIMAP:
		client, err := imapmail.New(imapmail.Config{
			Addr:     cfg.IMAP.Addr,
			Username: cfg.IMAP.Username,
			Password: cfg.IMAP.Password,
			Mailbox:  cfg.IMAP.Mailbox,
			TLS:      cfg.IMAP.TLS,
		})
		if err != nil {
			l.Warnf(ctx, "IMAP not available: %v", err)
			return nil, noop
		}
		l.Infof(ctx, "IMAP initialized (%s)", cfg.IMAP.Addr)
		cleanup := func() {
			if err := client.Close(); err != nil {
				l.Warnf(context.Background(), "IMAP logout: %v", err)
			}
		}
		return imapRepo.New(client), cleanup
	}

	l.Warn(ctx, "Mail provider disabled")
	return nil, noop
}

// NewPTORepository returns the in-memory store, layered with the team calendar
// when google_calendar.credentials_path is set.
func NewPTORepository(ctx context.Context, l log.Logger, cfg *config.Config) ptoRepo.Repository {
	base := ptoMemoryRepo.New()
	if cfg.GoogleCalendar.CredentialsPath == "" {
		return base
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return base
	}

	l.Infof(ctx, "Google Calendar initialized (calendar: %s)", cfg.GoogleCalendar.CalendarID)
	return ptoCalendarRepo.New(l, base, client, cfg.GoogleCalendar.CalendarID)
}

// AnalyzerConfig maps analyzer.* settings onto the suggestion usecase.
func AnalyzerConfig(cfg *config.Config) suggestionUC.Config {
	return suggestionUC.Config{
		LookbackDays:       cfg.Analyzer.LookbackDays,
		MaxBodyChars:       cfg.Analyzer.MaxBodyChars,
		TravelDestinations: cfg.Analyzer.TravelDestinations,
	}
}

// SuggestionUseCase wires the suggestion pipeline for one-shot CLI runs.
// Call cleanup when done.
func SuggestionUseCase(ctx context.Context, l log.Logger, cfg *config.Config) (suggestion.UseCase, func()) {
	parser := NewParser(ctx, l, cfg)
	mailRepo, cleanup := NewMailRepository(ctx, l, cfg)
	return suggestionUC.New(l, mailRepo, NewLLM(ctx, l, cfg), parser, AnalyzerConfig(cfg)), cleanup
}
