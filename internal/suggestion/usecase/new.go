package usecase

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"smart-pto/internal/suggestion"
	"smart-pto/internal/suggestion/repository"
	"smart-pto/pkg/datemath"
	"smart-pto/pkg/gemini"
	"smart-pto/pkg/log"
)

const (
	defaultLookbackDays = 365
	defaultMaxBodyChars = 1500
)

// DefaultTravelDestinations are the place names the rule-based pass looks for.
var DefaultTravelDestinations = []string{"japan", "tokyo"}

// Config tunes the analyzer. Zero values fall back to defaults.
type Config struct {
	LookbackDays       int
	MaxBodyChars       int
	TravelDestinations []string
}

// implUseCase is the private implementation of suggestion.UseCase.
type implUseCase struct {
	l      log.Logger
	repo   repository.MailRepository
	llm    gemini.IGemini // nil when no API key is configured
	parser *datemath.Parser
	cfg    Config
	now    func() time.Time

	travelRe *regexp.Regexp
	titler   cases.Caser
}

// New creates a suggestion UseCase. repo may be nil when no mail provider is
// configured; Analyze then returns suggestion.ErrMailUnavailable.
func New(l log.Logger, repo repository.MailRepository, llm gemini.IGemini, parser *datemath.Parser, cfg Config) suggestion.UseCase {
	return newUseCase(l, repo, llm, parser, cfg, time.Now)
}

func newUseCase(l log.Logger, repo repository.MailRepository, llm gemini.IGemini, parser *datemath.Parser, cfg Config, now func() time.Time) *implUseCase {
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = defaultLookbackDays
	}
	if cfg.MaxBodyChars <= 0 {
		cfg.MaxBodyChars = defaultMaxBodyChars
	}
	if len(cfg.TravelDestinations) == 0 {
		cfg.TravelDestinations = DefaultTravelDestinations
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		llm:      llm,
		parser:   parser,
		cfg:      cfg,
		now:      now,
		travelRe: compileTravelPattern(cfg.TravelDestinations),
		titler:   cases.Title(language.English),
	}
}

func compileTravelPattern(destinations []string) *regexp.Regexp {
	quoted := make([]string, 0, len(destinations))
	for _, d := range destinations {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(d)))
	}
	return regexp.MustCompile(`(?i)\b(?:travel to |going to |trip to )?(` + strings.Join(quoted, "|") + `)\b`)
}
