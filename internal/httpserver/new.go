package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	ptoRepo "smart-pto/internal/pto/repository"
	suggestionRepo "smart-pto/internal/suggestion/repository"
	suggestionUC "smart-pto/internal/suggestion/usecase"
	"smart-pto/pkg/datemath"
	"smart-pto/pkg/gemini"
	"smart-pto/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int

	// Shared collaborators
	llm    gemini.IGemini // nil when no API key is configured
	parser *datemath.Parser

	// PTO domain
	ptoRepo ptoRepo.Repository

	// Suggestion domain
	mailRepo       suggestionRepo.MailRepository // nil when no mail provider is configured
	analyzerConfig suggestionUC.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	LLM    gemini.IGemini
	Parser *datemath.Parser

	PTORepo ptoRepo.Repository

	MailRepo       suggestionRepo.MailRepository
	AnalyzerConfig suggestionUC.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		llm:             cfg.LLM,
		parser:          cfg.Parser,
		ptoRepo:         cfg.PTORepo,
		mailRepo:        cfg.MailRepo,
		analyzerConfig:  cfg.AnalyzerConfig,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.parser == nil {
		return errors.New("date parser is required")
	}
	if srv.ptoRepo == nil {
		return errors.New("pto repository is required")
	}
	return nil
}

// location is the timezone PTO dates are computed in.
func (srv HTTPServer) location() *time.Location {
	return srv.parser.Location()
}
