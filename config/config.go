package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	MailProviderGmail = "gmail"
	MailProviderIMAP  = "imap"
	MailProviderNone  = "none"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// SmartPTO specifics
	PTO            PTOConfig
	Gemini         GeminiConfig
	Mail           MailConfig
	Gmail          GmailConfig
	IMAP           IMAPConfig
	Analyzer       AnalyzerConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type PTOConfig struct {
	Timezone string // IANA name deciding what "today" is
}

// GeminiConfig: an empty APIKey disables every LLM path.
type GeminiConfig struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration
}

type MailConfig struct {
	Provider string // gmail, imap or none
}

type GmailConfig struct {
	CredentialsPath string
	TokenPath       string
}

type IMAPConfig struct {
	Addr     string
	Username string
	Password string
	Mailbox  string
	TLS      bool
}

type AnalyzerConfig struct {
	LookbackDays       int
	MaxBodyChars       int
	TravelDestinations []string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// Every key can be overridden from the environment, e.g. GEMINI_API_KEY.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	cfg.PTO.Timezone = viper.GetString("pto.timezone")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")

	// Mail
	cfg.Mail.Provider = strings.ToLower(viper.GetString("mail.provider"))
	switch cfg.Mail.Provider {
	case MailProviderGmail, MailProviderIMAP, MailProviderNone:
	default:
		return nil, fmt.Errorf("unsupported mail.provider %q (want gmail, imap or none)", cfg.Mail.Provider)
	}

	cfg.Gmail.CredentialsPath = viper.GetString("gmail.credentials_path")
	cfg.Gmail.TokenPath = viper.GetString("gmail.token_path")

	cfg.IMAP.Addr = viper.GetString("imap.addr")
	cfg.IMAP.Username = viper.GetString("imap.username")
	cfg.IMAP.Password = viper.GetString("imap.password")
	cfg.IMAP.Mailbox = viper.GetString("imap.mailbox")
	cfg.IMAP.TLS = viper.GetBool("imap.tls")

	// Analyzer
	cfg.Analyzer.LookbackDays = viper.GetInt("analyzer.lookback_days")
	cfg.Analyzer.MaxBodyChars = viper.GetInt("analyzer.max_body_chars")
	cfg.Analyzer.TravelDestinations = getList("analyzer.travel_destinations")

	// Google Calendar (optional team absence source)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 30)

	viper.SetDefault("pto.timezone", "UTC")

	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.timeout", "30s")

	viper.SetDefault("mail.provider", MailProviderGmail)
	viper.SetDefault("gmail.credentials_path", "credentials.json")
	viper.SetDefault("gmail.token_path", "token.json")
	viper.SetDefault("imap.mailbox", "INBOX")
	viper.SetDefault("imap.tls", true)

	viper.SetDefault("analyzer.lookback_days", 365)
	viper.SetDefault("analyzer.max_body_chars", 1500)
	viper.SetDefault("analyzer.travel_destinations", "japan,tokyo")

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}

// getList reads a YAML list or a comma-separated string (env vars).
func getList(key string) []string {
	var raw []string
	switch v := viper.Get(key).(type) {
	case string:
		raw = strings.Split(v, ",")
	case []string:
		raw = v
	case []interface{}:
		for _, item := range v {
			raw = append(raw, fmt.Sprint(item))
		}
	}

	var out []string
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
