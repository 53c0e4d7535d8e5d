package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultSenderEmail    = "noreply@mfrooshtrade.com"
	DefaultRecipientEmail = "info@mfrooshtrade.com"
)

type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	GinMode        string   `env:"GIN_MODE" envDefault:"debug"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	PingMessage    string   `env:"PING_MESSAGE" envDefault:"ping"`

	// Enquiry addressing. COMPANY_EMAIL is used for both ends unless overridden.
	CompanyEmail     string `env:"COMPANY_EMAIL"`
	EnquiryFromEmail string `env:"ENQUIRY_FROM_EMAIL"`
	EnquiryToEmail   string `env:"ENQUIRY_TO_EMAIL"`

	// Resend (preferred provider)
	ResendAPIKey string `env:"RESEND_API_KEY"`
	// Generic HTTP email gateway
	EmailServiceURL string `env:"EMAIL_SERVICE_URL"`
	EmailServiceKey string `env:"EMAIL_SERVICE_KEY"`
	// SMTP relay
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	// Zero means the outbound call is not bounded.
	DeliveryTimeout time.Duration `env:"DELIVERY_TIMEOUT" envDefault:"0s"`

	// Logging
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"30"`
}

// LoadConfig reads .env and then .env.local (which overrides) before parsing
// the process environment. Missing files are not an error.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")

	return Parse()
}

// Parse builds a Config from the current process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	origins := cfg.AllowedOrigins[:0]
	for _, o := range cfg.AllowedOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.AllowedOrigins = origins

	return cfg, nil
}

func (c *Config) SenderEmail() string {
	return firstNonEmpty(c.EnquiryFromEmail, c.CompanyEmail, DefaultSenderEmail)
}

func (c *Config) RecipientEmail() string {
	return firstNonEmpty(c.EnquiryToEmail, c.CompanyEmail, DefaultRecipientEmail)
}

func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// ProviderSummary reports which delivery credentials are present without
// revealing their values.
func (c *Config) ProviderSummary() map[string]string {
	return map[string]string{
		"RESEND_API_KEY":    setOrNot(c.ResendAPIKey),
		"EMAIL_SERVICE_URL": setOrNot(c.EmailServiceURL),
		"EMAIL_SERVICE_KEY": setOrNot(c.EmailServiceKey),
		"SMTP_HOST":         setOrNot(c.SMTPHost),
		"COMPANY_EMAIL":     firstNonEmpty(c.CompanyEmail, "NOT SET"),
	}
}

func setOrNot(v string) string {
	if v == "" {
		return "NOT SET"
	}
	return "SET"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
