package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Mail providers selectable via MAIL_PROVIDER.
const (
	ProviderSMTP       = "smtp"
	ProviderMailerSend = "mailersend"
	ProviderDev        = "dev" // print emails to logs instead of sending
)

type Config struct {
	Server    ServerConfig
	App       AppConfig
	Mail      MailConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Contact   ContactConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type AppConfig struct {
	Env string
}

type MailConfig struct {
	Provider      string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPUseTLS    bool
	MailerSendKey string
	FromEmail     string
	FromName      string
	AdminEmail    string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	ContactForm int
	Window      time.Duration
}

type ContactConfig struct {
	MessageMax int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		App: AppConfig{
			Env: getEnv("APP_ENV", "development"),
		},
		Mail: MailConfig{
			Provider:      getEnv("MAIL_PROVIDER", ProviderDev),
			SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:      getInt("SMTP_PORT", 587),
			SMTPUser:      getEnv("SMTP_USER", ""),
			SMTPPass:      getEnv("SMTP_PASS", ""),
			SMTPUseTLS:    getBool("SMTP_USE_TLS", false),
			MailerSendKey: getEnv("MAILERSEND_API_KEY", ""),
			FromEmail:     getEnv("MAIL_FROM", "noreply@phungtienthanh.com"),
			FromName:      getEnv("MAIL_FROM_NAME", "Portfolio Contact"),
			AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getStrings("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		RateLimit: RateLimitConfig{
			ContactForm: getInt("RATE_LIMIT_CONTACT_FORM", 5),
			Window:      getDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Contact: ContactConfig{
			MessageMax: getInt("CONTACT_MESSAGE_MAX", 1000),
		},
	}
}

// Ready reports whether the mail configuration is complete enough to
// dispatch a contact submission. The contact handler checks this per
// request as a safety net behind Validate.
func (m MailConfig) Ready() bool {
	if m.AdminEmail == "" || m.FromEmail == "" {
		return false
	}
	switch m.Provider {
	case ProviderSMTP:
		return m.SMTPUser != "" && m.SMTPPass != ""
	case ProviderMailerSend:
		return m.MailerSendKey != ""
	}
	return true
}

// Validate checks required settings at startup so a misconfigured
// process fails early instead of on the first submission.
func (c *Config) Validate() error {
	var missing []string
	if c.Mail.AdminEmail == "" {
		missing = append(missing, "ADMIN_EMAIL")
	}
	if c.Mail.FromEmail == "" {
		missing = append(missing, "MAIL_FROM")
	}
	switch c.Mail.Provider {
	case ProviderSMTP:
		if c.Mail.SMTPUser == "" {
			missing = append(missing, "SMTP_USER")
		}
		if c.Mail.SMTPPass == "" {
			missing = append(missing, "SMTP_PASS")
		}
	case ProviderMailerSend:
		if c.Mail.MailerSendKey == "" {
			missing = append(missing, "MAILERSEND_API_KEY")
		}
	case ProviderDev:
	default:
		return fmt.Errorf("unknown MAIL_PROVIDER %q", c.Mail.Provider)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getStrings(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
