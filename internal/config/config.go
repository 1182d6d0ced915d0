package config

import (
	"os"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	// PublicBaseURL is the externally reachable base URL of this service,
	// used to build password-reset links.
	PublicBaseURL string

	CookieDomain string
	CookieSecure bool
}

func Load() Config {

	cfg := Config{

		AppPort: getenv("APP_PORT", "3000"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getenv("SMTP_PORT", "587"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     os.Getenv("MAIL_FROM"),

		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:3000"),

		CookieDomain: os.Getenv("COOKIE_DOMAIN"),

		// Secure cookies are the default; opt out only for local
		// plain-HTTP development.
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
