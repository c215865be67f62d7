package email

import (
	"time"

	"github.com/kvbuilders/app/config"
)

// Config holds email service configuration
type Config struct {
	Enabled bool
	From    string

	// SMTP settings
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPUseTLS         bool
	SMTPTimeoutSeconds int

	// Business identity rendered into templates
	BusinessName    string
	BusinessPhone   string
	BusinessEmail   string
	BusinessAddress string

	// OwnerAddress receives new-inquiry notifications
	OwnerAddress string
}

// DefaultConfig returns sensible defaults for email configuration
func DefaultConfig() Config {
	return Config{
		Enabled:            false,
		SMTPPort:           587,
		SMTPUseTLS:         true,
		SMTPTimeoutSeconds: 30,
		BusinessName:       "KV Builders",
	}
}

// SMTPTimeout returns the SMTP timeout as a duration
func (c Config) SMTPTimeout() time.Duration {
	if c.SMTPTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.SMTPTimeoutSeconds) * time.Second
}

// Owner returns the address that receives inquiry notifications.
func (c Config) Owner() string {
	if c.OwnerAddress != "" {
		return c.OwnerAddress
	}
	return c.From
}

// FromCentralConfig converts central config.EmailConfig to package Config
func FromCentralConfig(c config.EmailConfig) Config {
	cfg := Config{
		Enabled:            c.Enabled,
		From:               c.From,
		SMTPHost:           c.SMTP.Host,
		SMTPPort:           c.SMTP.Port,
		SMTPUsername:       c.SMTP.Username,
		SMTPPassword:       c.SMTP.Password,
		SMTPUseTLS:         c.SMTP.UseTLS,
		SMTPTimeoutSeconds: c.SMTP.TimeoutSeconds,
		BusinessName:       c.BusinessName,
		BusinessPhone:      c.BusinessPhone,
		BusinessEmail:      c.BusinessEmail,
		BusinessAddress:    c.BusinessAddress,
		OwnerAddress:       c.OwnerAddress,
	}

	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = DefaultConfig().SMTPPort
	}
	if cfg.SMTPTimeoutSeconds == 0 {
		cfg.SMTPTimeoutSeconds = DefaultConfig().SMTPTimeoutSeconds
	}
	if cfg.BusinessName == "" {
		cfg.BusinessName = DefaultConfig().BusinessName
	}

	return cfg
}
