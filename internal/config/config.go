package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Flash  FlashConfig  `mapstructure:"flash"  validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// FlashConfig contains the settings for the notifications carried across
// redirects in a signed cookie.
type FlashConfig struct {
	// Secret signs flash cookies with HMAC-SHA256.
	Secret string `mapstructure:"secret" validate:"required,min=32"`
	// TTLSeconds is how long a notification survives if never displayed.
	TTLSeconds int `mapstructure:"ttl_seconds" validate:"gt=0"`
	// CookieSecure marks the flash cookie Secure (HTTPS only).
	CookieSecure bool `mapstructure:"cookie_secure"`
}

// AuthConfig contains settings for the authentication step of a submission.
type AuthConfig struct {
	// StandInDelayMillis makes the stand-in authenticator wait before
	// succeeding, to mimic a backend round trip.
	StandInDelayMillis int `mapstructure:"stand_in_delay_ms" validate:"gte=0"`
}
