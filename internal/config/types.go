package config

// Config is the root configuration for the BeOfficial command center.
// SMTP settings are deliberately absent: delivery credentials come from the
// environment and are re-read on every send.
type Config struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Brand   BrandConfig   `yaml:"brand,omitempty"`
	Digest  DigestConfig  `yaml:"digest,omitempty"`
}

// ServerConfig controls the HTTP API server.
type ServerConfig struct {
	Port           int      `yaml:"port,omitempty"`
	Bind           string   `yaml:"bind,omitempty"` // "loopback" | "lan" | "custom"
	CustomBindHost string   `yaml:"customBindHost,omitempty"`
	AllowedOrigins []string `yaml:"allowedOrigins,omitempty"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level,omitempty"`        // "silent" | "fatal" | "error" | "warn" | "info" | "debug" | "trace"
	ConsoleStyle string `yaml:"consoleStyle,omitempty"` // "pretty" | "json"
}

// BrandConfig carries the quick settings shown alongside the roster.
type BrandConfig struct {
	VoiceNotes string `yaml:"voiceNotes,omitempty"`
	CTAURL     string `yaml:"ctaUrl,omitempty"`
}

// DigestConfig overrides the stock EARLYBIRD brief template.
type DigestConfig struct {
	Subject string   `yaml:"subject,omitempty"`
	Intro   string   `yaml:"intro,omitempty"`
	Items   []string `yaml:"items,omitempty"`
	Footer  string   `yaml:"footer,omitempty"`
}
