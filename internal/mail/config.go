package mail

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// The five environment variables required for delivery, in reporting order.
var envVars = []string{"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM"}

// Config holds SMTP relay settings. It is re-read from the environment on
// every send and never persisted.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// MissingConfigError reports which required environment variables are absent
// or empty. No network attempt is made when one is returned.
type MissingConfigError struct {
	Vars []string
}

func (e *MissingConfigError) Error() string {
	return "missing environment variables: " + strings.Join(e.Vars, ", ")
}

// ConfigFromEnv reads the SMTP_* environment variables. Empty values count
// as missing.
func ConfigFromEnv() (Config, error) {
	var missing []string
	for _, v := range envVars {
		if os.Getenv(v) == "" {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return Config{}, &MissingConfigError{Vars: missing}
	}

	portStr := os.Getenv("SMTP_PORT")
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("SMTP_PORT: %q is not a valid port", portStr)
	}

	return Config{
		Host: os.Getenv("SMTP_HOST"),
		Port: port,
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: os.Getenv("SMTP_FROM"),
	}, nil
}
