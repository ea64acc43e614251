// Package mail delivers one plain-text message per call over SMTP with
// STARTTLS. Sends are single-attempt and blocking: no retry, no queue.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	netmail "net/mail"
	"net/smtp"
	"strconv"
	"time"

	"github.com/beofficial/commandcenter/internal/logging"
)

// DefaultTimeout bounds the dial and the whole SMTP exchange.
const DefaultTimeout = 30 * time.Second

// TransportError wraps a failure at any stage of the SMTP exchange. The
// message is atomic: on any failure path nothing has been delivered.
type TransportError struct {
	Stage string // connect, handshake, starttls, auth, send
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("smtp %s: %v", e.Stage, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Dialer opens the TCP connection to the relay. net.Dialer satisfies it;
// tests substitute a counting fake.
type Dialer interface {
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// Mailer performs single-shot SMTP delivery.
type Mailer struct {
	dialer  Dialer
	timeout time.Duration
	log     *logging.Logger
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithDialer overrides the TCP dialer.
func WithDialer(d Dialer) Option {
	return func(m *Mailer) { m.dialer = d }
}

// WithTimeout overrides the connect/transmit timeout.
func WithTimeout(d time.Duration) Option {
	return func(m *Mailer) { m.timeout = d }
}

// New creates a Mailer.
func New(log *logging.Logger, opts ...Option) *Mailer {
	m := &Mailer{
		timeout: DefaultTimeout,
		log:     log.Sub("mail"),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.dialer == nil {
		m.dialer = &net.Dialer{Timeout: m.timeout}
	}
	return m
}

// SendFromEnv reads SMTP configuration from the environment and sends one
// message. Configuration is re-read on every call; if any variable is
// missing the send fails before any network activity.
func (m *Mailer) SendFromEnv(ctx context.Context, to, subject, body string) error {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return err
	}
	return m.Send(ctx, to, subject, body, cfg)
}

// Send transmits one plain-text message: dial, upgrade to TLS, authenticate,
// transmit, close. Any stage failure comes back as a *TransportError and
// nothing is retried.
func (m *Mailer) Send(ctx context.Context, to, subject, body string, cfg Config) error {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))

	dialCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	conn, err := m.dialer.DialContext(dialCtx, "tcp", addr)
	if err != nil {
		return &TransportError{Stage: "connect", Err: err}
	}
	// One deadline covers the entire exchange.
	_ = conn.SetDeadline(time.Now().Add(m.timeout))

	client, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		conn.Close()
		return &TransportError{Stage: "handshake", Err: err}
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: cfg.Host}); err != nil {
		return &TransportError{Stage: "starttls", Err: err}
	}

	auth := smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	if err := client.Auth(auth); err != nil {
		return &TransportError{Stage: "auth", Err: err}
	}

	if err := client.Mail(bareAddress(cfg.From)); err != nil {
		return &TransportError{Stage: "send", Err: err}
	}
	if err := client.Rcpt(bareAddress(to)); err != nil {
		return &TransportError{Stage: "send", Err: err}
	}
	wc, err := client.Data()
	if err != nil {
		return &TransportError{Stage: "send", Err: err}
	}
	if _, err := wc.Write([]byte(message(cfg.From, to, subject, body))); err != nil {
		wc.Close()
		return &TransportError{Stage: "send", Err: err}
	}
	if err := wc.Close(); err != nil {
		return &TransportError{Stage: "send", Err: err}
	}

	// The relay accepted the message at DATA close; a failed QUIT no longer
	// affects delivery.
	if err := client.Quit(); err != nil {
		m.log.Debug().Err(err).Msg("smtp quit failed after accepted message")
	}

	m.log.Info().Str("to", to).Str("host", cfg.Host).Msg("message sent")
	return nil
}

// message builds the RFC 5322 text: headers, blank line, body.
func message(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		from, to, subject, body,
	)
}

// bareAddress extracts the addr-spec from a display-name form like
// "Name <user@host>"; envelope commands take the bare address only.
func bareAddress(s string) string {
	if a, err := netmail.ParseAddress(s); err == nil {
		return a.Address
	}
	return s
}
