package email

import (
	"context"
	"errors"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

var ErrDisabled = errors.New("email sending is disabled")

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// Enabled reports whether SMTP is configured at all. The service runs
// fine without it, senders just get ErrDisabled.
func (c Config) Enabled() bool {
	return c.Host != "" && c.From != ""
}

type Message struct {
	To       string
	Subject  string
	TextBody string
}

type Client struct {
	cfg Config
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{cfg: cfg}
}

// Send dispatches a plain-text email over SMTP, bounded by the client
// timeout or the context deadline, whichever comes first.
func (c *Client) Send(ctx context.Context, m Message) error {
	if !c.cfg.Enabled() {
		return ErrDisabled
	}

	to := strings.TrimSpace(m.To)
	if to == "" {
		return errors.New("email: recipient is required")
	}
	if strings.TrimSpace(m.Subject) == "" {
		return errors.New("email: subject is required")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", c.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.TextBody)

	d := gomail.NewDialer(c.cfg.Host, c.cfg.Port, c.cfg.Username, c.cfg.Password)

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(msg)
	}()

	wait := c.cfg.Timeout
	if dl, ok := ctx.Deadline(); ok {
		if until := time.Until(dl); until > 0 && until < wait {
			wait = until
		}
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}
