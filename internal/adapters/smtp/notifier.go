package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync"
	"time"

	mail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/silambarasu-a/portfolio-backend/internal/core"
	"github.com/silambarasu-a/portfolio-backend/internal/tmpl"
)

// Config holds the SMTP transport and notification settings. It is derived
// once at startup and immutable afterwards.
type Config struct {
	Host     string
	Port     int
	Secure   *bool // explicit TLS override; nil derives from port
	Username string
	Password string

	FromName      string
	NotifyAddress string
	AutoReply     bool
	TemplatePath  string
}

// deliverFunc performs the actual SMTP delivery. Tests substitute it to
// avoid dialing.
type deliverFunc func(ctx context.Context, msgs ...*mail.Msg) error

// Notifier sends the operator notification (and optional auto-reply) for a
// persisted contact submission over SMTP. One instance per process; safe for
// concurrent use.
type Notifier struct {
	cfg      Config
	logger   *zap.Logger
	template string

	clientOnce sync.Once
	client     *mail.Client
	clientErr  error

	deliver deliverFunc
}

// NewNotifier creates the notification channel. The HTML template is loaded
// here; a missing file degrades to the built-in fallback.
func NewNotifier(cfg Config, logger *zap.Logger) *Notifier {
	n := &Notifier{
		cfg:      cfg,
		logger:   logger,
		template: loadTemplate(cfg.TemplatePath, logger),
	}
	n.deliver = n.dialAndSend
	return n
}

// Ensure Notifier implements core.Notifier at compile time
var _ core.Notifier = (*Notifier)(nil)

// Send delivers the operator notification for one submission. Configuration
// problems are reported before any network I/O. An enabled auto-reply is sent
// afterwards on a best-effort basis; its failure is logged and swallowed.
func (n *Notifier) Send(ctx context.Context, submission *core.ContactSubmission) error {
	if n.cfg.Username == "" || n.cfg.Password == "" {
		return core.NewConfigurationError("SMTP credentials not configured. Please set SMTP_USER and SMTP_PASS environment variables.")
	}
	if n.cfg.NotifyAddress == "" {
		return core.NewConfigurationError("NOTIFICATION_EMAIL not configured. Please set the email address to receive notifications.")
	}

	msg, err := n.buildNotification(submission)
	if err != nil {
		return fmt.Errorf("failed to build notification: %w", err)
	}

	if err := n.deliver(ctx, msg); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	n.logger.Info("Contact form notification sent",
		zap.String("to", n.cfg.NotifyAddress),
		zap.String("reply_to", submission.Email))

	if n.cfg.AutoReply {
		if err := n.sendAutoReply(ctx, submission); err != nil {
			n.logger.Error("Failed to send auto-reply", zap.Error(err))
		}
	}
	return nil
}

// buildNotification renders the template and assembles the operator message
func (n *Notifier) buildNotification(submission *core.ContactSubmission) (*mail.Msg, error) {
	timestamp := formatTimestamp(time.Now())

	html := tmpl.Render(n.template, map[string]string{
		"name":      tmpl.Escape(submission.Name),
		"email":     tmpl.Escape(submission.Email),
		"subject":   tmpl.Escape(submission.Subject),
		"message":   tmpl.Escape(submission.Message),
		"timestamp": timestamp,
	})

	msg := mail.NewMsg()
	if err := msg.FromFormat(n.cfg.FromName, n.cfg.Username); err != nil {
		return nil, err
	}
	if err := msg.To(n.cfg.NotifyAddress); err != nil {
		return nil, err
	}
	if err := msg.ReplyTo(submission.Email); err != nil {
		return nil, err
	}
	msg.Subject("New Contact: " + submission.Subject)
	msg.SetBodyString(mail.TypeTextPlain, plainText(submission, timestamp))
	msg.AddAlternativeString(mail.TypeTextHTML, html)
	msg.SetGenHeader(mail.HeaderXMailer, "portfolio-backend contact form")
	msg.SetImportance(mail.ImportanceHigh)
	return msg, nil
}

// sendAutoReply sends the acknowledgement to the submitter
func (n *Notifier) sendAutoReply(ctx context.Context, submission *core.ContactSubmission) error {
	html := tmpl.Render(autoReplyTemplate, map[string]string{
		"name":   tmpl.Escape(submission.Name),
		"sender": tmpl.Escape(n.cfg.FromName),
	})

	msg := mail.NewMsg()
	if err := msg.FromFormat(n.cfg.FromName, n.cfg.Username); err != nil {
		return err
	}
	if err := msg.To(submission.Email); err != nil {
		return err
	}
	msg.Subject("Re: " + submission.Subject + " - Thanks for reaching out!")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Hi %s,\n\nThank you for reaching out through my portfolio! I've received your message and will get back to you within 24 hours.\n\nBest regards,\n%s",
		submission.Name, n.cfg.FromName))
	msg.AddAlternativeString(mail.TypeTextHTML, html)
	return n.deliver(ctx, msg)
}

// dialAndSend is the production delivery path
func (n *Notifier) dialAndSend(ctx context.Context, msgs ...*mail.Msg) error {
	client, err := n.smtpClient()
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msgs...)
}

// smtpClient builds the SMTP client on first use and reuses it afterwards
func (n *Notifier) smtpClient() (*mail.Client, error) {
	n.clientOnce.Do(func() {
		n.client, n.clientErr = mail.NewClient(n.cfg.Host, n.clientOptions()...)
	})
	return n.client, n.clientErr
}

// clientOptions maps the port policy onto transport options: 465 implies
// implicit TLS (unless overridden), 587 requires STARTTLS with a permissive
// cipher configuration for older relays, anything else is plain.
func (n *Notifier) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.Username),
		mail.WithPassword(n.cfg.Password),
	}

	switch {
	case n.secure():
		opts = append(opts, mail.WithSSL())
	case n.cfg.Port == 587:
		opts = append(opts,
			mail.WithTLSPolicy(mail.TLSMandatory),
			mail.WithTLSConfig(&tls.Config{
				ServerName: n.cfg.Host,
				// Some providers still negotiate only legacy
				// cipher suites on the submission port.
				MinVersion: tls.VersionTLS10,
			}))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	return opts
}

// secure reports whether implicit TLS should be used. Port 465 implies it
// unless the configuration overrides the choice.
func (n *Notifier) secure() bool {
	if n.cfg.Secure != nil {
		return *n.cfg.Secure
	}
	return n.cfg.Port == 465
}

// plainText is the text/plain rendition of the operator notification
func plainText(submission *core.ContactSubmission, timestamp string) string {
	return fmt.Sprintf(
		"New Contact Form Submission\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n\nReceived: %s",
		submission.Name, submission.Email, submission.Subject, submission.Message, timestamp)
}

// formatTimestamp renders the submission time the way the notification
// template expects it. Not user input; never escaped.
func formatTimestamp(t time.Time) string {
	return t.Format("January 2, 2006 at 3:04 PM MST")
}
