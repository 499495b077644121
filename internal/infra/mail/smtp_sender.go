// Package mail implements the MailSender interface over SMTP.
package mail

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"

	"go.uber.org/fx"
	"gopkg.in/gomail.v2"

	"siakad/config"
	"siakad/internal/domain/service"
	"siakad/internal/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// templateData is what the set-password template renders with.
type templateData struct {
	Subject       string
	RecipientName string
	ActionURL     string
}

// dialer abstracts gomail.Dialer so tests can intercept the SMTP handoff.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// smtpSender delivers templated mail through an SMTP relay. Delivery failure
// is logged and reported as false, never returned as an error, so account
// creation does not roll back on a mail outage.
type smtpSender struct {
	dialer   dialer
	from     string
	template *template.Template
	logger   *slog.Logger
}

// Params defines the parameters required for the SMTP sender.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(params Params) (service.MailSender, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/set_password.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse mail template failed")
	}

	mailCfg := params.Config.Mail

	return &smtpSender{
		dialer:   gomail.NewDialer(mailCfg.Host, mailCfg.Port, mailCfg.Username, mailCfg.Password),
		from:     mailCfg.From,
		template: tmpl,
		logger:   params.Logger,
	}, nil
}

// Send renders the set-password template and hands the message to the relay.
func (s *smtpSender) Send(ctx context.Context, toAddress, recipientName, subject, actionURL string) bool {
	var body bytes.Buffer
	if err := s.template.Execute(&body, templateData{
		Subject:       subject,
		RecipientName: recipientName,
		ActionURL:     actionURL,
	}); err != nil {
		s.logger.ErrorContext(ctx, "render mail template failed",
			slog.String("to", toAddress),
			slog.Any("error", err))

		return false
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.from)
	message.SetHeader("To", toAddress)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(message); err != nil {
		s.logger.ErrorContext(ctx, "send mail failed",
			slog.String("to", toAddress),
			slog.Any("error", err))

		return false
	}

	s.logger.InfoContext(ctx, "mail sent", slog.String("to", toAddress))

	return true
}
