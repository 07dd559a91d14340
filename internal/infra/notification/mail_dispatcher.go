package notification

import (
	"context"
	"log/slog"
	"text/template"

	"geoalert/config"
	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/service"
	"geoalert/internal/errors"

	"github.com/wneessen/go-mail"
)

type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// mailDispatcher sends one plain text mail per notice over SMTP.
type mailDispatcher struct {
	sender       mailSender
	from         string
	tmpl         *template.Template
	eventURLBase string
	logger       *slog.Logger
}

// NewMailDispatcher creates an SMTP NotificationDispatcher from the smtp section.
func NewMailDispatcher(cfg *config.Config, tmpl *template.Template, logger *slog.Logger) (service.NotificationDispatcher, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host is required for the smtp channel")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.SMTP.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTP.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.SMTP.Timeout))
	}
	if cfg.SMTP.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTP.Username),
			mail.WithPassword(cfg.SMTP.Password),
		)
	}

	client, err := mail.NewClient(cfg.SMTP.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return newMailDispatcher(client, cfg.SMTP.From, tmpl, eventURLBase(cfg), logger), nil
}

func newMailDispatcher(sender mailSender, from string, tmpl *template.Template, urlBase string, logger *slog.Logger) *mailDispatcher {
	if tmpl == nil {
		tmpl = DefaultMailTemplate()
	}

	return &mailDispatcher{
		sender:       sender,
		from:         from,
		tmpl:         tmpl,
		eventURLBase: urlBase,
		logger:       logger,
	}
}

// Notify renders and sends the notice to its recipient.
func (d *mailDispatcher) Notify(ctx context.Context, notice entity.Notice) error {
	msg, err := d.buildMessage(notice)
	if err != nil {
		return err
	}

	if err := d.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrapf(err, "send mail for event %d", notice.EventID)
	}

	d.logger.Debug("[Mail] Notice sent",
		slog.Int64("event_id", notice.EventID),
		slog.Int64("recipient_id", notice.RecipientID),
	)

	return nil
}

func (d *mailDispatcher) buildMessage(notice entity.Notice) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(d.from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(notice.Email); err != nil {
		return nil, errors.Wrapf(err, "invalid recipient address for user %d", notice.RecipientID)
	}
	msg.Subject(MailSubject)

	if err := msg.SetBodyTextTemplate(d.tmpl, NewMailData(notice, d.eventURLBase)); err != nil {
		return nil, errors.Wrap(err, "render mail body")
	}

	return msg, nil
}

func eventURLBase(cfg *config.Config) string {
	if cfg.Notification == nil {
		return ""
	}

	return cfg.Notification.EventURLBase
}
