// Package mailer delivers booking emails over SMTP, AWS SES or the log.
package mailer

import (
	"context"
	"fmt"
	"log"
	"studio/src/config"
	"studio/src/lib"
	awslib "studio/src/lib/aws"

	"github.com/aws/aws-sdk-go-v2/aws"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/wneessen/go-mail"
)

const (
	TRANSPORT_SMTP = "smtp"
	TRANSPORT_SES  = "ses"
	TRANSPORT_LOG  = "log"
)

type Mailer interface {
	Send(ctx context.Context, input *lib.SendMailInput) error
}

type SMTPMailer struct {
	client *mail.Client
}

func NewSMTPMailer(c *mail.Client) *SMTPMailer {
	return &SMTPMailer{client: c}
}

func (m *SMTPMailer) Send(ctx context.Context, input *lib.SendMailInput) error {
	return lib.SendMail(ctx, m.client, input)
}

type SESMailer struct {
	client awslib.SESAPI
}

func NewSESMailer(c awslib.SESAPI) *SESMailer {
	return &SESMailer{client: c}
}

func (m *SESMailer) Send(ctx context.Context, input *lib.SendMailInput) error {
	body := &sestypes.Body{}
	content := &sestypes.Content{Data: aws.String(input.Body), Charset: aws.String("UTF-8")}
	if input.Html {
		body.Html = content
	} else {
		body.Text = content
	}
	from := input.From
	if input.FromName != "" {
		from = fmt.Sprintf("%s <%s>", input.FromName, input.From)
	}
	_, err := awslib.SESSendMessage(ctx, m.client, aws.String(from),
		&sestypes.Destination{ToAddresses: input.To},
		&sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(input.Subject), Charset: aws.String("UTF-8")},
			Body:    body,
		},
	)
	return err
}

// LogMailer writes messages to the server log instead of sending them.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, input *lib.SendMailInput) error {
	log.Printf("[mail] to=%v subject=%q bytes=%d\n", input.To, input.Subject, len(input.Body))
	return nil
}

// New picks the transport named by MAIL_TRANSPORT.
func New(ctx context.Context, cfg config.App) (Mailer, error) {
	switch cfg.MailTransport {
	case TRANSPORT_SMTP:
		c, err := lib.GetSMTPClient(lib.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		})
		if err != nil {
			return nil, err
		}
		return NewSMTPMailer(c), nil
	case TRANSPORT_SES:
		c, err := awslib.GetSESClient(ctx)
		if err != nil {
			return nil, err
		}
		return NewSESMailer(c), nil
	case TRANSPORT_LOG, "":
		return LogMailer{}, nil
	}
	return nil, fmt.Errorf("unknown mail transport %q", cfg.MailTransport)
}
