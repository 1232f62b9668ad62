package mailer

import (
	"context"
	"fmt"
	"html"

	"github.com/wneessen/go-mail"

	"github.com/alexdoe/portfolio-backend/internal/config"
	"github.com/alexdoe/portfolio-backend/internal/entity"
)

// Mailer relays contact submissions to the configured inbox through the SMTP
// provider. Reply-To carries the visitor's address so replies go straight
// back to them.
type Mailer struct {
	client    *mail.Client
	from      string
	recipient string
}

func New(conf config.SMTP) (*Mailer, error) {
	client, err := mail.NewClient(conf.Host,
		mail.WithPort(conf.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(conf.Username),
		mail.WithPassword(conf.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &Mailer{
		client:    client,
		from:      conf.From,
		recipient: conf.Recipient,
	}, nil
}

func (that *Mailer) Send(ctx context.Context, submission *entity.ContactSubmission) error {
	msg := mail.NewMsg()

	if err := msg.FromFormat(submission.Name, that.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err := msg.To(that.recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	if err := msg.ReplyTo(submission.Email); err != nil {
		return fmt.Errorf("failed to set reply-to: %w", err)
	}

	msg.Subject("New Portfolio Contact from " + submission.Name)
	msg.SetBodyString(mail.TypeTextHTML, renderBody(submission))

	if err := that.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

func renderBody(submission *entity.ContactSubmission) string {
	return fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<hr>
<h3>Message:</h3>
<p>%s</p>`,
		html.EscapeString(submission.Name),
		html.EscapeString(submission.Email),
		html.EscapeString(submission.Message),
	)
}
