package service

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/alexdoe/portfolio-backend/internal/apperror"
	"github.com/alexdoe/portfolio-backend/internal/entity"
)

const confirmationMessage = "Message sent successfully!"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type enhancer interface {
	Enhance(ctx context.Context, message, intent string) (string, error)
}

type mailer interface {
	Send(ctx context.Context, submission *entity.ContactSubmission) error
}

// ContactService validates a contact-form submission and relays it to the
// transactional mail provider, optionally rewriting the message body through
// the text-generation collaborator first.
type ContactService interface {
	Submit(ctx context.Context, submission *entity.ContactSubmission, intent string) (string, error)
	Validate(submission *entity.ContactSubmission) error
}

type contactService struct {
	logger   *slog.Logger
	mailer   mailer
	enhancer enhancer
}

// NewContactService builds the pipeline. A nil enhancer disables the
// enhancement step entirely.
func NewContactService(logger *slog.Logger, mailer mailer, enhancer enhancer) ContactService {
	return &contactService{
		logger:   logger,
		mailer:   mailer,
		enhancer: enhancer,
	}
}

// Submit runs validation, the optional enhancement step, and exactly one
// dispatch through the mail provider. Enhancement has no bearing on
// validation and fails open: any error from the generation service leaves
// the original text in place. There is no automatic retry; the caller may
// re-invoke on failure.
func (that *contactService) Submit(ctx context.Context, submission *entity.ContactSubmission, intent string) (string, error) {
	log := that.logger.With("method", "Submit")

	if err := that.Validate(submission); err != nil {
		return "", err
	}

	if intent != "" && that.enhancer != nil {
		enhanced, err := that.enhancer.Enhance(ctx, submission.Message, intent)
		if err != nil {
			log.Warn("enhancement failed, keeping original message", "error", err)
		} else if enhanced != "" {
			submission.Message = enhanced
		}
	}

	if err := that.mailer.Send(ctx, submission); err != nil {
		log.Error("failed to dispatch mail", "error", err)
		return "", apperror.ErrMailDispatch
	}

	return confirmationMessage, nil
}

// Validate checks the three required fields and the email syntax, naming the
// first missing requirement.
func (that *contactService) Validate(submission *entity.ContactSubmission) error {
	if submission.Name == "" {
		return apperror.ErrNameRequired
	}

	if submission.Email == "" {
		return apperror.ErrEmailRequired
	}

	if submission.Message == "" {
		return apperror.ErrMessageRequired
	}

	if !emailPattern.MatchString(submission.Email) {
		return apperror.ErrEmailInvalid
	}

	return nil
}
