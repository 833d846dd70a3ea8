// Package mailer sends reports through Amazon SES.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// ErrNoRecipients is returned when an email has no recipient address.
var ErrNoRecipients = errors.New("no email recipients")

// MaxSubjectLength is the longest subject sent unchanged.
const MaxSubjectLength = 100

const charset = "UTF-8"

// NewService creates a new mail service.
func NewService(cfg aws.Config, opts Options) Service {
	return &service{client: ses.NewFromConfig(cfg), opts: opts}
}

// NewServiceWithClient creates a new mail service with a custom client.
func NewServiceWithClient(client SESClientAPI, opts Options) Service {
	return &service{client: client, opts: opts}
}

// Send delivers email once to each of its comma separated recipients.
func (s *service) Send(ctx context.Context, email model.Email) error {
	if !s.opts.Enabled {
		fmt.Fprintln(s.out(), "Email disabled.")
		return nil
	}

	recipients := SplitAddresses(email.Recipient)
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	subject := TruncateSubject(email.Subject)
	body := ApplyTicket(email.Body, email.TicketID)

	for _, recipient := range recipients {
		if _, err := s.client.SendEmail(ctx, s.buildInput(recipient, subject, body, email.HTML)); err != nil {
			return fmt.Errorf("failed to send email to %s: %w", recipient, err)
		}
		fmt.Fprintf(s.out(), "📧 Report sent to %s\n", recipient)
	}

	return nil
}

func (s *service) out() io.Writer {
	if s.opts.Out != nil {
		return s.opts.Out
	}
	return os.Stdout
}

func (s *service) buildInput(recipient, subject, body string, html bool) *ses.SendEmailInput {
	destination := &types.Destination{ToAddresses: []string{recipient}}
	if len(s.opts.CC) > 0 {
		destination.CcAddresses = s.opts.CC
	}
	if len(s.opts.BCC) > 0 {
		destination.BccAddresses = s.opts.BCC
	}

	content := &types.Content{Charset: aws.String(charset), Data: aws.String(body)}
	msgBody := &types.Body{}
	if html {
		msgBody.Html = content
	} else {
		msgBody.Text = content
	}

	input := &ses.SendEmailInput{
		Source:      aws.String(s.opts.Sender),
		Destination: destination,
		Message: &types.Message{
			Subject: &types.Content{Charset: aws.String(charset), Data: aws.String(subject)},
			Body:    msgBody,
		},
		ReplyToAddresses: []string{},
	}
	if s.opts.ReturnPath != "" {
		input.ReturnPath = aws.String(s.opts.ReturnPath)
	}
	return input
}

// TruncateSubject shortens subjects over MaxSubjectLength characters to
// MaxSubjectLength-3 characters followed by "...".
func TruncateSubject(subject string) string {
	if utf8.RuneCountInString(subject) <= MaxSubjectLength {
		return subject
	}
	return string([]rune(subject)[:MaxSubjectLength-3]) + "..."
}

// ApplyTicket replaces the first ticket placeholder of body with the ticket
// reference. Without a ticket id body is returned unchanged.
func ApplyTicket(body, ticketID string) string {
	if ticketID == "" {
		return body
	}
	return strings.Replace(body, model.TicketPlaceholder, "Ticket ID: "+ticketID, 1)
}

// SplitAddresses splits a comma separated address list.
func SplitAddresses(raw string) []string {
	var out []string
	for _, addr := range strings.Split(raw, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
