package mailer

import (
	"context"
	"io"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// SESClientAPI is the interface for the AWS SES client methods used by the service.
type SESClientAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Options configures the dispatcher.
type Options struct {
	Enabled    bool
	Sender     string
	CC         []string
	BCC        []string
	ReturnPath string
	// Out receives the status lines, os.Stdout when nil.
	Out io.Writer
}

// Service delivers rendered reports.
type Service interface {
	Send(ctx context.Context, email model.Email) error
}

type service struct {
	client SESClientAPI
	opts   Options
}
