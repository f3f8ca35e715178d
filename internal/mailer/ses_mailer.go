package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/pathsdata/contact-backend/internal/config"
)

const charset = "UTF-8"

// SESAPI is the subset of the SES client used by the mailer. Defined here
// so tests can substitute a fake.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESMailer sends notification emails through Amazon SES.
type SESMailer struct {
	client SESAPI
	sender string
	admin  string
}

// NewSESClient builds an SES client from the default AWS credential chain,
// with the same local-stack overrides as the DynamoDB client.
func NewSESClient(ctx context.Context, cfg *config.Config) (*ses.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := ses.NewFromConfig(awsCfg, func(o *ses.Options) {
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		}
	})
	return client, nil
}

// NewSESMailer creates a mailer sending from sender to admin through the
// given client.
func NewSESMailer(client SESAPI, sender, admin string) *SESMailer {
	return &SESMailer{client: client, sender: sender, admin: admin}
}

// Ensure SESMailer implements Mailer at compile time.
var _ Mailer = (*SESMailer)(nil)

// Send dispatches one email. A single attempt, no retry.
func (m *SESMailer) Send(ctx context.Context, email Email) error {
	if m.sender == "" || m.admin == "" {
		return ErrNotConfigured
	}

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: []string{m.admin},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charset)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(email.TextBody), Charset: aws.String(charset)},
				Html: &types.Content{Data: aws.String(email.HTMLBody), Charset: aws.String(charset)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sending notification email: %w", err)
	}
	return nil
}
