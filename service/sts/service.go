// Package awssts resolves the caller's account when no organization scan is
// requested.
package awssts

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

var errNoAccount = errors.New("no account in caller identity")

// NewService creates a new STS service.
func NewService(cfg aws.Config) Service {
	return NewServiceWithClient(sts.NewFromConfig(cfg))
}

// NewServiceWithClient creates a new STS service with a custom client.
func NewServiceWithClient(client IdentityClientAPI) Service {
	return &service{client: client}
}

func (s *service) GetCallerAccountID(ctx context.Context) (string, error) {
	out, err := s.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("get caller identity: %w", err)
	}

	if account := aws.ToString(out.Account); account != "" {
		return account, nil
	}
	return "", errNoAccount
}
