package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
)

// Service loads configurations for the caller and for member accounts.
type Service interface {
	GetAWSCfg(ctx context.Context, region string, profile string) (aws.Config, error)
	AssumeRoleCfg(base aws.Config, accountID, roleName, externalID, region string) aws.Config
}

type service struct {
	// newSTSClient builds the client that requests role credentials.
	newSTSClient func(aws.Config) stscreds.AssumeRoleAPIClient
}
