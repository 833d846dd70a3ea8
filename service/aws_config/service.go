// Package awsconfig loads the caller's AWS configuration and derives
// member account configurations from it.
package awsconfig

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// fallbackSTSRegion is used for the MFA source profile when neither the flag
// nor the profile names a region.
const fallbackSTSRegion = "us-east-1"

// loadSharedConfigProfile is a variable to allow mocking in tests.
var loadSharedConfigProfile = config.LoadSharedConfigProfile

// NewService creates a new AWS configuration service.
func NewService() Service {
	return &service{newSTSClient: defaultSTSClient}
}

func defaultSTSClient(cfg aws.Config) stscreds.AssumeRoleAPIClient {
	return sts.NewFromConfig(cfg)
}

// GetAWSCfg loads the configuration for profile and region. Credentials are
// resolved before returning so that an MFA prompt happens before any
// progress output starts.
func (s *service) GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error) {
	if shared, ok := mfaProfile(ctx, profile); ok {
		return s.mfaCfg(ctx, region, shared)
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOptions(region, profile)...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS config: %w", err)
	}

	if err := retrieve(ctx, cfg); err != nil {
		return aws.Config{}, err
	}
	return cfg, nil
}

// loadOptions leaves region and profile to the SDK chain (AWS_REGION,
// AWS_PROFILE, ~/.aws/config) unless they are given.
func loadOptions(region, profile string) []func(*config.LoadOptions) error {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	return append(opts, config.WithAssumeRoleCredentialOptions(func(o *stscreds.AssumeRoleOptions) {
		o.TokenProvider = stscreds.StdinTokenProvider
	}))
}

// mfaProfile reports whether profile assumes a role behind an MFA device.
// Such profiles are resolved by hand: the default chain signs the role
// request with the wrong credentials.
func mfaProfile(ctx context.Context, profile string) (config.SharedConfig, bool) {
	if profile == "" {
		return config.SharedConfig{}, false
	}
	shared, err := loadSharedConfigProfile(ctx, profile)
	if err != nil || shared.RoleARN == "" || shared.MFASerial == "" {
		return config.SharedConfig{}, false
	}
	return shared, true
}

// mfaCfg loads the source profile and assumes the profile's role with a
// token read from stdin.
func (s *service) mfaCfg(ctx context.Context, region string, shared config.SharedConfig) (aws.Config, error) {
	source := shared.SourceProfileName
	if source == "" {
		source = "default"
	}

	sourceCfg, err := config.LoadDefaultConfig(ctx,
		config.WithSharedConfigProfile(source),
		config.WithRegion(firstNonEmpty(region, shared.Region, fallbackSTSRegion)),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load source profile %s: %w", source, err)
	}

	cfg := s.withRole(sourceCfg, shared.RoleARN, func(o *stscreds.AssumeRoleOptions) {
		o.SerialNumber = aws.String(shared.MFASerial)
		o.TokenProvider = stscreds.StdinTokenProvider
	})
	cfg.Region = firstNonEmpty(region, shared.Region, cfg.Region)

	if err := retrieve(ctx, cfg); err != nil {
		return aws.Config{}, fmt.Errorf("MFA role %s: %w", shared.RoleARN, err)
	}
	return cfg, nil
}

func retrieve(ctx context.Context, cfg aws.Config) error {
	if cfg.Credentials == nil {
		return nil
	}
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return fmt.Errorf("failed to retrieve credentials: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
