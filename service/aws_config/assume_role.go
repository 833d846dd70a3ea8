package awsconfig

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
)

// assumeRoleDuration is the lifetime of member account sessions. One session
// covers every region of an account.
const assumeRoleDuration = time.Hour

// RoleARN returns the ARN of roleName in accountID.
func RoleARN(accountID, roleName string) string {
	return fmt.Sprintf("arn:aws:iam::%s:role/%s", accountID, roleName)
}

// SessionName returns the role session name used for accountID.
func SessionName(accountID string) string {
	return "cross_acct_session_" + accountID
}

// AssumeRoleCfg returns a copy of base whose credentials assume roleName in
// accountID, pinned to region. Credentials are fetched lazily and cached.
func (s *service) AssumeRoleCfg(base aws.Config, accountID, roleName, externalID, region string) aws.Config {
	cfg := s.withRole(base, RoleARN(accountID, roleName), func(o *stscreds.AssumeRoleOptions) {
		o.RoleSessionName = SessionName(accountID)
		o.Duration = assumeRoleDuration
		if externalID != "" {
			o.ExternalID = aws.String(externalID)
		}
	})
	if region != "" {
		cfg.Region = region
	}
	return cfg
}

// withRole copies base with credentials that assume roleARN using base's own.
func (s *service) withRole(base aws.Config, roleARN string, optFns ...func(*stscreds.AssumeRoleOptions)) aws.Config {
	provider := stscreds.NewAssumeRoleProvider(s.newSTSClient(base), roleARN, optFns...)

	cfg := base.Copy()
	cfg.Credentials = aws.NewCredentialsCache(provider)
	return cfg
}
