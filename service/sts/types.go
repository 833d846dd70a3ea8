package awssts

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// IdentityClientAPI is the part of the STS client the service calls.
type IdentityClientAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Service identifies the account behind the loaded credentials.
type Service interface {
	GetCallerAccountID(ctx context.Context) (string, error)
}

type service struct {
	client IdentityClientAPI
}
