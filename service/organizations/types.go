package organizations

import (
	"context"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
)

// OrganizationsClientAPI is the interface for the AWS Organizations client methods used by the service.
type OrganizationsClientAPI interface {
	ListAccounts(ctx context.Context, params *organizations.ListAccountsInput, optFns ...func(*organizations.Options)) (*organizations.ListAccountsOutput, error)
}

type service struct {
	client OrganizationsClientAPI
}

// Service lists the accounts of an organization.
type Service interface {
	ListActiveAccounts(ctx context.Context) ([]model.Account, error)
}
