// Package organizations enumerates the member accounts of an AWS organization.
package organizations

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/organizations/types"
)

// NewService creates a new Organizations service. cfg must belong to the
// management account or a delegated administrator.
func NewService(cfg aws.Config) Service {
	return &service{client: organizations.NewFromConfig(cfg)}
}

// NewServiceWithClient creates a new Organizations service with a custom client.
func NewServiceWithClient(client OrganizationsClientAPI) Service {
	return &service{client: client}
}

// ListActiveAccounts returns the ACTIVE accounts of the organization sorted
// by account id.
func (s *service) ListActiveAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account

	paginator := organizations.NewListAccountsPaginator(s.client, &organizations.ListAccountsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list organization accounts: %w", err)
		}

		for _, acct := range page.Accounts {
			if acct.Status != types.AccountStatusActive {
				continue
			}
			accounts = append(accounts, model.Account{
				ID:    aws.ToString(acct.Id),
				Name:  aws.ToString(acct.Name),
				Email: aws.ToString(acct.Email),
				ARN:   aws.ToString(acct.Arn),
			})
		}
	}

	slices.SortFunc(accounts, func(a, b model.Account) int {
		return strings.Compare(a.ID, b.ID)
	})

	return accounts, nil
}

// FilterAccounts keeps the accounts whose id is in ids, preserving order.
// An empty ids keeps every account.
func FilterAccounts(accounts []model.Account, ids []string) []model.Account {
	if len(ids) == 0 {
		return accounts
	}

	filtered := make([]model.Account, 0, len(ids))
	for _, acct := range accounts {
		if slices.Contains(ids, acct.ID) {
			filtered = append(filtered, acct)
		}
	}
	return filtered
}
