package aggregator

import (
	"context"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
)

// DetailFetcher describes a single security group by id.
type DetailFetcher interface {
	DescribeSecurityGroup(ctx context.Context, groupID string) (model.SecurityGroupDetail, error)
}

// DetailFetcherFunc adapts a function to DetailFetcher.
type DetailFetcherFunc func(ctx context.Context, groupID string) (model.SecurityGroupDetail, error)

// DescribeSecurityGroup calls f.
func (f DetailFetcherFunc) DescribeSecurityGroup(ctx context.Context, groupID string) (model.SecurityGroupDetail, error) {
	return f(ctx, groupID)
}

// groupCache holds the security groups recorded during one Aggregate call.
// It is never shared between calls.
type groupCache struct {
	fetcher DetailFetcher
	index   map[string]int
	groups  []model.SecurityGroupRecord
	members []map[string]bool
}
