package regions

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// EC2ClientAPI defines the EC2 client methods used by this service.
type EC2ClientAPI interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

// Service discovers the regions enabled for an account.
type Service interface {
	Discover(ctx context.Context) ([]string, error)
}

type service struct {
	client EC2ClientAPI
}

// Sources are the candidate region lists, in precedence order.
type Sources struct {
	Flag       []string // --regions
	AllRegions bool     // --all-regions
	Configured []string // settings file or REGIONS
	Default    string   // --region or the SDK default region
}
