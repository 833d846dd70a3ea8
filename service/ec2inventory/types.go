package ec2inventory

import (
	"context"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// EC2ClientAPI defines the EC2 client methods used by this service.
type EC2ClientAPI interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
}

// Service lists the instances of one account/region and describes their
// security groups.
type Service interface {
	ListInstances(ctx context.Context) ([]model.RawInstance, error)
	DescribeSecurityGroup(ctx context.Context, groupID string) (model.SecurityGroupDetail, error)
}

type service struct {
	client EC2ClientAPI
}
