// Package ec2inventory reads EC2 instances and security groups.
package ec2inventory

import (
	"context"
	"fmt"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// NewService creates a new EC2 inventory service. cfg must be scoped to the
// account and region to read.
func NewService(cfg aws.Config) Service {
	return &service{client: ec2.NewFromConfig(cfg)}
}

// NewServiceWithClient creates a new EC2 inventory service with a provided client (for testing).
func NewServiceWithClient(client EC2ClientAPI) Service {
	return &service{client: client}
}

// ListInstances returns every instance of every reservation, in API order.
func (s *service) ListInstances(ctx context.Context) ([]model.RawInstance, error) {
	var instances []model.RawInstance

	paginator := ec2.NewDescribeInstancesPaginator(s.client, &ec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances: %w", err)
		}

		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				instances = append(instances, toRawInstance(instance))
			}
		}
	}

	return instances, nil
}

func toRawInstance(instance types.Instance) model.RawInstance {
	raw := model.RawInstance{
		ID:                aws.ToString(instance.InstanceId),
		PrivateIP:         instance.PrivateIpAddress,
		PublicIP:          instance.PublicIpAddress,
		SecurityGroupRefs: make([]model.SecurityGroupRef, 0, len(instance.SecurityGroups)),
	}

	for _, tag := range instance.Tags {
		raw.Tags = append(raw.Tags, model.Tag{
			Key:   aws.ToString(tag.Key),
			Value: aws.ToString(tag.Value),
		})
	}

	for _, sg := range instance.SecurityGroups {
		raw.SecurityGroupRefs = append(raw.SecurityGroupRefs, model.SecurityGroupRef{
			ID:   aws.ToString(sg.GroupId),
			Name: aws.ToString(sg.GroupName),
		})
	}

	return raw
}

// DescribeSecurityGroup returns the description and ingress rules of one
// security group. Rules keep their API order.
func (s *service) DescribeSecurityGroup(ctx context.Context, groupID string) (model.SecurityGroupDetail, error) {
	out, err := s.client.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		GroupIds: []string{groupID},
	})
	if err != nil {
		return model.SecurityGroupDetail{}, fmt.Errorf("failed to describe security group %s: %w", groupID, err)
	}
	if len(out.SecurityGroups) == 0 {
		return model.SecurityGroupDetail{}, fmt.Errorf("security group %s not found", groupID)
	}

	sg := out.SecurityGroups[0]
	detail := model.SecurityGroupDetail{
		Description:   sg.Description,
		IPPermissions: make([]model.PermissionRecord, 0, len(sg.IpPermissions)),
	}
	for _, perm := range sg.IpPermissions {
		detail.IPPermissions = append(detail.IPPermissions, toPermission(perm))
	}

	return detail, nil
}

func toPermission(perm types.IpPermission) model.PermissionRecord {
	record := model.PermissionRecord{
		Protocol:            aws.ToString(perm.IpProtocol),
		FromPort:            perm.FromPort,
		ToPort:              perm.ToPort,
		IPRanges:            make([]model.IPRange, 0, len(perm.IpRanges)),
		HasCrossAccountRefs: len(perm.UserIdGroupPairs) > 0,
	}

	for _, r := range perm.IpRanges {
		record.IPRanges = append(record.IPRanges, model.IPRange{
			CidrIP:      aws.ToString(r.CidrIp),
			Description: aws.ToString(r.Description),
		})
	}

	for _, r := range perm.Ipv6Ranges {
		record.IPv6Ranges = append(record.IPv6Ranges, model.IPv6Range{
			CidrIPv6:    aws.ToString(r.CidrIpv6),
			Description: aws.ToString(r.Description),
		})
	}

	return record
}
