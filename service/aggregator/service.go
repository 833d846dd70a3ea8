// Package aggregator builds the per-account/region report model from raw
// instance listings.
package aggregator

import (
	"context"
	"slices"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/aws/aws-sdk-go-v2/aws"
)

const nameTagKey = "Name"

// Aggregate turns the instances of one account/region into a report. The
// boolean is false when the inventory holds no instances; callers must skip
// such regions instead of rendering an empty section.
//
// Each security group is described at most once per call, on first reference.
// Errors from fetcher are returned unchanged.
func Aggregate(ctx context.Context, inv model.RegionInventory, fetcher DetailFetcher) (model.AccountRegionReport, bool, error) {
	if len(inv.Instances) == 0 {
		return model.AccountRegionReport{}, false, nil
	}

	cache := newGroupCache(fetcher)
	instances := make([]model.InstanceRecord, 0, len(inv.Instances))
	seen := make(map[string]int, len(inv.Instances))

	for _, raw := range inv.Instances {
		record := recordInstance(raw)
		if pos, ok := seen[record.ID]; ok {
			instances[pos] = record
		} else {
			seen[record.ID] = len(instances)
			instances = append(instances, record)
		}

		for _, ref := range raw.SecurityGroupRefs {
			if err := cache.record(ctx, ref, raw.ID); err != nil {
				return model.AccountRegionReport{}, false, err
			}
		}
	}

	return model.AccountRegionReport{
		AccountID:      inv.AccountID,
		AccountName:    inv.AccountName,
		Region:         inv.Region,
		Instances:      instances,
		SecurityGroups: SortSecurityGroups(cache.groups),
	}, true, nil
}

func recordInstance(raw model.RawInstance) model.InstanceRecord {
	groupIDs := make([]string, 0, len(raw.SecurityGroupRefs))
	for _, ref := range raw.SecurityGroupRefs {
		if !slices.Contains(groupIDs, ref.ID) {
			groupIDs = append(groupIDs, ref.ID)
		}
	}

	return model.InstanceRecord{
		ID:               raw.ID,
		Name:             instanceName(raw.Tags),
		SecurityGroupIDs: groupIDs,
		PrivateIP:        aws.ToString(raw.PrivateIP),
		PublicIP:         aws.ToString(raw.PublicIP),
	}
}

// instanceName returns the value of the first Name tag.
func instanceName(tags []model.Tag) string {
	for _, tag := range tags {
		if tag.Key == nameTagKey {
			return tag.Value
		}
	}
	return ""
}

func newGroupCache(fetcher DetailFetcher) *groupCache {
	return &groupCache{
		fetcher: fetcher,
		index:   make(map[string]int),
	}
}

func (c *groupCache) record(ctx context.Context, ref model.SecurityGroupRef, instanceID string) error {
	pos, ok := c.index[ref.ID]
	if !ok {
		detail, err := c.fetcher.DescribeSecurityGroup(ctx, ref.ID)
		if err != nil {
			return err
		}
		pos = len(c.groups)
		c.index[ref.ID] = pos
		c.groups = append(c.groups, model.SecurityGroupRecord{
			ID:            ref.ID,
			Name:          ref.Name,
			Description:   aws.ToString(detail.Description),
			IPPermissions: SortPermissions(detail.IPPermissions),
			InstanceIDs:   []string{},
		})
		c.members = append(c.members, make(map[string]bool))
	}

	if !c.members[pos][instanceID] {
		c.members[pos][instanceID] = true
		c.groups[pos].InstanceIDs = append(c.groups[pos].InstanceIDs, instanceID)
	}
	return nil
}
