package summarytable

import (
	"testing"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	report := model.AccountRegionReport{
		Instances: []model.InstanceRecord{
			{ID: "i-1", PublicIP: "203.0.113.1", SecurityGroupIDs: []string{"sg-1"}},
			{ID: "i-2", SecurityGroupIDs: []string{}},
			{ID: "i-3", SecurityGroupIDs: []string{"sg-2"}},
			{ID: "i-4", PublicIP: "203.0.113.4"},
		},
		SecurityGroups: []model.SecurityGroupRecord{
			{ID: "sg-1", IPPermissions: []model.PermissionRecord{
				{IPRanges: []model.IPRange{{CidrIP: "10.0.0.0/8"}, {CidrIP: "0.0.0.0/0"}}},
			}},
			{ID: "sg-2", IPPermissions: []model.PermissionRecord{
				{IPv6Ranges: []model.IPv6Range{{CidrIPv6: "::/0"}}},
			}},
		},
	}

	assert.Equal(t, Counts{
		Instances:      4,
		Exposed:        3,
		PublicIPs:      2,
		Ungrouped:      2,
		SecurityGroups: 2,
		OpenGroups:     1,
	}, Count(report))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
