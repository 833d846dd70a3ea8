package aggregator

import (
	"cmp"
	"slices"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
)

// SortSecurityGroups returns the groups ordered by descending instance count.
// Groups with equal counts keep their input order. The input is not modified.
func SortSecurityGroups(groups []model.SecurityGroupRecord) []model.SecurityGroupRecord {
	sorted := slices.Clone(groups)
	slices.SortStableFunc(sorted, func(a, b model.SecurityGroupRecord) int {
		return cmp.Compare(len(b.InstanceIDs), len(a.InstanceIDs))
	})
	return sorted
}

// SortPermissions returns the permissions ordered by ascending FromPort, with
// permissions lacking a FromPort first. The input is not modified.
func SortPermissions(perms []model.PermissionRecord) []model.PermissionRecord {
	sorted := slices.Clone(perms)
	if sorted == nil {
		sorted = []model.PermissionRecord{}
	}
	slices.SortStableFunc(sorted, func(a, b model.PermissionRecord) int {
		return cmp.Compare(a.SortPort(), b.SortPort())
	})
	return sorted
}
