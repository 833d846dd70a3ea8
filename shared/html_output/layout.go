package htmloutput

import (
	"strconv"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
)

// PermissionCategory tells how a permission is laid out.
type PermissionCategory string

const (
	// CategoryInternalOnly is a permission whose sources are only other
	// security groups.
	CategoryInternalOnly PermissionCategory = "internal-only"

	// CategoryNoRanges is a permission with neither IP ranges nor security
	// group sources.
	CategoryNoRanges PermissionCategory = "no-ranges"

	// CategoryRanges is a permission with one row per IPv4 range.
	CategoryRanges PermissionCategory = "ranges"
)

// PermissionLayout is the table layout of one permission.
type PermissionLayout struct {
	Category PermissionCategory
	Protocol string
	Ports    string
	Rows     []RangeRow // one per IPv4 range, empty for the other categories
	RowSpan  int
	Flagged  bool
}

// RangeRow is one IPv4 range of a permission.
type RangeRow struct {
	CIDR        string
	Description string
	Flagged     bool
}

// ClassifyPermission decides the render category and red flags of perm.
func ClassifyPermission(perm model.PermissionRecord) PermissionLayout {
	layout := PermissionLayout{
		Protocol: perm.Protocol,
		Ports:    FormatPorts(perm.FromPort, perm.ToPort),
		RowSpan:  1,
	}

	if len(perm.IPRanges) == 0 {
		if perm.HasCrossAccountRefs {
			layout.Category = CategoryInternalOnly
			return layout
		}
		layout.Category = CategoryNoRanges
		layout.Flagged = true
		return layout
	}

	layout.Category = CategoryRanges
	layout.RowSpan = len(perm.IPRanges)
	layout.Rows = make([]RangeRow, 0, len(perm.IPRanges))
	for _, r := range perm.IPRanges {
		open := r.CidrIP == model.CIDRAnywhere
		layout.Rows = append(layout.Rows, RangeRow{
			CIDR:        r.CidrIP,
			Description: r.Description,
			Flagged:     open,
		})
		if open {
			layout.Flagged = true
		}
	}
	return layout
}

// FormatPorts renders a port range; equal bounds collapse to one port.
func FormatPorts(from, to *int32) string {
	if from == nil {
		return ""
	}
	if to == nil || *to == *from {
		return strconv.Itoa(int(*from))
	}
	return strconv.Itoa(int(*from)) + "-" + strconv.Itoa(int(*to))
}

// RowSpan is the number of rows a security group occupies under its merged
// id cell: the name row, the description row when present, the usage row and
// the rows of every permission.
//
// The usage row is always counted although the renderer omits it for a group
// used by no instance. Aggregated groups always have at least one instance.
func RowSpan(sg model.SecurityGroupRecord) int {
	rows := 1
	if sg.Description != "" {
		rows++
	}
	rows++
	for _, perm := range sg.IPPermissions {
		rows += max(1, len(perm.IPRanges))
	}
	return rows
}
