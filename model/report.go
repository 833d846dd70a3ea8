package model

// CIDRAnywhere is the IPv4 range that admits every source address.
const CIDRAnywhere = "0.0.0.0/0"

// NoFromPort is the sort key used for permissions without a FromPort.
const NoFromPort int32 = -1

// AccountRegionReport is the audit data for one account in one region.
// It is only produced when the region holds at least one instance.
type AccountRegionReport struct {
	AccountID      string                `json:"account_id"`
	AccountName    string                `json:"account_name"`
	Region         string                `json:"region"`
	Instances      []InstanceRecord      `json:"instances"`
	SecurityGroups []SecurityGroupRecord `json:"security_groups"`
}

// Anchor returns the in-document link target for the report section.
func (r AccountRegionReport) Anchor() string {
	return r.AccountID + "_" + r.Region
}

// SecurityGroup returns the security group with the given id.
func (r AccountRegionReport) SecurityGroup(id string) (SecurityGroupRecord, bool) {
	for _, sg := range r.SecurityGroups {
		if sg.ID == id {
			return sg, true
		}
	}
	return SecurityGroupRecord{}, false
}

// InstanceRecord is one EC2 instance. Instances are kept in the order the API
// returned them, keyed by ID.
type InstanceRecord struct {
	ID               string   `json:"id"`
	Name             string   `json:"name,omitempty"`
	SecurityGroupIDs []string `json:"security_group_ids"`
	PrivateIP        string   `json:"private_ip,omitempty"`
	PublicIP         string   `json:"public_ip,omitempty"`
}

// Exposed reports whether the instance is reachable from outside the VPC or
// has no security group at all.
func (i InstanceRecord) Exposed() bool {
	return i.PublicIP != "" || len(i.SecurityGroupIDs) == 0
}

// SecurityGroupRecord is a security group referenced by at least one instance
// of the same report.
type SecurityGroupRecord struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description,omitempty"`
	IPPermissions []PermissionRecord `json:"ip_permissions"`
	InstanceIDs   []string           `json:"instance_ids"`
}

// PermissionRecord is one ingress rule of a security group.
type PermissionRecord struct {
	Protocol            string      `json:"protocol"`
	FromPort            *int32      `json:"from_port,omitempty"`
	ToPort              *int32      `json:"to_port,omitempty"`
	IPRanges            []IPRange   `json:"ip_ranges"`
	IPv6Ranges          []IPv6Range `json:"ipv6_ranges,omitempty"`
	HasCrossAccountRefs bool        `json:"has_cross_account_refs"`
}

// SortPort is the FromPort used for ordering, NoFromPort when absent.
func (p PermissionRecord) SortPort() int32 {
	if p.FromPort == nil {
		return NoFromPort
	}
	return *p.FromPort
}

// IPRange is an IPv4 source range of a permission.
type IPRange struct {
	CidrIP      string `json:"cidr_ip"`
	Description string `json:"description,omitempty"`
}

// IPv6Range is an IPv6 source range of a permission.
type IPv6Range struct {
	CidrIPv6    string `json:"cidr_ipv6"`
	Description string `json:"description,omitempty"`
}
